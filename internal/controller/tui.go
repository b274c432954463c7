package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	detailStyle  = lipgloss.NewStyle().Faint(true)
	footerStyle  = lipgloss.NewStyle().Faint(true)
	removedStyle = failStyle
	addedStyle   = passStyle
)

// pagerChrome is the number of lines the pager uses besides the content.
const pagerChrome = 4

// TUI implements UI using Bubble Tea for interactive display. Content that
// fits the terminal is printed directly; longer content opens a pager.
type TUI struct {
	output io.Writer
	mode   StartMode
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mode = newStartConfig(options...).Mode()

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayWarnings prints scan warnings and naming collisions.
func (p *TUI) DisplayWarnings(ctx context.Context, warnings []m.ScanWarning, collisions []m.NamingCollision) {
	if err := ctx.Err(); err != nil {
		return
	}

	text := renderWarnings(warnings, collisions)
	if text == "" {
		return
	}

	_, _ = fmt.Fprint(p.output, warnStyle.Render(strings.TrimSuffix(text, "\n"))+"\n")
}

// DisplayUnits shows the collected units.
func (p *TUI) DisplayUnits(ctx context.Context, units []m.TestUnit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("tplvet: %d unit(s)", len(units))) + "\n\n")

	for _, line := range unitLines(units) {
		if strings.HasSuffix(line, ":") {
			b.WriteString(titleStyle.Render(line) + "\n")
			continue
		}

		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + renderUnitsTable(units))

	return p.show(b.String())
}

// DisplayReport shows the unit results and the group summary.
func (p *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("tplvet: %d template(s), run %s", report.Templates, report.RunID)) + "\n\n")

	for _, line := range resultLines(report.Results) {
		b.WriteString(styleResultLine(line) + "\n")
	}

	b.WriteString("\n" + renderReportTable(report))

	summary := summaryLine(report)
	if report.HasFailures() {
		summary = failStyle.Render(summary)
	} else {
		summary = passStyle.Render(summary)
	}

	b.WriteString(summary + "\n")

	return p.show(b.String())
}

// DisplayBaselineDiff shows the diff of failing units between two reports.
func (p *TUI) DisplayBaselineDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		_, err := fmt.Fprintln(p.output, passStyle.Render(noDiffMessage))
		return err
	}

	var b strings.Builder

	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "@@"):
			b.WriteString(titleStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(removedStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(addedStyle.Render(line))
		default:
			b.WriteString(line)
		}

		b.WriteString("\n")
	}

	return p.show(b.String())
}

func styleResultLine(line string) string {
	switch {
	case strings.HasPrefix(line, passIcon):
		return passStyle.Render(line)
	case strings.HasPrefix(line, failIcon), strings.HasPrefix(line, errIcon):
		return failStyle.Render(line)
	default:
		return detailStyle.Render(line)
	}
}

// show prints content directly when it fits the terminal or when running in
// watch mode, and pages it otherwise.
func (p *TUI) show(content string) error {
	width, height := p.terminalSize()

	if p.mode == ModeWatch || height == 0 || lipgloss.Height(content)+pagerChrome <= height {
		_, err := fmt.Fprint(p.output, content)
		return err
	}

	program := tea.NewProgram(newPagerModel(content, width, height), tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (p *TUI) terminalSize() (int, int) {
	f, ok := p.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// pagerModel is the Bubble Tea model scrolling long output.
type pagerModel struct {
	viewport viewport.Model
	quitting bool
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(content)

	return pagerModel{viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChrome, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := footerStyle.Render(fmt.Sprintf("%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		pm.viewport.ScrollPercent()*100))

	return pm.viewport.View() + "\n\n" + footer + "\n"
}
