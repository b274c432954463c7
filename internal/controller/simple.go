package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

const (
	passIcon = "✓"
	failIcon = "✗"
	errIcon  = "!"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = newStartConfig(options...).Mode()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayWarnings prints scan warnings and naming collisions.
func (s *SimpleUI) DisplayWarnings(ctx context.Context, warnings []m.ScanWarning, collisions []m.NamingCollision) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", renderWarnings(warnings, collisions))
}

// DisplayUnits prints the collected units and a per-group count table.
func (s *SimpleUI) DisplayUnits(ctx context.Context, units []m.TestUnit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, line := range unitLines(units) {
		s.printf("%s\n", line)
	}

	s.printf("\n%s", renderUnitsTable(units))

	return nil
}

// DisplayReport prints one line per unit, failure payloads and the group summary.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.mode == ModeWatch {
		s.printf("\n--- run %s (%s) ---\n", report.RunID, report.StartedAt.Format("15:04:05"))
	}

	for _, line := range resultLines(report.Results) {
		s.printf("%s\n", line)
	}

	s.printf("\n%s", renderReportTable(report))
	s.printf("%s\n", summaryLine(report))

	return nil
}

// DisplayBaselineDiff prints the diff of failing units between two reports.
func (s *SimpleUI) DisplayBaselineDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf("%s\n", noDiffMessage)
		return nil
	}

	s.printf("%s", diff)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

const noDiffMessage = "failing units match the baseline"

func renderWarnings(warnings []m.ScanWarning, collisions []m.NamingCollision) string {
	var b strings.Builder

	for _, w := range warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}

	for _, c := range collisions {
		fmt.Fprintf(&b, "collision: %s\n", c)
	}

	return b.String()
}

func unitLines(units []m.TestUnit) []string {
	lines := make([]string, 0, len(units))

	var current m.Group

	for _, unit := range units {
		if unit.Group != current {
			current = unit.Group
			lines = append(lines, fmt.Sprintf("%s:", current))
		}

		lines = append(lines, fmt.Sprintf("  %s", unit.Name))
	}

	return lines
}

func resultLines(results []m.UnitResult) []string {
	lines := make([]string, 0, len(results))

	for _, res := range results {
		switch res.Status {
		case m.StatusPassed:
			lines = append(lines, fmt.Sprintf("%s %s", passIcon, res.Name))
		case m.StatusFailed:
			lines = append(lines, fmt.Sprintf("%s %s", failIcon, res.Name), fmt.Sprintf("    %s", res.Message))
		default:
			lines = append(lines, fmt.Sprintf("%s %s", errIcon, res.Name), fmt.Sprintf("    error: %s", res.Message))
		}
	}

	return lines
}

type groupStat struct {
	group  m.Group
	units  int
	passed int
	failed int
	errors int
}

func buildGroupStats(results []m.UnitResult) []groupStat {
	stats := make([]groupStat, 0, len(m.AllGroups()))

	for _, group := range m.AllGroups() {
		stat := groupStat{group: group}

		for _, res := range results {
			if res.Group != group {
				continue
			}

			stat.units++

			switch res.Status {
			case m.StatusPassed:
				stat.passed++
			case m.StatusFailed:
				stat.failed++
			default:
				stat.errors++
			}
		}

		if stat.units > 0 {
			stats = append(stats, stat)
		}
	}

	return stats
}

func renderReportTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Check", "Units", "Passed", "Failed", "Errors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	for _, stat := range buildGroupStats(report.Results) {
		table.Append([]string{
			string(stat.group),
			fmt.Sprintf("%d", stat.units),
			fmt.Sprintf("%d", stat.passed),
			fmt.Sprintf("%d", stat.failed),
			fmt.Sprintf("%d", stat.errors),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Templates %d", report.Templates),
		fmt.Sprintf("%d", len(report.Results)),
		fmt.Sprintf("%d", report.Count(m.StatusPassed)),
		fmt.Sprintf("%d", report.Count(m.StatusFailed)),
		fmt.Sprintf("%d", report.Count(m.StatusError)),
	})

	table.Render()

	return tableBuffer.String()
}

func renderUnitsTable(units []m.TestUnit) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Check", "Units"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	counts := map[m.Group]int{}
	for _, unit := range units {
		counts[unit.Group]++
	}

	for _, group := range m.AllGroups() {
		if counts[group] == 0 {
			continue
		}

		table.Append([]string{string(group), fmt.Sprintf("%d", counts[group])})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(units))})

	table.Render()

	return tableBuffer.String()
}

func summaryLine(report m.Report) string {
	return fmt.Sprintf("%d passed, %d failed, %d errors (run %s)",
		report.Count(m.StatusPassed), report.Count(m.StatusFailed), report.Count(m.StatusError), report.RunID)
}
