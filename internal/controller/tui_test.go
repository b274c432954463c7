package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

func TestTUI_DisplayReport_PrintsWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.Start(context.Background(), WithCheckMode()))
	require.NoError(t, tui.DisplayReport(context.Background(), sampleReport()))

	output := buf.String()
	assert.Contains(t, output, "tplvet: 2 template(s), run run-1")
	assert.Contains(t, output, "test_form_name_signup_html_errors")
	assert.Contains(t, output, "[form.name]")
	assert.Contains(t, output, "1 passed, 1 failed, 1 errors")
}

func TestTUI_DisplayUnits(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayUnits(context.Background(), []m.TestUnit{
		{Name: "test_form_email_signup_html_errors", Group: m.GroupFieldErrors},
	}))

	output := buf.String()
	assert.Contains(t, output, "tplvet: 1 unit(s)")
	assert.Contains(t, output, "field_errors:")
	assert.Contains(t, output, "test_form_email_signup_html_errors")
}

func TestTUI_DisplayWarnings(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.DisplayWarnings(context.Background(), nil, nil)
	assert.Empty(t, buf.String())

	tui.DisplayWarnings(context.Background(), []m.ScanWarning{{Path: "a.html", Message: "denied"}}, nil)
	assert.Contains(t, buf.String(), "warning: a.html: denied")
}

func TestTUI_DisplayBaselineDiff(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayBaselineDiff(context.Background(), ""))
	assert.Contains(t, buf.String(), noDiffMessage)

	buf.Reset()

	require.NoError(t, tui.DisplayBaselineDiff(context.Background(), "--- baseline\n+++ current\n-test_a\n+test_b\n"))

	output := buf.String()
	assert.Contains(t, output, "-test_a")
	assert.Contains(t, output, "+test_b")
}

func TestPagerModel_Update(t *testing.T) {
	lines := make([]string, 0, 100)
	for range 100 {
		lines = append(lines, "test_unit")
	}

	model := newPagerModel(strings.Join(lines, "\n"), 80, 20)
	assert.Equal(t, 16, model.viewport.Height)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Nil(t, cmd)

	pager, ok := updated.(pagerModel)
	require.True(t, ok)
	assert.True(t, pager.viewport.AtBottom())

	updated, _ = pager.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	pager = updated.(pagerModel)
	assert.True(t, pager.viewport.AtTop())

	updated, _ = pager.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	pager = updated.(pagerModel)
	assert.Equal(t, 26, pager.viewport.Height)
	assert.Equal(t, 100, pager.viewport.Width)

	updated, cmd = pager.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	pager = updated.(pagerModel)
	assert.True(t, pager.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, pager.View())
}

func TestStartConfig_Mode(t *testing.T) {
	assert.Equal(t, ModeCheck, newStartConfig().Mode())
	assert.Equal(t, ModeList, newStartConfig(WithListMode()).Mode())
	assert.Equal(t, ModeView, newStartConfig(WithViewMode()).Mode())
	assert.Equal(t, ModeWatch, newStartConfig(WithCheckMode(), WithWatchMode()).Mode())
}

func TestIsTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTTY(&buf))
}
