// Package controller provides output adapters for displaying check results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCheck StartMode = iota
	ModeList
	ModeView
	ModeWatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithCheckMode sets the UI to check execution mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithListMode sets the UI to unit listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to saved report mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithWatchMode sets the UI to watch mode: output is appended, never paged.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	config := StartConfig{mode: ModeCheck}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for displaying units and reports.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayWarnings(ctx context.Context, warnings []m.ScanWarning, collisions []m.NamingCollision)
	DisplayUnits(ctx context.Context, units []m.TestUnit) error
	DisplayReport(ctx context.Context, report m.Report) error
	DisplayBaselineDiff(ctx context.Context, diff string) error
}

// NewUI returns a TUI writing to the command output when useTTY is set and
// a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
