package domain

import (
	"errors"
	"fmt"
	"strings"

	m "tplvet.dev/pkg/tplvet/internal/model"
)

// ErrViolations is returned by a check run in which at least one unit failed.
var ErrViolations = errors.New("convention violations found")

// ScanIOError reports a template that could not be read. It never aborts a scan.
type ScanIOError struct {
	Path m.Path
	Err  error
}

func (e *ScanIOError) Error() string {
	return fmt.Sprintf("read template %s: %v", e.Path, e.Err)
}

func (e *ScanIOError) Unwrap() error {
	return e.Err
}

// ViolationError is the failure of a test unit: the convention does not hold.
// Subjects is the failure payload.
type ViolationError struct {
	Message  string
	Subjects []string
}

func (e *ViolationError) Error() string {
	if len(e.Subjects) == 0 {
		return e.Message
	}

	return fmt.Sprintf("%s: [%s]", e.Message, strings.Join(e.Subjects, ", "))
}
