package model

import "time"

// UnitStatus is the outcome of executing a test unit.
type UnitStatus string

const (
	// StatusPassed means the convention holds.
	StatusPassed UnitStatus = "passed"
	// StatusFailed means the unit found a convention violation.
	StatusFailed UnitStatus = "failed"
	// StatusError means the assertion itself could not be evaluated.
	StatusError UnitStatus = "error"
)

// UnitResult represents the result of executing one test unit.
type UnitResult struct {
	Name     string      `yaml:"name"`
	Group    Group       `yaml:"group"`
	Kind     FindingKind `yaml:"kind"`
	Template Path        `yaml:"template"`
	Subject  string      `yaml:"subject,omitempty"`
	Status   UnitStatus  `yaml:"status"`
	Message  string      `yaml:"message,omitempty"`
	Payload  []string    `yaml:"payload,omitempty"` // failing subjects
}

// Report is the outcome of one run.
type Report struct {
	RunID      string            `yaml:"run_id"`
	Roots      []Path            `yaml:"roots"`
	StartedAt  time.Time         `yaml:"started_at"`
	Templates  int               `yaml:"templates"`
	Warnings   []ScanWarning     `yaml:"warnings,omitempty"`
	Collisions []NamingCollision `yaml:"collisions,omitempty"`
	Results    []UnitResult      `yaml:"results"`
}

// Count returns the number of results with the given status.
func (r Report) Count(status UnitStatus) int {
	n := 0

	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}

	return n
}

// HasFailures reports whether any unit failed or errored.
func (r Report) HasFailures() bool {
	return r.Count(StatusFailed) > 0 || r.Count(StatusError) > 0
}

// FailingNames returns the names of failed or errored units in result order.
func (r Report) FailingNames() []string {
	names := make([]string, 0)

	for _, res := range r.Results {
		if res.Status != StatusPassed {
			names = append(names, res.Name)
		}
	}

	return names
}
