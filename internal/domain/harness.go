package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// Runner executes the units of a registry.
type Runner interface {
	// Run executes every unit and returns one result per unit, in registry
	// order. A failing or panicking unit never stops the others; only
	// cancellation of ctx is returned as an error.
	Run(ctx context.Context, registry *Registry, threads int) ([]m.UnitResult, error)
}

type runner struct{}

// NewRunner creates a Runner.
func NewRunner() Runner {
	return &runner{}
}

func (r *runner) Run(ctx context.Context, registry *Registry, threads int) ([]m.UnitResult, error) {
	units := registry.All()
	results := make([]m.UnitResult, len(units))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, unit := range units {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = RunUnit(groupCtx, unit)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// RunUnit executes a single unit. A ViolationError is a failed result, any
// other error or a panic is an error result.
func RunUnit(ctx context.Context, unit m.TestUnit) (result m.UnitResult) {
	result = m.UnitResult{
		Name:     unit.Name,
		Group:    unit.Group,
		Kind:     unit.Kind,
		Template: unit.Template,
		Subject:  unit.Subject,
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			slog.Error("unit panicked", "unit", unit.Name, "panic", recovered, "stack", string(debug.Stack()))

			result.Status = m.StatusError
			result.Message = fmt.Sprintf("panic: %v", recovered)
		}
	}()

	if unit.Check == nil {
		result.Status = m.StatusError
		result.Message = "unit has no check"

		return result
	}

	err := unit.Check(ctx)
	if err == nil {
		result.Status = m.StatusPassed
		return result
	}

	var violation *ViolationError
	if errors.As(err, &violation) {
		result.Status = m.StatusFailed
		result.Message = violation.Error()
		result.Payload = append([]string(nil), violation.Subjects...)

		return result
	}

	result.Status = m.StatusError
	result.Message = err.Error()

	return result
}
