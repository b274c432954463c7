package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"tplvet.dev/pkg/tplvet/internal/adapter"
	"tplvet.dev/pkg/tplvet/internal/controller"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// ViewArgs contains the arguments for displaying a saved report.
type ViewArgs struct {
	Reports  m.Path
	Baseline m.Path
}

// WatchArgs contains the arguments for re-running checks on change.
type WatchArgs struct {
	CheckArgs
	Debounce time.Duration
}

// Workflow defines the commands of the checker.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	List(ctx context.Context, args CheckArgs) error
	View(ctx context.Context, args ViewArgs) error
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	adapter.ReportStore
	adapter.TemplateWatcher
	controller.UI
	Pipeline
	Runner
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	watcher adapter.TemplateWatcher,
	ui controller.UI,
	pipeline Pipeline,
	runner Runner,
) Workflow {
	return &workflow{
		ReportStore:     reportStore,
		TemplateWatcher: watcher,
		UI:              ui,
		Pipeline:        pipeline,
		Runner:          runner,
	}
}

// Check collects and runs every unit, displays and saves the report.
// ErrViolations is returned when a unit failed.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := w.Start(ctx, controller.WithCheckMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	return w.check(ctx, args)
}

func (w *workflow) check(ctx context.Context, args CheckArgs) error {
	report, err := w.run(ctx, args)
	if err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.SaveReport(ctx, args.Reports, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if report.HasFailures() {
		slog.Info("check finished with violations", "run_id", report.RunID, "failed", report.Count(m.StatusFailed), "errors", report.Count(m.StatusError))
		return ErrViolations
	}

	slog.Info("check finished", "run_id", report.RunID, "passed", report.Count(m.StatusPassed))

	return nil
}

func (w *workflow) run(ctx context.Context, args CheckArgs) (m.Report, error) {
	started := time.Now().UTC()

	collection, err := w.Build(ctx, args)
	if err != nil {
		return m.Report{}, err
	}

	w.DisplayWarnings(ctx, collection.Warnings, collection.Registry.Collisions())

	results, err := w.Run(ctx, collection.Registry, args.Threads)
	if err != nil {
		return m.Report{}, fmt.Errorf("run units: %w", err)
	}

	return m.Report{
		RunID:      uuid.NewString(),
		Roots:      collection.Roots,
		StartedAt:  started,
		Templates:  len(collection.Templates),
		Warnings:   collection.Warnings,
		Collisions: collection.Registry.Collisions(),
		Results:    results,
	}, nil
}

// List collects the units without running them.
func (w *workflow) List(ctx context.Context, args CheckArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	collection, err := w.Build(ctx, args)
	if err != nil {
		return err
	}

	w.DisplayWarnings(ctx, collection.Warnings, collection.Registry.Collisions())

	if err := w.DisplayUnits(ctx, collection.Registry.All()); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// View displays a saved report, or its diff against a baseline report.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	report, err := w.LoadReport(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if args.Baseline == "" {
		if err := w.DisplayReport(ctx, report); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		return nil
	}

	baseline, err := w.LoadReport(ctx, args.Baseline)
	if err != nil {
		return fmt.Errorf("load baseline: %w", err)
	}

	diff, err := BaselineDiff(baseline, report)
	if err != nil {
		return err
	}

	if err := w.DisplayBaselineDiff(ctx, diff); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Watch runs a check, then runs it again after every burst of template
// changes until ctx is done. Violations are displayed but do not stop it.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if err := w.Start(ctx, controller.WithWatchMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if err := w.recheck(ctx, args.CheckArgs); err != nil {
		return err
	}

	opts := adapter.WatchOptions{
		Suffix:   args.Suffix,
		Exclude:  args.Exclusions.Paths,
		Debounce: args.Debounce,
	}
	if opts.Suffix == "" {
		opts.Suffix = DefaultTemplateSuffix
	}

	var runErr error

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	err := w.TemplateWatcher.Watch(watchCtx, normalizeRoots(args.Paths), opts, func(ctx context.Context, changed []m.Path) {
		slog.Info("templates changed", "count", len(changed))

		if err := w.recheck(ctx, args.CheckArgs); err != nil {
			runErr = err
			cancel()
		}
	})
	if err != nil {
		return fmt.Errorf("watch templates: %w", err)
	}

	if runErr != nil && ctx.Err() == nil {
		return runErr
	}

	return nil
}

// recheck runs a check and only reports errors that are not violations.
func (w *workflow) recheck(ctx context.Context, args CheckArgs) error {
	err := w.check(ctx, args)
	if err == nil || errors.Is(err, ErrViolations) {
		return nil
	}

	if ctx.Err() != nil {
		return nil
	}

	return err
}
