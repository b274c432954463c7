package domain

import (
	"context"
	"fmt"
	"log/slog"

	"tplvet.dev/pkg/tplvet/internal/adapter"
	"tplvet.dev/pkg/tplvet/internal/domain/rules"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// CheckArgs contains the arguments of a check run.
type CheckArgs struct {
	Paths      []m.Path
	Exclusions Exclusions
	Suffix     string
	Groups     []m.Group // empty selects every group
	Threads    int
	Reports    m.Path // directory the report is saved to, empty to skip
	StaticDirs []m.Path
}

// Collection is the outcome of locating, scanning and synthesizing.
type Collection struct {
	Roots     []m.Path
	Templates []m.Template
	Warnings  []m.ScanWarning
	Registry  *Registry
}

// Pipeline builds the test unit registry of a run.
type Pipeline interface {
	Build(ctx context.Context, args CheckArgs) (Collection, error)
}

type pipeline struct {
	adapter.SourceFSAdapter
	Locator
	Scanner
}

// NewPipeline creates a Pipeline with the provided dependencies.
func NewPipeline(fsAdapter adapter.SourceFSAdapter, locator Locator, scanner Scanner) Pipeline {
	return &pipeline{
		SourceFSAdapter: fsAdapter,
		Locator:         locator,
		Scanner:         scanner,
	}
}

// Build locates templates, runs the rules of the selected groups, drops
// excluded findings and synthesizes one unit per finding (or template).
// Scanning finishes before any unit is created.
func (p *pipeline) Build(ctx context.Context, args CheckArgs) (Collection, error) {
	roots := normalizeRoots(args.Paths)
	groups := selectedGroups(args.Groups)
	locate := LocateOptions{Suffix: args.Suffix, Exclude: args.Exclusions.Paths}

	templates, warnings, err := p.Locate(ctx, roots, locate)
	if err != nil {
		return Collection{}, fmt.Errorf("locate templates: %w", err)
	}

	scans, scanWarnings, err := p.Scan(ctx, templates, rules.ForGroups(groups...), args.Threads)
	if err != nil {
		return Collection{}, fmt.Errorf("scan templates: %w", err)
	}

	warnings = append(warnings, scanWarnings...)

	filtered := make([]m.TemplateScan, 0, len(scans))
	for _, scan := range scans {
		filtered = append(filtered, ApplyExclusions(scan, args.Exclusions))
	}

	resolver, err := p.resolver(ctx, roots, locate, args.StaticDirs)
	if err != nil {
		return Collection{}, fmt.Errorf("resolve static dirs: %w", err)
	}

	registry := Synthesize(filtered, groups, resolver)

	slog.Info("collected units", "templates", len(templates), "units", registry.Len(), "warnings", len(warnings))

	return Collection{
		Roots:     roots,
		Templates: templates,
		Warnings:  warnings,
		Registry:  registry,
	}, nil
}

// resolver searches the configured static directories, or every "static"
// directory under the roots when none are configured.
func (p *pipeline) resolver(ctx context.Context, roots []m.Path, opts LocateOptions, dirs []m.Path) (adapter.AssetResolver, error) {
	if len(dirs) == 0 {
		found, err := p.StaticDirs(ctx, roots, opts)
		if err != nil {
			return nil, err
		}

		dirs = found
	}

	slog.Debug("static asset directories", "dirs", dirs)

	return adapter.NewStaticDirResolver(p.SourceFSAdapter, dirs), nil
}
