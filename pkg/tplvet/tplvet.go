// Package tplvet runs the template convention checks from go test.
//
// Each synthesized unit becomes a subtest named after the unit, grouped by
// check, so a single convention violation can be re-run with -run:
//
//	func TestTemplates(t *testing.T) {
//		tplvet.Run(t, tplvet.Options{Paths: []string{"./templates/..."}})
//	}
package tplvet

import (
	"context"
	"testing"

	"tplvet.dev/pkg/tplvet/internal/adapter"
	"tplvet.dev/pkg/tplvet/internal/domain"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// Options selects what is checked. Zero values fall back to the CLI defaults.
type Options struct {
	Paths          []string // default "."
	Suffix         string   // default ".html"
	Checks         []string // default every check
	UnwantedFields []string
	UnwantedAssets []string
	ExcludePaths   []string // default "/node_modules", "/coverage"
	StaticDirs     []string // default every "static" directory under Paths
	Parallel       int
}

// Outcome is the result of one unit.
type Outcome struct {
	Name     string
	Check    string
	Template string
	Subject  string
	Status   string
	Message  string
	Payload  []string
}

// Failed reports whether the unit found a violation or could not be evaluated.
func (o Outcome) Failed() bool {
	return o.Status != string(m.StatusPassed)
}

// Check scans the templates and runs every unit without involving testing.T.
func Check(ctx context.Context, opts Options) ([]Outcome, error) {
	collection, err := collect(ctx, opts)
	if err != nil {
		return nil, err
	}

	results, err := domain.NewRunner().Run(ctx, collection.Registry, opts.Parallel)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(results))
	for _, res := range results {
		outcomes = append(outcomes, outcomeOf(res))
	}

	return outcomes, nil
}

// Run synthesizes the units and runs each as a subtest of t.
func Run(t *testing.T, opts Options) {
	t.Helper()

	ctx := t.Context()

	collection, err := collect(ctx, opts)
	if err != nil {
		t.Fatalf("tplvet: %v", err)
	}

	for _, warning := range collection.Warnings {
		t.Logf("tplvet: warning: %s", warning)
	}

	for _, collision := range collection.Registry.Collisions() {
		t.Logf("tplvet: %s", collision)
	}

	registry := collection.Registry
	for _, group := range registry.Groups() {
		t.Run(string(group), func(t *testing.T) {
			for _, unit := range registry.Units(group) {
				t.Run(unit.Name, func(t *testing.T) {
					res := domain.RunUnit(t.Context(), unit)
					switch res.Status {
					case m.StatusFailed:
						t.Error(res.Message)
					case m.StatusError:
						t.Errorf("%s: %s", res.Template.Slash(), res.Message)
					}
				})
			}
		})
	}
}

func collect(ctx context.Context, opts Options) (domain.Collection, error) {
	groups := make([]m.Group, 0, len(opts.Checks))
	for _, name := range opts.Checks {
		group, err := m.ParseGroup(name)
		if err != nil {
			return domain.Collection{}, err
		}

		groups = append(groups, group)
	}

	excluded := opts.ExcludePaths
	if excluded == nil {
		excluded = domain.DefaultExcludedPaths
	}

	fs := adapter.NewLocalSourceFSAdapter()
	pipeline := domain.NewPipeline(fs, domain.NewLocator(fs), domain.NewScanner(fs))

	return pipeline.Build(ctx, domain.CheckArgs{
		Paths: toPaths(opts.Paths),
		Exclusions: domain.Exclusions{
			Fields: domain.NewExclusionSet(opts.UnwantedFields...),
			Assets: domain.NewExclusionSet(opts.UnwantedAssets...),
			Paths:  excluded,
		},
		Suffix:     opts.Suffix,
		Groups:     groups,
		Threads:    opts.Parallel,
		StaticDirs: toPaths(opts.StaticDirs),
	})
}

func outcomeOf(res m.UnitResult) Outcome {
	return Outcome{
		Name:     res.Name,
		Check:    string(res.Group),
		Template: res.Template.Slash(),
		Subject:  res.Subject,
		Status:   string(res.Status),
		Message:  res.Message,
		Payload:  append([]string(nil), res.Payload...),
	}
}

func toPaths(values []string) []m.Path {
	paths := make([]m.Path, 0, len(values))
	for _, v := range values {
		paths = append(paths, m.Path(v))
	}

	return paths
}
