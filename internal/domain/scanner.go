package domain

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"tplvet.dev/pkg/tplvet/internal/adapter"
	"tplvet.dev/pkg/tplvet/internal/domain/rules"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// Scanner runs the extraction rules over templates.
type Scanner interface {
	// Scan extracts findings from every template. Unreadable templates are
	// reported as warnings and skipped; only cancellation is an error.
	Scan(ctx context.Context, templates []m.Template, ruleSet []rules.Rule, threads int) ([]m.TemplateScan, []m.ScanWarning, error)
}

type scanner struct {
	adapter.SourceFSAdapter
}

// NewScanner creates a Scanner reading templates through fs.
func NewScanner(fs adapter.SourceFSAdapter) Scanner {
	return &scanner{SourceFSAdapter: fs}
}

func (s *scanner) Scan(ctx context.Context, templates []m.Template, ruleSet []rules.Rule, threads int) ([]m.TemplateScan, []m.ScanWarning, error) {
	scans := make([]m.TemplateScan, 0, len(templates))
	warnings := make([]m.ScanWarning, 0)

	var (
		scansMutex    sync.Mutex
		warningsMutex sync.Mutex
	)

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for _, template := range templates {
		group.Go(func() error {
			scan, err := s.scanTemplate(groupCtx, template, ruleSet)
			if err != nil {
				if ctxErr := groupCtx.Err(); ctxErr != nil {
					return ctxErr
				}

				slog.Warn("skipping template", "path", template.Path, "error", err)

				warningsMutex.Lock()

				warnings = append(warnings, m.ScanWarning{Path: template.Path, Message: err.Error()})

				warningsMutex.Unlock()

				return nil
			}

			scansMutex.Lock()

			scans = append(scans, scan)

			scansMutex.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	sort.Slice(scans, func(i, j int) bool { return scans[i].Template.Path < scans[j].Template.Path })
	sort.Slice(warnings, func(i, j int) bool { return warnings[i].Path < warnings[j].Path })

	return scans, warnings, nil
}

func (s *scanner) scanTemplate(ctx context.Context, template m.Template, ruleSet []rules.Rule) (m.TemplateScan, error) {
	content, err := s.ReadFile(ctx, template.Path)
	if err != nil {
		return m.TemplateScan{}, &ScanIOError{Path: template.Path, Err: err}
	}

	findings := rules.Extract(string(content), template.Path, ruleSet)
	slog.Debug("scanned template", "path", template.Path, "rules", len(ruleSet))

	return m.TemplateScan{Template: template, Findings: findings}, nil
}
