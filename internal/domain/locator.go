package domain

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tplvet.dev/pkg/tplvet/internal/adapter"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// DefaultTemplateSuffix selects template files by name.
const DefaultTemplateSuffix = ".html"

const staticDirName = "static"

// LocateOptions controls template discovery.
type LocateOptions struct {
	// Suffix must be contained in a file's base name (default ".html").
	Suffix string
	// Exclude lists directory substrings that are never walked.
	Exclude []string
}

// Locator enumerates templates and static directories under scan roots.
type Locator interface {
	Locate(ctx context.Context, roots []m.Path, opts LocateOptions) ([]m.Template, []m.ScanWarning, error)
	StaticDirs(ctx context.Context, roots []m.Path, opts LocateOptions) ([]m.Path, error)
}

type locator struct {
	adapter.SourceFSAdapter
}

// NewLocator creates a Locator backed by the given filesystem adapter.
func NewLocator(fs adapter.SourceFSAdapter) Locator {
	return &locator{SourceFSAdapter: fs}
}

// Locate walks every root and returns the templates sorted by path. A root
// that cannot be walked becomes a warning; the other roots are still walked.
// Only context cancellation is returned as an error.
func (l *locator) Locate(ctx context.Context, roots []m.Path, opts LocateOptions) ([]m.Template, []m.ScanWarning, error) {
	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultTemplateSuffix
	}

	seen := map[m.Path]struct{}{}
	templates := make([]m.Template, 0)
	warnings := make([]m.ScanWarning, 0)

	for _, root := range normalizeRoots(roots) {
		err := l.Walk(ctx, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				if path == string(root) {
					return err
				}

				slog.Warn("skipping unreadable path", "path", path, "error", err)
				warnings = append(warnings, m.ScanWarning{Path: m.Path(path), Message: err.Error()})

				return nil
			}

			if adapter.IsExcluded(string(root), path, opts.Exclude) {
				if info.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if info.IsDir() || !strings.Contains(info.Name(), suffix) {
				return nil
			}

			candidate := m.Path(filepath.Clean(path))
			if _, dup := seen[candidate]; dup {
				return nil
			}

			seen[candidate] = struct{}{}

			short, relErr := l.RelPath(ctx, root, candidate)
			if relErr != nil {
				short = candidate
			}

			templates = append(templates, m.Template{Path: candidate, ShortPath: short})

			return nil
		})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, nil, ctxErr
			}

			slog.Warn("failed to walk root", "root", root, "error", err)
			warnings = append(warnings, m.ScanWarning{Path: root, Message: err.Error()})
		}
	}

	sort.Slice(templates, func(i, j int) bool { return templates[i].Path < templates[j].Path })
	slog.Debug("located templates", "count", len(templates), "roots", len(roots))

	return templates, warnings, nil
}

// StaticDirs returns every directory named "static" under the roots, sorted.
// Nested static directories inside a static directory are not reported.
func (l *locator) StaticDirs(ctx context.Context, roots []m.Path, opts LocateOptions) ([]m.Path, error) {
	dirs := make([]m.Path, 0)

	for _, root := range normalizeRoots(roots) {
		err := l.Walk(ctx, root, func(path string, info os.FileInfo, err error) error {
			if err != nil || !info.IsDir() {
				return nil
			}

			if adapter.IsExcluded(string(root), path, opts.Exclude) {
				return filepath.SkipDir
			}

			if info.Name() == staticDirName {
				dirs = append(dirs, m.Path(filepath.Clean(path)))
				return filepath.SkipDir
			}

			return nil
		})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}

			slog.Warn("failed to walk root for static dirs", "root", root, "error", err)
		}
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })

	return dirs, nil
}

// normalizeRoots accepts Go-style "./..." patterns and defaults to ".".
func normalizeRoots(roots []m.Path) []m.Path {
	if len(roots) == 0 {
		return []m.Path{"."}
	}

	result := make([]m.Path, 0, len(roots))
	for _, root := range roots {
		trimmed := strings.TrimSuffix(string(root), "...")
		if len(trimmed) > 1 {
			trimmed = strings.TrimSuffix(trimmed, "/")
		}

		if trimmed == "" {
			trimmed = "."
		}

		result = append(result, m.Path(trimmed))
	}

	return result
}
