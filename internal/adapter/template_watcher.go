package adapter

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// ChangeFunc is called with the templates touched during one debounce window.
type ChangeFunc func(ctx context.Context, changed []m.Path)

// WatchOptions selects which paths a TemplateWatcher reports.
type WatchOptions struct {
	Suffix   string
	Exclude  []string
	Debounce time.Duration
}

// TemplateWatcher notifies about template changes under a set of roots.
type TemplateWatcher interface {
	// Watch blocks until ctx is done, calling fn after each burst of changes.
	Watch(ctx context.Context, roots []m.Path, opts WatchOptions, fn ChangeFunc) error
}

// FSNotifyWatcher implements TemplateWatcher on top of fsnotify. fsnotify
// watches single directories, so every directory under the roots is added
// and directories created later are added as they appear.
type FSNotifyWatcher struct{}

// NewFSNotifyWatcher constructs a FSNotifyWatcher.
func NewFSNotifyWatcher() *FSNotifyWatcher {
	return &FSNotifyWatcher{}
}

const defaultDebounce = 300 * time.Millisecond

// Watch implements TemplateWatcher.
func (w *FSNotifyWatcher) Watch(ctx context.Context, roots []m.Path, opts WatchOptions, fn ChangeFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Error("failed to close watcher", "error", err)
		}
	}()

	rootDirs := make([]string, 0, len(roots))
	for _, root := range roots {
		if err := addTree(watcher, string(root), string(root), opts.Exclude); err != nil {
			return err
		}

		rootDirs = append(rootDirs, string(root))
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	pending := map[m.Path]struct{}{}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !w.accept(watcher, event, rootDirs, opts) {
				continue
			}

			pending[m.Path(event.Name)] = struct{}{}

			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}

			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("watcher error", "error", err)

		case <-fire:
			fire = nil
			changed := drain(pending)
			slog.Debug("templates changed", "count", len(changed))
			fn(ctx, changed)
		}
	}
}

// accept filters events down to template writes, also registering new directories.
func (w *FSNotifyWatcher) accept(watcher *fsnotify.Watcher, event fsnotify.Event, roots []string, opts WatchOptions) bool {
	root := rootOf(roots, event.Name)
	if IsExcluded(root, event.Name, opts.Exclude) {
		return false
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addTree(watcher, root, event.Name, opts.Exclude); err != nil {
				slog.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}

			return false
		}
	}

	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	return strings.Contains(filepath.Base(event.Name), opts.Suffix)
}

// addTree watches dir and every directory below it. Exclusions are matched
// relative to root, the watch root dir belongs to.
func addTree(watcher *fsnotify.Watcher, root, dir string, exclude []string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == dir {
				return err
			}

			return nil
		}

		if !info.IsDir() {
			return nil
		}

		if IsExcluded(root, path, exclude) {
			return filepath.SkipDir
		}

		return watcher.Add(path)
	})
}

// IsExcluded reports whether path, taken relative to root, contains one of
// the exclusion substrings. The relative path is compared in slash form with a
// leading "/", so "/node_modules" matches a node_modules directory directly
// under root. Directories above root and root itself are never compared.
func IsExcluded(root, path string, exclude []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	if rel == "." {
		return false
	}

	slashed := "/" + strings.TrimPrefix(filepath.ToSlash(rel), "/")
	for _, pattern := range exclude {
		if pattern != "" && strings.Contains(slashed, pattern) {
			return true
		}
	}

	return false
}

// rootOf returns the first root containing path, or path itself.
func rootOf(roots []string, path string) string {
	for _, root := range roots {
		rel, err := filepath.Rel(root, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return root
		}
	}

	return path
}

func drain(pending map[m.Path]struct{}) []m.Path {
	changed := make([]m.Path, 0, len(pending))
	for path := range pending {
		changed = append(changed, path)
		delete(pending, path)
	}

	sort.Slice(changed, func(i, j int) bool { return changed[i] < changed[j] })

	return changed
}
