package adapter

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	m "tplvet.dev/pkg/tplvet/internal/model"
)

// AssetResolver maps a static asset identifier (the argument of a
// `{% static %}` call) to a file on disk.
type AssetResolver interface {
	// Find returns the located path and true, or false when the asset is absent.
	Find(ctx context.Context, identifier string) (m.Path, bool)
}

// StaticDirResolver looks identifiers up in an ordered list of static
// directories. The first directory containing the asset wins.
type StaticDirResolver struct {
	fs   SourceFSAdapter
	dirs []m.Path
}

// NewStaticDirResolver constructs a StaticDirResolver. The dirs slice is copied.
func NewStaticDirResolver(fs SourceFSAdapter, dirs []m.Path) *StaticDirResolver {
	return &StaticDirResolver{
		fs:   fs,
		dirs: append([]m.Path(nil), dirs...),
	}
}

// Dirs returns the directories searched by the resolver.
func (r *StaticDirResolver) Dirs() []m.Path {
	return append([]m.Path(nil), r.dirs...)
}

// Find implements AssetResolver.
func (r *StaticDirResolver) Find(ctx context.Context, identifier string) (m.Path, bool) {
	rel, ok := cleanIdentifier(identifier)
	if !ok {
		slog.Debug("rejected static asset identifier", "identifier", identifier)
		return "", false
	}

	for _, dir := range r.dirs {
		candidate := r.fs.JoinPath(ctx, string(dir), rel)

		info, err := r.fs.FileInfo(ctx, candidate)
		if err != nil || info.IsDir() {
			continue
		}

		return candidate, true
	}

	return "", false
}

// cleanIdentifier turns a slash separated asset identifier into a relative
// OS path. Identifiers that are empty, absolute or escape the static
// directory are rejected.
func cleanIdentifier(identifier string) (string, bool) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", false
	}

	cleaned := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(identifier, "/")))
	if filepath.IsAbs(cleaned) || cleaned == "." || cleaned == ".." ||
		strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", false
	}

	return cleaned, true
}
