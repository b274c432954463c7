package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

func TestStaticDirResolver_Find(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	first := filepath.Join(root, "static")
	second := filepath.Join(root, "accounts", "static")
	writeTestFile(t, filepath.Join(first, "css", "present.css"), "body {}\n")
	writeTestFile(t, filepath.Join(second, "css", "present.css"), "body {}\n")
	writeTestFile(t, filepath.Join(second, "js", "app.js"), "console.log(1)\n")

	resolver := NewStaticDirResolver(NewLocalSourceFSAdapter(), []m.Path{m.Path(first), m.Path(second)})

	t.Run("present asset resolves to the first matching dir", func(t *testing.T) {
		path, ok := resolver.Find(ctx, "css/present.css")
		require.True(t, ok)
		assert.Equal(t, m.Path(filepath.Join(first, "css", "present.css")), path)
	})

	t.Run("falls through to later dirs", func(t *testing.T) {
		path, ok := resolver.Find(ctx, "js/app.js")
		require.True(t, ok)
		assert.Equal(t, m.Path(filepath.Join(second, "js", "app.js")), path)
	})

	t.Run("missing asset is absent", func(t *testing.T) {
		_, ok := resolver.Find(ctx, "missing.css")
		assert.False(t, ok)
	})

	t.Run("directories are not assets", func(t *testing.T) {
		_, ok := resolver.Find(ctx, "css")
		assert.False(t, ok)
	})

	t.Run("traversal is rejected", func(t *testing.T) {
		writeTestFile(t, filepath.Join(root, "secret.txt"), "x\n")
		_, ok := resolver.Find(ctx, "../secret.txt")
		assert.False(t, ok)
	})

	t.Run("leading slash is tolerated", func(t *testing.T) {
		_, ok := resolver.Find(ctx, "/css/present.css")
		assert.True(t, ok)
	})
}

func TestCleanIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"simple", "app.js", "app.js", true},
		{"nested", "css/site.css", filepath.Join("css", "site.css"), true},
		{"dot segments", "css/../js/app.js", filepath.Join("js", "app.js"), true},
		{"empty", "  ", "", false},
		{"dot", ".", "", false},
		{"parent", "..", "", false},
		{"escape", "../etc/passwd", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cleanIdentifier(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
