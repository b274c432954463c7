package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	m "tplvet.dev/pkg/tplvet/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested templates", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "base.html"), "<html></html>\n")

		nestedDir := filepath.Join(root, "accounts")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "login.html")
		writeTestFile(t, child, "{{ form.email }}\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file")
		}
		if !containsPath(visited, filepath.Join(root, "base.html")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("skip dir is honoured", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		skipped := filepath.Join(root, "node_modules")
		mustMkdir(t, skipped)
		writeTestFile(t, filepath.Join(skipped, "vendor.html"), "<p></p>\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() && path == skipped {
				return filepath.SkipDir
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if containsPath(visited, filepath.Join(skipped, "vendor.html")) {
			t.Fatalf("Walk() visited a file inside a skipped directory")
		}
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "base.html"), "<html></html>\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(root), func(string, os.FileInfo, error) error { return nil })
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Walk() error = %v, want context.Canceled", err)
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "signup.html")
	content := "<form>{{ form.email }}{{ form.email.errors }}</form>\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}

	if _, err := adapter.ReadFile(context.Background(), m.Path(filepath.Join(root, "missing.html"))); !os.IsNotExist(err) {
		t.Fatalf("ReadFile() on missing file error = %v, want not-exist", err)
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "base.html")
	writeTestFile(t, path, "<html></html>\n")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/templates/accounts/login.html")

	rel, err := adapter.RelPath(ctx, base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	want := filepath.Join("templates", "accounts", "login.html")
	if string(rel) != want {
		t.Fatalf("RelPath() = %s, want %s", rel, want)
	}

	joined := adapter.JoinPath(ctx, "/tmp", "project", "static", "app.css")
	if string(joined) != filepath.Join("/tmp", "project", "static", "app.css") {
		t.Fatalf("JoinPath() = %s, want %s", joined, filepath.Join("/tmp", "project", "static", "app.css"))
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
