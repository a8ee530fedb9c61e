package scan_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chris-edwards-pub/c64-dir-organizer/internal/scan"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFilesNonRecursive(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "b.prg"))
	writeFile(t, filepath.Join(src, "a.d64"))
	writeFile(t, filepath.Join(src, "nested", "deep.tap"))

	files, err := scan.Files(src, scan.Options{})
	if err != nil {
		t.Fatalf("Files returned error: %v", err)
	}

	want := []string{
		filepath.Join(src, "a.d64"),
		filepath.Join(src, "b.prg"),
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d: %v", len(files), len(want), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFilesRecursive(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "top.prg"))
	writeFile(t, filepath.Join(src, "nested", "deep.tap"))
	writeFile(t, filepath.Join(src, "nested", "deeper", "deepest.crt"))

	files, err := scan.Files(src, scan.Options{Recursive: true})
	if err != nil {
		t.Fatalf("Files returned error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), files)
	}
}

func TestFilesPrunesSubtree(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "keep.prg"))
	writeFile(t, filepath.Join(src, "sorted", "PRG", "G", "game.prg"))

	files, err := scan.Files(src, scan.Options{
		Recursive: true,
		Prune:     filepath.Join(src, "sorted"),
	})
	if err != nil {
		t.Fatalf("Files returned error: %v", err)
	}
	if len(files) != 1 || files[0] != filepath.Join(src, "keep.prg") {
		t.Fatalf("expected only keep.prg, got %v", files)
	}
}

func TestFilesMissingSource(t *testing.T) {
	_, err := scan.Files(filepath.Join(t.TempDir(), "absent"), scan.Options{})
	if !errors.Is(err, scan.ErrSourceMissing) {
		t.Fatalf("expected ErrSourceMissing, got %v", err)
	}
}

func TestFilesSourceIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.prg")
	writeFile(t, path)

	_, err := scan.Files(path, scan.Options{})
	if !errors.Is(err, scan.ErrSourceMissing) {
		t.Fatalf("expected ErrSourceMissing for a non-directory, got %v", err)
	}
}

func TestContainsPath(t *testing.T) {
	base := filepath.Join("/", "srv", "c64")
	tests := []struct {
		dir  string
		want bool
	}{
		{base, true},
		{filepath.Join(base, "sorted"), true},
		{filepath.Join("/", "srv", "other"), false},
		{filepath.Join("/", "srv"), false},
	}
	for _, tt := range tests {
		if got := scan.ContainsPath(base, tt.dir); got != tt.want {
			t.Errorf("ContainsPath(%q, %q) = %v, want %v", base, tt.dir, got, tt.want)
		}
	}
}
