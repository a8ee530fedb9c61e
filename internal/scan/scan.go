// Package scan enumerates candidate files under a source directory.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrSourceMissing reports that the source directory does not exist or is
// not a directory. Callers surface this before any placement work begins.
var ErrSourceMissing = errors.New("source directory not found")

// Options controls a single traversal.
type Options struct {
	// Recursive descends into nested subdirectories; otherwise only the
	// immediate children of the source are considered.
	Recursive bool
	// Prune is a directory subtree to skip entirely. The organize run sets
	// it to the destination base so files placed mid-run are never
	// re-discovered when the destination nests under the source.
	Prune string
}

// Files returns the regular files under src, sorted lexicographically for a
// deterministic processing order. Directories themselves are never
// candidates.
func Files(src string, opts Options) ([]string, error) {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, src)
		}
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceMissing, src)
	}

	if !opts.Recursive {
		return topLevelFiles(src)
	}

	prune := filepath.Clean(opts.Prune)
	var files []string
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if opts.Prune != "" && filepath.Clean(path) == prune {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func topLevelFiles(src string) ([]string, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(src, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ContainsPath reports whether dir is base itself or nests under it. Used to
// decide whether the destination must be pruned from traversal.
func ContainsPath(base, dir string) bool {
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
