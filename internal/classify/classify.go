// Package classify maps filenames onto the two-level destination layout:
// a category directory keyed by file extension and a bucket directory keyed
// by the first character of the filename.
package classify

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// NumericBucket is the catch-all bucket for filenames whose first character
// is not an ASCII letter.
const NumericBucket = "0_9"

// Table maps a category name (destination directory, e.g. "PRG") to the
// file extension it collects (with leading dot, e.g. ".prg").
type Table map[string]string

// DefaultTable returns the built-in category table covering the common
// Commodore 64 image and program formats.
func DefaultTable() Table {
	return Table{
		"D64": ".d64",
		"G64": ".g64",
		"PRG": ".prg",
		"T64": ".t64",
		"F64": ".f64",
		"CRT": ".crt",
		"TAP": ".tap",
		"D81": ".d81",
		"D71": ".d71",
	}
}

// Validate checks that the table is usable: non-empty names, dotted
// extensions, and no extension claimed by two categories.
func (t Table) Validate() error {
	seen := make(map[string]string, len(t))
	for name, ext := range t {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("category name must not be empty (extension %q)", ext)
		}
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(normalized, ".") || len(normalized) < 2 {
			return fmt.Errorf("category %s: extension %q must start with a dot", name, ext)
		}
		if other, ok := seen[normalized]; ok {
			return fmt.Errorf("categories %s and %s both claim extension %q", other, name, normalized)
		}
		seen[normalized] = name
	}
	return nil
}

// Placement is the computed destination slot for a single file.
type Placement struct {
	Category string
	Bucket   string
}

// RelativeDir returns the destination directory for the placement, relative
// to the destination base.
func (p Placement) RelativeDir() string {
	return filepath.Join(p.Category, p.Bucket)
}

// Classifier assigns files to placements using an injected category table.
type Classifier struct {
	// byExtension indexes lowercased extensions back to category names.
	byExtension map[string]string
}

// New builds a Classifier from the given table. The table is indexed at
// construction time and not referenced afterwards, so callers may mutate
// their copy freely.
func New(table Table) (*Classifier, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	index := make(map[string]string, len(table))
	for name, ext := range table {
		index[strings.ToLower(strings.TrimSpace(ext))] = strings.ToUpper(strings.TrimSpace(name))
	}
	return &Classifier{byExtension: index}, nil
}

// Classify computes the placement for the given path. The second return
// value is false when the extension matches no category; such files are
// skipped by callers, never treated as errors.
//
// Extension matching is case-insensitive (FOO.D64 lands in D64). Buckets
// are normalized to uppercase letters; anything without an ASCII letter in
// the leading position goes to the 0_9 bucket.
func (c *Classifier) Classify(path string) (Placement, bool) {
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(name))
	category, ok := c.byExtension[ext]
	if !ok {
		return Placement{}, false
	}
	return Placement{Category: category, Bucket: bucketFor(name)}, true
}

// Categories returns the category/extension pairs in use, sorted by name.
func (c *Classifier) Categories() []CategoryEntry {
	entries := make([]CategoryEntry, 0, len(c.byExtension))
	for ext, name := range c.byExtension {
		entries = append(entries, CategoryEntry{Name: name, Extension: ext})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// CategoryEntry is one row of the active table, used for display output.
type CategoryEntry struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
}

func bucketFor(name string) string {
	if name == "" {
		return NumericBucket
	}
	first := name[0]
	switch {
	case first >= 'a' && first <= 'z':
		return strings.ToUpper(string(first))
	case first >= 'A' && first <= 'Z':
		return string(first)
	default:
		return NumericBucket
	}
}
