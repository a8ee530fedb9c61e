package classify_test

import (
	"strings"
	"testing"

	"github.com/chris-edwards-pub/c64-dir-organizer/internal/classify"
)

func TestClassifyDefaultTable(t *testing.T) {
	classifier, err := classify.New(classify.DefaultTable())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		category string
		bucket   string
		matched  bool
	}{
		{"lowercase letter lead", "game.prg", "PRG", "G", true},
		{"uppercase letter lead", "Game.prg", "PRG", "G", true},
		{"disk image", "disk.d64", "D64", "D", true},
		{"digit lead", "1tape.tap", "TAP", "0_9", true},
		{"underscore lead", "_save.d81", "D81", "0_9", true},
		{"uppercase extension", "FOO.D64", "D64", "F", true},
		{"mixed case extension", "foo.PrG", "PRG", "F", true},
		{"path is stripped", "/srv/c64/nested/zork.t64", "T64", "Z", true},
		{"unmatched extension", "readme.txt", "", "", false},
		{"no extension", "LICENSE", "", "", false},
		{"extension only matches suffix", "prg", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placement, ok := classifier.Classify(tt.path)
			if ok != tt.matched {
				t.Fatalf("Classify(%q) matched=%v, want %v", tt.path, ok, tt.matched)
			}
			if !tt.matched {
				return
			}
			if placement.Category != tt.category {
				t.Errorf("category: got %q, want %q", placement.Category, tt.category)
			}
			if placement.Bucket != tt.bucket {
				t.Errorf("bucket: got %q, want %q", placement.Bucket, tt.bucket)
			}
		})
	}
}

func TestClassifyCustomTable(t *testing.T) {
	classifier, err := classify.New(classify.Table{"SID": ".sid"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, ok := classifier.Classify("tune.sid"); !ok {
		t.Fatal("expected .sid to match the custom table")
	}
	if _, ok := classifier.Classify("game.prg"); ok {
		t.Fatal("expected .prg to be unmatched with the custom table")
	}
}

func TestPlacementRelativeDir(t *testing.T) {
	p := classify.Placement{Category: "TAP", Bucket: "0_9"}
	want := "TAP/0_9"
	if got := p.RelativeDir(); got != want {
		t.Fatalf("RelativeDir: got %q, want %q", got, want)
	}
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   classify.Table
		wantErr string
	}{
		{"valid", classify.Table{"PRG": ".prg"}, ""},
		{"missing dot", classify.Table{"PRG": "prg"}, "must start with a dot"},
		{"bare dot", classify.Table{"PRG": "."}, "must start with a dot"},
		{"empty name", classify.Table{" ": ".prg"}, "must not be empty"},
		{"duplicate extension", classify.Table{"A": ".prg", "B": ".PRG"}, "both claim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate error %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestCategoriesSorted(t *testing.T) {
	classifier, err := classify.New(classify.DefaultTable())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	entries := classifier.Categories()
	if len(entries) != len(classify.DefaultTable()) {
		t.Fatalf("expected %d entries, got %d", len(classify.DefaultTable()), len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Name >= entries[i].Name {
			t.Fatalf("entries not sorted: %q before %q", entries[i-1].Name, entries[i].Name)
		}
	}
}
