// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selector

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file with some content and returns its path.
func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("# Heading\n\nBody.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSelect(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "markdown file", path: writeFile(t, dir, "x.md")},
		{name: "uppercase extension", path: writeFile(t, dir, "NOTES.MD")},
		{name: "text file rejected", path: writeFile(t, dir, "x.txt"), wantErr: ErrNotMarkdown},
		{name: "no extension rejected", path: writeFile(t, dir, "README"), wantErr: ErrNotMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			got, err := s.Select(tt.path)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if s.Current() != nil {
					t.Error("rejected selection must not be stored")
				}
				return
			}

			if err != nil {
				t.Fatalf("Select(%s): %v", tt.path, err)
			}
			if got.Name != filepath.Base(tt.path) {
				t.Errorf("Name = %q, want %q", got.Name, filepath.Base(tt.path))
			}
			if !filepath.IsAbs(got.Path) {
				t.Errorf("Path = %q, want absolute", got.Path)
			}
			if got.Size == 0 {
				t.Error("Size should be non-zero")
			}
			cur := s.Current()
			if cur == nil || *cur != got {
				t.Errorf("Current() = %v, want %v", cur, got)
			}
		})
	}
}

// Dropping a non-Markdown file must leave an existing selection in place.
func TestSelect_RejectionKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	md := writeFile(t, dir, "x.md")
	txt := writeFile(t, dir, "x.txt")

	s := New()
	if _, err := s.Select(md); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Select(txt); !errors.Is(err, ErrNotMarkdown) {
		t.Fatalf("err = %v, want ErrNotMarkdown", err)
	}

	cur := s.Current()
	if cur == nil || cur.Name != "x.md" {
		t.Errorf("Current() = %v, want the earlier x.md selection", cur)
	}
}

func TestSelect_MissingFile(t *testing.T) {
	s := New()
	if _, err := s.Select(filepath.Join(t.TempDir(), "ghost.md")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if s.Current() != nil {
		t.Error("selection must stay empty after a failed select")
	}
}

func TestSelect_Directory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "folder.md")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	s := New()
	if _, err := s.Select(sub); err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	s := New()
	if _, err := s.Select(writeFile(t, dir, "x.md")); err != nil {
		t.Fatal(err)
	}

	s.Clear()
	if s.Current() != nil {
		t.Error("Current() should be nil after Clear")
	}
}

// Current must hand out a copy, not a pointer into the selector's state.
func TestCurrent_Copy(t *testing.T) {
	dir := t.TempDir()
	s := New()
	if _, err := s.Select(writeFile(t, dir, "x.md")); err != nil {
		t.Fatal(err)
	}

	first := s.Current()
	first.Name = "tampered"

	if s.Current().Name != "x.md" {
		t.Error("mutating the returned record changed the selector's state")
	}
}
