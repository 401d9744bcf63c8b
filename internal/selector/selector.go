// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selector holds the single Markdown source file picked by the user.
//
// Both input paths (the browse dialog and drag-and-drop) go through the same
// Select call, so the extension check applies uniformly. A rejected candidate
// returns ErrNotMarkdown and leaves the current selection unchanged.
package selector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mdesk/pkg/types"
)

// markdownExt is the only accepted source extension.
const markdownExt = ".md"

// ErrNotMarkdown is returned when a candidate file does not carry the
// Markdown extension.
var ErrNotMarkdown = errors.New("not a Markdown file")

// Selector holds at most one selected source file.
type Selector struct {
	current *types.SelectedFile
}

// New returns an empty selector.
func New() *Selector {
	return &Selector{}
}

// Select validates path and makes it the current selection. The extension
// check is case-insensitive. On any rejection the previous selection is kept.
func (s *Selector) Select(path string) (types.SelectedFile, error) {
	if !strings.EqualFold(filepath.Ext(path), markdownExt) {
		return types.SelectedFile{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotMarkdown)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return types.SelectedFile{}, fmt.Errorf("resolving %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return types.SelectedFile{}, fmt.Errorf("inspecting %s: %w", path, err)
	}
	if info.IsDir() {
		return types.SelectedFile{}, fmt.Errorf("%s is a directory", path)
	}

	f := types.SelectedFile{
		Name: filepath.Base(abs),
		Path: abs,
		Size: info.Size(),
	}
	s.current = &f
	return f, nil
}

// Current returns a copy of the selection, or nil when nothing is selected.
func (s *Selector) Current() *types.SelectedFile {
	if s.current == nil {
		return nil
	}
	f := *s.current
	return &f
}

// Clear drops the selection.
func (s *Selector) Clear() {
	s.current = nil
}
