// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preset stores named formatting presets as YAML files in a single
// directory. Each file holds one DocumentSettings record; the file name
// (without extension) is the preset name.
package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mdesk/pkg/types"
)

const presetExt = ".yaml"

// Store reads and writes presets under one directory.
type Store struct {
	dir string
}

// NewStore returns a preset store rooted at dir. The directory is created
// lazily on the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// validName rejects names that would escape the presets directory.
func validName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid preset name %q", name)
	}
	return nil
}

// Save writes settings to <dir>/<name>.yaml, replacing any existing preset
// of that name.
func (s *Store) Save(name string, settings types.DocumentSettings) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating presets directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling preset %s: %w", name, err)
	}
	return os.WriteFile(filepath.Join(s.dir, name+presetExt), data, 0o644)
}

// Load reads the named preset. Keys absent from the file keep their default
// value, the same merge the converter applies to its settings input.
func (s *Store) Load(name string) (types.DocumentSettings, error) {
	if err := validName(name); err != nil {
		return types.DocumentSettings{}, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name+presetExt))
	if err != nil {
		return types.DocumentSettings{}, fmt.Errorf("reading preset %s: %w", name, err)
	}

	settings := types.DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return types.DocumentSettings{}, fmt.Errorf("parsing preset %s: %w", name, err)
	}
	return settings, nil
}

// List returns preset names sorted alphabetically. A missing directory is
// not an error; it just means no presets exist yet.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading presets directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, presetExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, presetExt))
	}
	sort.Strings(names)
	return names, nil
}
