// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mdesk/pkg/types"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "presets"))

	settings, err := types.DefaultSettings().With("fontSize", "12")
	require.NoError(t, err)
	settings, err = settings.With("fontFamily", types.FontCalibri)
	require.NoError(t, err)

	require.NoError(t, s.Save("thesis", settings))

	loaded, err := s.Load("thesis")
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

// A preset that names only some keys keeps the defaults for the rest.
func TestLoad_PartialPresetKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "wide.yaml"),
		[]byte("marginLeft: 1\nmarginRight: 1\n"), 0o644))

	loaded, err := s.Load("wide")
	require.NoError(t, err)
	assert.Equal(t, 1.0, loaded.MarginLeft)
	assert.Equal(t, 1.0, loaded.MarginRight)
	assert.Equal(t, types.FontTimesNewRoman, loaded.FontFamily)
	assert.Equal(t, 14.0, loaded.FontSize)
}

func TestLoad_Missing(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.Load("ghost")
	assert.Error(t, err)
}

func TestInvalidNames(t *testing.T) {
	s := NewStore(t.TempDir())

	for _, name := range []string{"", "../escape", "a/b", `a\b`, ".hidden"} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, s.Save(name, types.DefaultSettings()))
			_, err := s.Load(name)
			assert.Error(t, err)
		})
	}
}

func TestList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "presets")
	s := NewStore(dir)

	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names, "missing directory lists as empty")

	require.NoError(t, s.Save("thesis", types.DefaultSettings()))
	require.NoError(t, s.Save("article", types.DefaultSettings()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	names, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"article", "thesis"}, names)
}
