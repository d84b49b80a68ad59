package chroma_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/editcore"
	"github.com/fwojciec/editcore/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customThemeXML = `<style name="neon">
  <entry type="Background" style="bg:#101010 #f0f0f0"/>
  <entry type="Keyword" style="bold #39ff14"/>
  <entry type="Comment" style="italic #707070"/>
</style>
`

func TestEngine_SetTheme(t *testing.T) {
	t.Parallel()

	t.Run("switches and clears the cache", func(t *testing.T) {
		t.Parallel()

		e := chroma.NewEngine(nil)
		e.HighlightLine("def f():", editcore.FileTypePython, 0)
		require.Positive(t, e.CacheSize())

		require.True(t, e.SetTheme("monokai"))
		assert.Equal(t, "monokai", e.CurrentTheme())
		assert.Zero(t, e.CacheSize(), "theme switch must clear the span cache")
	})

	t.Run("recomputes spans under the new theme", func(t *testing.T) {
		t.Parallel()

		e := chroma.NewEngine(nil)
		before := e.HighlightLine("def f():", editcore.FileTypePython, 0)

		require.True(t, e.SetTheme("monokai"))
		after := e.HighlightLine("def f():", editcore.FileTypePython, 0)

		assert.Equal(t, editcore.SpanText(before), editcore.SpanText(after))
		assert.NotEqual(t, before, after, "styles should change with the theme")
	})

	t.Run("unknown theme leaves state unchanged", func(t *testing.T) {
		t.Parallel()

		e := chroma.NewEngine(nil)
		e.HighlightLine("x = 1", editcore.FileTypePython, 0)
		current := e.CurrentTheme()
		size := e.CacheSize()

		assert.False(t, e.SetTheme("no-such-theme"))
		assert.Equal(t, current, e.CurrentTheme())
		assert.Equal(t, size, e.CacheSize(), "failed switch must not clear the cache")
	})
}

func TestEngine_LoadCustomTheme(t *testing.T) {
	t.Parallel()

	t.Run("registers under the file base name and activates", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "neon.xml")
		require.NoError(t, os.WriteFile(path, []byte(customThemeXML), 0o644))

		e := chroma.NewEngine(nil)
		e.HighlightLine("x = 1", editcore.FileTypePython, 0)

		require.NoError(t, e.LoadCustomTheme(path))
		assert.Equal(t, "neon", e.CurrentTheme())
		assert.Contains(t, e.AvailableThemes(), "neon")
		assert.Zero(t, e.CacheSize(), "loading a theme must clear the span cache")
	})

	t.Run("extension-only filename registers as custom", func(t *testing.T) {
		t.Parallel()

		// The base name of ".xml" is all extension, leaving nothing to name
		// the theme by.
		path := filepath.Join(t.TempDir(), ".xml")
		require.NoError(t, os.WriteFile(path, []byte(customThemeXML), 0o644))

		e := chroma.NewEngine(nil)
		require.NoError(t, e.LoadCustomTheme(path))
		assert.Equal(t, "custom", e.CurrentTheme())
		assert.Contains(t, e.AvailableThemes(), "custom")
	})

	t.Run("missing file surfaces an error and changes nothing", func(t *testing.T) {
		t.Parallel()

		e := chroma.NewEngine(nil)
		current := e.CurrentTheme()
		themes := len(e.AvailableThemes())

		err := e.LoadCustomTheme(filepath.Join(t.TempDir(), "absent.xml"))
		require.Error(t, err)
		assert.Equal(t, current, e.CurrentTheme())
		assert.Len(t, e.AvailableThemes(), themes)
	})

	t.Run("malformed theme surfaces an error and changes nothing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.xml")
		require.NoError(t, os.WriteFile(path, []byte("not a theme"), 0o644))

		e := chroma.NewEngine(nil)
		current := e.CurrentTheme()
		themes := len(e.AvailableThemes())

		err := e.LoadCustomTheme(path)
		require.Error(t, err)
		assert.Equal(t, current, e.CurrentTheme())
		assert.Len(t, e.AvailableThemes(), themes)
	})
}

func TestEngine_AvailableThemes(t *testing.T) {
	t.Parallel()

	e := chroma.NewEngine(nil)
	themes := e.AvailableThemes()

	assert.NotEmpty(t, themes)
	assert.Contains(t, themes, "github-dark")
	assert.Contains(t, themes, "monokai")
	assert.IsNonDecreasing(t, themes)
}
