package chroma

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
)

// SetTheme switches the active theme and clears the span cache, since every
// cached span carries colors of the outgoing theme. It reports whether name
// is registered; on an unknown name nothing changes.
func (e *Engine) SetTheme(name string) bool {
	if _, ok := e.themes[name]; !ok {
		return false
	}
	e.current = name
	e.cache.clear()
	return true
}

// CurrentTheme returns the active theme name.
func (e *Engine) CurrentTheme() string {
	return e.current
}

// LoadCustomTheme parses a chroma XML style definition from path, registers
// it under the file's base name ("custom" if the name is empty), switches to
// it, and clears the cache. On any failure the theme registry and active
// theme are left untouched.
func (e *Engine) LoadCustomTheme(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()

	style, err := chromalib.NewXMLStyle(f)
	if err != nil {
		return fmt.Errorf("parse theme %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name == "" || name == "." {
		name = "custom"
	}

	e.themes[name] = style
	e.current = name
	e.cache.clear()
	return nil
}

// AvailableThemes lists the registered theme names in sorted order.
func (e *Engine) AvailableThemes() []string {
	names := make([]string, 0, len(e.themes))
	for name := range e.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
