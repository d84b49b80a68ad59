// Package mock provides test doubles for editcore interfaces.
package mock

import "github.com/fwojciec/editcore"

// Compile-time interface verification.
var _ editcore.Highlighter = (*Highlighter)(nil)

// Highlighter is a mock implementation of editcore.Highlighter.
type Highlighter struct {
	HighlightLineFn   func(line string, ft editcore.FileType, lineNum int) []editcore.Span
	SetThemeFn        func(name string) bool
	LoadCustomThemeFn func(path string) error
	AvailableThemesFn func() []string
	HasGrammarFn      func(ft editcore.FileType) bool
}

func (h *Highlighter) HighlightLine(line string, ft editcore.FileType, lineNum int) []editcore.Span {
	return h.HighlightLineFn(line, ft, lineNum)
}

func (h *Highlighter) SetTheme(name string) bool {
	return h.SetThemeFn(name)
}

func (h *Highlighter) LoadCustomTheme(path string) error {
	return h.LoadCustomThemeFn(path)
}

func (h *Highlighter) AvailableThemes() []string {
	return h.AvailableThemesFn()
}

func (h *Highlighter) HasGrammar(ft editcore.FileType) bool {
	return h.HasGrammarFn(ft)
}
