// Package chroma implements editcore's highlight engine on top of the chroma
// syntax highlighting library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/editcore"
)

// Compile-time interface verification.
var _ editcore.Highlighter = (*Engine)(nil)

// maxCacheEntries bounds the line span cache.
const maxCacheEntries = 1000

// defaultTheme is the active theme for a freshly constructed engine.
const defaultTheme = "github-dark"

// GrammarRegistry resolves lexers by name or alias. The zero lookup result
// is nil, meaning no grammar is registered under that name.
type GrammarRegistry interface {
	Get(name string) chromalib.Lexer
}

// RegistryFunc adapts a lookup function to GrammarRegistry.
type RegistryFunc func(name string) chromalib.Lexer

// Get resolves a lexer by calling f.
func (f RegistryFunc) Get(name string) chromalib.Lexer { return f(name) }

// DefaultRegistry returns a registry backed by chroma's built-in lexers.
func DefaultRegistry() GrammarRegistry {
	return RegistryFunc(lexers.Get)
}

// Engine highlights document lines. It owns a grammar registry, a theme
// registry with one active theme, and a bounded cache of computed spans.
// An engine is exclusively owned by one editing session and is not safe for
// concurrent use.
type Engine struct {
	grammars GrammarRegistry
	themes   map[string]*chromalib.Style
	current  string
	cache    *lineCache
}

// NewEngine creates an engine over the given grammar registry, with its
// theme registry seeded from chroma's built-in styles. A nil registry means
// the built-in lexers.
func NewEngine(grammars GrammarRegistry) *Engine {
	if grammars == nil {
		grammars = DefaultRegistry()
	}
	themes := make(map[string]*chromalib.Style, len(styles.Registry))
	for name, style := range styles.Registry {
		themes[name] = style
	}
	current := defaultTheme
	if _, ok := themes[current]; !ok {
		current = styles.Fallback.Name
		themes[current] = styles.Fallback
	}
	return &Engine{
		grammars: grammars,
		themes:   themes,
		current:  current,
		cache:    newLineCache(maxCacheEntries),
	}
}

// HighlightLine returns styled spans that partition line exactly. Results
// are cached by (line, lineNum); a hit skips grammar evaluation entirely.
func (e *Engine) HighlightLine(line string, ft editcore.FileType, lineNum int) []editcore.Span {
	if spans, ok := e.cache.get(line, lineNum); ok {
		return spans
	}

	var spans []editcore.Span
	if lexer, ok := e.resolveLexer(ft); ok {
		spans = e.delegateSpans(lexer, line)
	} else {
		spans = e.heuristicSpans(line)
	}

	e.cache.put(line, lineNum, spans)
	return spans
}

// CacheSize returns the number of cached line results.
func (e *Engine) CacheSize() int {
	return e.cache.len()
}

// delegateSpans tokenizes line with the resolved lexer under the active
// theme. Any tokenization failure degrades to a single default-styled span.
func (e *Engine) delegateSpans(lexer chromalib.Lexer, line string) []editcore.Span {
	if line == "" {
		return []editcore.Span{{Text: "", Style: e.defaultStyle()}}
	}

	iterator, err := chromalib.Coalesce(lexer).Tokenise(nil, line)
	if err != nil {
		return []editcore.Span{{Text: line, Style: e.defaultStyle()}}
	}

	theme := e.activeStyle()
	var spans []editcore.Span
	var rebuilt strings.Builder
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		// Lexers may append a newline the input line never had (EnsureNL).
		text := strings.Map(dropLineBreaks, token.Value)
		if text == "" {
			continue
		}
		spans = append(spans, editcore.Span{
			Text:  text,
			Style: styleFromEntry(theme.Get(token.Type)),
		})
		rebuilt.WriteString(text)
	}

	if rebuilt.String() != line {
		return []editcore.Span{{Text: line, Style: e.defaultStyle()}}
	}
	return spans
}

func dropLineBreaks(r rune) rune {
	if r == '\n' || r == '\r' {
		return -1
	}
	return r
}

// styleFromEntry converts a chroma style entry to an editcore style.
func styleFromEntry(entry chromalib.StyleEntry) editcore.Style {
	var s editcore.Style
	if entry.Colour.IsSet() {
		s.Foreground = entry.Colour.String()
	}
	if entry.Background.IsSet() {
		s.Background = entry.Background.String()
	}
	s.Bold = entry.Bold == chromalib.Yes
	s.Italic = entry.Italic == chromalib.Yes
	s.Underline = entry.Underline == chromalib.Yes
	return s
}

func (e *Engine) activeStyle() *chromalib.Style {
	if style, ok := e.themes[e.current]; ok {
		return style
	}
	return styles.Fallback
}

func (e *Engine) defaultStyle() editcore.Style {
	return styleFromEntry(e.activeStyle().Get(chromalib.Text))
}
