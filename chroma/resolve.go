package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/editcore"
)

// resolution describes how a file type maps onto grammar lookups. Adding a
// language means adding a row here, not changing engine code.
type resolution struct {
	// probes are the native grammar names and aliases, tried in order. Any
	// hit means the file type has a usable grammar.
	probes []string

	// standIns are structurally similar grammars tried when no native
	// grammar is registered and no heuristic applies.
	standIns []string

	// heuristic selects rule-based fallback styling over a stand-in grammar
	// when every probe misses.
	heuristic bool
}

var resolutions = map[editcore.FileType]resolution{
	editcore.FileTypePython:     {probes: []string{"python", "py"}},
	editcore.FileTypeRust:       {probes: []string{"rust", "rs"}},
	editcore.FileTypeJavaScript: {probes: []string{"javascript", "js"}},
	editcore.FileTypeTypeScript: {probes: []string{"typescript", "ts", "tsx"}, standIns: []string{"javascript"}},
	editcore.FileTypeHTML:       {probes: []string{"html"}},
	editcore.FileTypeCSS:        {probes: []string{"css"}},
	editcore.FileTypeDockerfile: {probes: []string{"docker", "dockerfile"}, standIns: []string{"bash"}},
	editcore.FileTypeYAML:       {probes: []string{"yaml", "yml"}, heuristic: true},
}

// resolveLexer resolves a grammar for ft. The second result is false when
// the engine should style the line heuristically instead of delegating.
// File types without a resolution row, including Plain, use the plain-text
// grammar.
func (e *Engine) resolveLexer(ft editcore.FileType) (chromalib.Lexer, bool) {
	res, ok := resolutions[ft]
	if !ok {
		return lexers.Fallback, true
	}
	for _, name := range res.probes {
		if lexer := e.grammars.Get(name); lexer != nil {
			return lexer, true
		}
	}
	if res.heuristic {
		return nil, false
	}
	for _, name := range res.standIns {
		if lexer := e.grammars.Get(name); lexer != nil {
			return lexer, true
		}
	}
	return lexers.Fallback, true
}

// HasGrammar reports whether a native grammar is registered for ft. This is
// a live probe against the registry, not a static capability table.
func (e *Engine) HasGrammar(ft editcore.FileType) bool {
	res, ok := resolutions[ft]
	if !ok {
		return false
	}
	for _, name := range res.probes {
		if e.grammars.Get(name) != nil {
			return true
		}
	}
	return false
}
