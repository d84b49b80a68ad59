// Package editcore provides the language-aware text services of a terminal
// text editor: grapheme-safe text containers, syntax highlighting, and
// rule-based auto-indentation.
package editcore

// TextReader is an abstraction over reading from text containers.
//
// Implementations must be lenient on inputs and strict on outputs: offsets
// may be out of bounds and must be clamped, offsets may fall inside a
// grapheme cluster, but returned slices must never split one.
type TextReader interface {
	// ReadForward returns the bytes from the given absolute offset to the
	// end of the container. The result must not be empty unless the clamped
	// offset is at the end. If the offset falls inside a grapheme cluster,
	// the result may include extra leading bytes so that the cluster stays
	// whole.
	ReadForward(off int) []byte

	// ReadBackward returns the bytes before the given absolute offset. The
	// result must not be empty unless the clamped offset is zero. If the
	// offset falls inside a grapheme cluster, the result may include extra
	// trailing bytes so that the cluster stays whole.
	ReadBackward(off int) []byte
}

// TextWriter is an abstraction over writing to text containers.
type TextWriter interface {
	TextReader

	// Replace replaces the bytes in [start, end) with repl. The range may be
	// out of bounds and is clamped. repl is not required to be valid UTF-8;
	// implementations sanitize it before committing, so the container holds
	// valid text after every call.
	Replace(start, end int, repl []byte)
}

// Highlighter computes styled spans for document lines.
type Highlighter interface {
	// HighlightLine returns spans that partition line exactly: concatenating
	// their text reconstructs line with no gaps and no overlaps.
	HighlightLine(line string, ft FileType, lineNum int) []Span

	// SetTheme switches the active theme. It reports whether name was found;
	// on failure no state changes.
	SetTheme(name string) bool

	// LoadCustomTheme parses a theme definition from path, registers it
	// under a name derived from the file's base name, and switches to it.
	// On failure the existing registry and active theme are untouched.
	LoadCustomTheme(path string) error

	// AvailableThemes lists the registered theme names.
	AvailableThemes() []string

	// HasGrammar reports whether a native grammar is registered for ft.
	HasGrammar(ft FileType) bool
}

// Indenter computes the indentation column for a newly inserted line.
type Indenter interface {
	// CalculateIndent returns the indent column for the line being inserted
	// at targetIdx, given the preceding lines, the text of the new line so
	// far, and the tab size in columns. The result is never negative.
	CalculateIndent(lines []string, targetIdx int, candidate string, ft FileType, tabSize int) int
}

// SpanRenderer converts styled spans into terminal output.
type SpanRenderer interface {
	Render(spans []Span) string
}
