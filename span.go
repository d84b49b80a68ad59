package editcore

import "strings"

// Span represents a contiguous run of line text with a single visual style.
// A highlighted line is an ordered sequence of spans whose concatenated text
// equals the original line exactly.
type Span struct {
	Text  string // The text content of this span
	Style Style  // Visual style to apply (colors, attributes)
}

// Style represents the visual styling for a span.
// Colors are hex strings in "#rrggbb" format; empty means terminal default.
type Style struct {
	Foreground string
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
}

// SpanText concatenates the text of the given spans. For spans produced by a
// Highlighter this reconstructs the original line.
func SpanText(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
