package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/editcore"
)

// heuristicRule pairs a line predicate with a span producer. Rules are
// evaluated in order; the first match wins. This mirrors the indent engine's
// rule-table design: extending the fallback means adding a row.
type heuristicRule struct {
	match func(line string) bool
	spans func(e *Engine, line string) []editcore.Span
}

var heuristicRules = []heuristicRule{
	{match: isCommentLine, spans: commentSpans},
	{match: isKeyValueLine, spans: keyValueSpans},
	{match: isListItemLine, spans: listItemSpans},
}

// heuristicSpans styles a line without a grammar. Colors come from the
// active theme, so heuristic output stays consistent across theme switches.
func (e *Engine) heuristicSpans(line string) []editcore.Span {
	for _, rule := range heuristicRules {
		if rule.match(line) {
			return rule.spans(e, line)
		}
	}
	return []editcore.Span{{Text: line, Style: e.defaultStyle()}}
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}

func isKeyValueLine(line string) bool {
	return strings.Contains(line, ":") && !isListItemLine(line)
}

func isListItemLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "-")
}

// commentSpans styles the whole line as a comment.
func commentSpans(e *Engine, line string) []editcore.Span {
	return []editcore.Span{{
		Text:  line,
		Style: styleFromEntry(e.activeStyle().Get(chromalib.Comment)),
	}}
}

// keyValueSpans styles the key through the colon, then the remainder.
func keyValueSpans(e *Engine, line string) []editcore.Span {
	colon := strings.Index(line, ":")
	spans := []editcore.Span{{
		Text:  line[:colon+1],
		Style: styleFromEntry(e.activeStyle().Get(chromalib.NameTag)),
	}}
	if colon+1 < len(line) {
		spans = append(spans, editcore.Span{
			Text:  line[colon+1:],
			Style: e.defaultStyle(),
		})
	}
	return spans
}

// listItemSpans styles the leading whitespace, the dash marker, and the
// remainder as separate spans.
func listItemSpans(e *Engine, line string) []editcore.Span {
	dash := strings.Index(line, "-")
	var spans []editcore.Span
	if dash > 0 {
		spans = append(spans, editcore.Span{Text: line[:dash], Style: e.defaultStyle()})
	}
	spans = append(spans, editcore.Span{
		Text:  "-",
		Style: styleFromEntry(e.activeStyle().Get(chromalib.Punctuation)),
	})
	if dash+1 < len(line) {
		spans = append(spans, editcore.Span{Text: line[dash+1:], Style: e.defaultStyle()})
	}
	return spans
}
