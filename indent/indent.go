// Package indent computes auto-indentation for newly inserted lines from
// per-language pattern tables.
package indent

import (
	"regexp"

	"github.com/fwojciec/editcore"
)

// Compile-time interface verification.
var _ editcore.Indenter = (*Engine)(nil)

// Rule holds the ordered pattern lists for one language. Rules are immutable
// after construction.
type Rule struct {
	// Increase patterns are tested against the previous line; a match adds
	// one indent level to the new line.
	Increase []*regexp.Regexp

	// Decrease patterns are tested against the candidate line; a match
	// removes one indent level.
	Decrease []*regexp.Regexp

	// DecreaseIncrease patterns are tested against the candidate line; a
	// match keeps the previous indent, for constructs that close a block and
	// open another on the same line.
	DecreaseIncrease []*regexp.Regexp

	// Exceptions override the computed indent when the previous line matches
	// a structural pattern.
	Exceptions []Exception
}

// Exception resets indentation to a fixed column when the previous line
// matches Pattern. AtTopLevel restricts the exception to a previous line
// with zero indentation.
type Exception struct {
	Pattern    *regexp.Regexp
	AtTopLevel bool
	Column     int
}

// Engine computes indentation from fixed rule tables. It carries no mutable
// state: one engine can serve every open document in a process.
type Engine struct {
	rules map[editcore.FileType]Rule
}

// NewEngine returns an engine with the built-in rule tables.
func NewEngine() *Engine {
	return &Engine{rules: defaultRules()}
}

// NewEngineWithRules returns an engine over the given rule tables.
func NewEngineWithRules(rules map[editcore.FileType]Rule) *Engine {
	return &Engine{rules: rules}
}

// CalculateIndent returns the indent column for the line being inserted at
// targetIdx. File types without a rule table inherit the previous line's
// indentation unchanged.
func (e *Engine) CalculateIndent(lines []string, targetIdx int, candidate string, ft editcore.FileType, tabSize int) int {
	if targetIdx == 0 || len(lines) == 0 {
		return 0
	}

	prevIdx := targetIdx - 1
	if prevIdx >= len(lines) {
		prevIdx = len(lines) - 1
	}
	prev := lines[prevIdx]
	prevIndent := LineIndent(prev, tabSize)

	rule, ok := e.rules[ft]
	if !ok {
		return prevIndent
	}

	if matchAny(rule.Decrease, candidate) {
		if prevIndent < tabSize {
			return 0
		}
		return prevIndent - tabSize
	}

	if matchAny(rule.DecreaseIncrease, candidate) {
		return prevIndent
	}

	for _, ex := range rule.Exceptions {
		if ex.AtTopLevel && prevIndent != 0 {
			continue
		}
		if ex.Pattern.MatchString(prev) {
			return ex.Column
		}
	}

	if matchAny(rule.Increase, prev) {
		return prevIndent + tabSize
	}

	return prevIndent
}

// LineIndent returns the column width of the leading whitespace of line:
// a space is one column, a tab is tabSize columns. Counting stops at the
// first non-whitespace character.
func LineIndent(line string, tabSize int) int {
	col := 0
	for _, r := range line {
		switch r {
		case ' ':
			col++
		case '\t':
			col += tabSize
		default:
			return col
		}
	}
	return col
}

func matchAny(patterns []*regexp.Regexp, line string) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
