// Package lipgloss renders styled spans as ANSI terminal output using the
// Lipgloss styling library.
package lipgloss

import (
	"strings"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/fwojciec/editcore"
)

// Compile-time interface verification.
var _ editcore.SpanRenderer = (*Renderer)(nil)

// Renderer converts spans into styled terminal strings. It holds no state
// beyond the underlying lipgloss renderer, so one instance can serve every
// line of a render pass.
type Renderer struct {
	renderer *lipglosslib.Renderer
}

// NewRenderer creates a span renderer. If r is nil the default lipgloss
// renderer is used.
func NewRenderer(r *lipglosslib.Renderer) *Renderer {
	if r == nil {
		r = lipglosslib.DefaultRenderer()
	}
	return &Renderer{renderer: r}
}

// Render returns the spans as one ANSI-styled string.
func (r *Renderer) Render(spans []editcore.Span) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(r.styleFor(span.Style).Render(span.Text))
	}
	return sb.String()
}

// RenderClipped renders spans clipped to maxWidth display cells. Clipping
// happens at grapheme cluster boundaries, so a wide character that does not
// fit is dropped rather than split. The output is always a prefix of the
// line: once a span is truncated, no later span renders, even if the dropped
// cluster left cells unused.
func (r *Renderer) RenderClipped(spans []editcore.Span, maxWidth int) string {
	var sb strings.Builder
	remaining := maxWidth
	for _, span := range spans {
		if remaining <= 0 {
			break
		}
		text := span.Text
		if runewidth.StringWidth(text) > remaining {
			text = truncateToWidth(text, remaining)
		}
		sb.WriteString(r.styleFor(span.Style).Render(text))
		if runewidth.StringWidth(text) < runewidth.StringWidth(span.Text) {
			break
		}
		remaining -= runewidth.StringWidth(text)
	}
	return sb.String()
}

func (r *Renderer) styleFor(s editcore.Style) lipglosslib.Style {
	style := r.renderer.NewStyle()
	if s.Foreground != "" {
		style = style.Foreground(lipglosslib.Color(s.Foreground))
	}
	if s.Background != "" {
		style = style.Background(lipglosslib.Color(s.Background))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	if s.Underline {
		style = style.Underline(true)
	}
	return style
}

// truncateToWidth returns the longest prefix of s whose display width does
// not exceed maxWidth, walking grapheme clusters.
func truncateToWidth(s string, maxWidth int) string {
	var sb strings.Builder
	width := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		cluster, tail, _, newState := uniseg.StepString(rest, state)
		w := runewidth.StringWidth(cluster)
		if width+w > maxWidth {
			break
		}
		sb.WriteString(cluster)
		width += w
		rest = tail
		state = newState
	}
	return sb.String()
}
