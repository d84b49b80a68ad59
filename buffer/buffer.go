// Package buffer provides text container backends: an owned growable text
// buffer, an immutable read-only byte slice, and a file path buffer. All
// backends clamp out-of-range offsets and never split a grapheme cluster.
package buffer

import (
	"github.com/fwojciec/editcore"
)

// Compile-time interface verification.
var _ editcore.TextWriter = (*Buffer)(nil)

// Buffer is an owned, growable in-memory text container. The content is
// always valid UTF-8: the initial content and every replacement are
// sanitized before they are committed.
type Buffer struct {
	content []byte
}

// New creates a buffer holding content.
func New(content string) *Buffer {
	return &Buffer{content: sanitize([]byte(content))}
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	return len(b.content)
}

// String returns the buffer content.
func (b *Buffer) String() string {
	return string(b.content)
}

// ReadForward returns the bytes from off to the end of the buffer. The
// returned slice aliases the buffer and is valid until the next Replace.
func (b *Buffer) ReadForward(off int) []byte {
	return readForward(b.content, off)
}

// ReadBackward returns the bytes before off. The returned slice aliases the
// buffer and is valid until the next Replace.
func (b *Buffer) ReadBackward(off int) []byte {
	return readBackward(b.content, off)
}

// Replace replaces the bytes in [start, end) with repl. The range is clamped
// to the buffer bounds and repl is sanitized to valid UTF-8 before the
// splice, so the buffer holds valid text afterwards regardless of input.
func (b *Buffer) Replace(start, end int, repl []byte) {
	b.content = splice(b.content, start, end, repl)
}
