package buffer

import "github.com/fwojciec/editcore"

// Compile-time interface verification.
var _ editcore.TextWriter = (*PathBuffer)(nil)

// PathBuffer is a text container over a file path, so a rename edits the
// name through the same Replace semantics used for document text.
type PathBuffer struct {
	path []byte
}

// NewPath creates a path buffer holding path.
func NewPath(path string) *PathBuffer {
	return &PathBuffer{path: sanitize([]byte(path))}
}

// Path returns the current path.
func (p *PathBuffer) Path() string {
	return string(p.path)
}

// Len returns the path length in bytes.
func (p *PathBuffer) Len() int {
	return len(p.path)
}

// ReadForward returns the path bytes from off to the end.
func (p *PathBuffer) ReadForward(off int) []byte {
	return readForward(p.path, off)
}

// ReadBackward returns the path bytes before off.
func (p *PathBuffer) ReadBackward(off int) []byte {
	return readBackward(p.path, off)
}

// Replace replaces the path bytes in [start, end) with repl, clamping the
// range and sanitizing repl like every other writable container.
func (p *PathBuffer) Replace(start, end int, repl []byte) {
	p.path = splice(p.path, start, end, repl)
}
