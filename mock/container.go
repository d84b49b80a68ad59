package mock

import "github.com/fwojciec/editcore"

// Compile-time interface verification.
var _ editcore.TextWriter = (*Container)(nil)

// Container is a mock implementation of editcore.TextWriter.
type Container struct {
	ReadForwardFn  func(off int) []byte
	ReadBackwardFn func(off int) []byte
	ReplaceFn      func(start, end int, repl []byte)
}

func (c *Container) ReadForward(off int) []byte {
	return c.ReadForwardFn(off)
}

func (c *Container) ReadBackward(off int) []byte {
	return c.ReadBackwardFn(off)
}

func (c *Container) Replace(start, end int, repl []byte) {
	c.ReplaceFn(start, end, repl)
}
