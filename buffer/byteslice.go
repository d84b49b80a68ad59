package buffer

import "github.com/fwojciec/editcore"

// Compile-time interface verification.
var _ editcore.TextReader = ByteSlice(nil)

// ByteSlice is a read-only text container over a raw byte slice. It supports
// the read capability only; callers that need mutation should copy the
// content into a Buffer.
type ByteSlice []byte

// ReadForward returns the bytes from off to the end of the slice.
func (s ByteSlice) ReadForward(off int) []byte {
	return readForward(s, off)
}

// ReadBackward returns the bytes before off.
func (s ByteSlice) ReadBackward(off int) []byte {
	return readBackward(s, off)
}
