package buffer

import (
	"bytes"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// readForward returns b[off:] with off clamped to [0, len(b)] and snapped
// backward to the nearest grapheme cluster boundary, so a cluster containing
// off is returned whole rather than split.
func readForward(b []byte, off int) []byte {
	return b[snapBackward(b, clamp(off, len(b))):]
}

// readBackward returns b[:off] with off clamped to [0, len(b)] and snapped
// forward to the nearest grapheme cluster boundary.
func readBackward(b []byte, off int) []byte {
	return b[:snapForward(b, clamp(off, len(b)))]
}

// splice returns b with [start, end) replaced by a sanitized copy of repl.
// The range is clamped to the bounds of b. The scratch buffer used for
// sanitizing lives only for the duration of the call.
func splice(b []byte, start, end int, repl []byte) []byte {
	start = clamp(start, len(b))
	end = clamp(end, len(b))
	if end < start {
		end = start
	}

	src := sanitize(repl)

	out := make([]byte, 0, len(b)-(end-start)+len(src))
	out = append(out, b[:start]...)
	out = append(out, src...)
	out = append(out, b[end:]...)
	return out
}

// sanitize returns b as valid UTF-8, substituting the Unicode replacement
// character for invalid sequences. Valid input is returned as is.
func sanitize(b []byte) []byte {
	if utf8.Valid(b) {
		return b
	}
	return bytes.ToValidUTF8(b, []byte("�"))
}

func clamp(off, n int) int {
	if off < 0 {
		return 0
	}
	if off > n {
		return n
	}
	return off
}

// snapBackward returns the largest grapheme cluster boundary at or before
// off. off must already be clamped to [0, len(b)].
func snapBackward(b []byte, off int) int {
	if off == 0 || off == len(b) {
		return off
	}
	pos := 0
	state := -1
	rest := b
	for len(rest) > 0 {
		cluster, tail, _, newState := uniseg.Step(rest, state)
		next := pos + len(cluster)
		if next > off {
			return pos
		}
		pos = next
		rest = tail
		state = newState
	}
	return pos
}

// snapForward returns the smallest grapheme cluster boundary at or after
// off. off must already be clamped to [0, len(b)].
func snapForward(b []byte, off int) int {
	if off == 0 || off == len(b) {
		return off
	}
	pos := 0
	state := -1
	rest := b
	for len(rest) > 0 {
		if pos >= off {
			return pos
		}
		cluster, tail, _, newState := uniseg.Step(rest, state)
		pos += len(cluster)
		rest = tail
		state = newState
	}
	return len(b)
}
