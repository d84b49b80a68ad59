package editcore_test

import (
	"testing"

	"github.com/fwojciec/editcore"
	"github.com/fwojciec/editcore/buffer"
	"github.com/fwojciec/editcore/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_FileType(t *testing.T) {
	t.Parallel()

	doc := editcore.NewDocument(buffer.New("fn main() {}"), "main.rs", nil)
	assert.Equal(t, editcore.FileTypeRust, doc.FileType())
}

func TestDocument_HighlightLine(t *testing.T) {
	t.Parallel()

	t.Run("passes the detected file type to the highlighter", func(t *testing.T) {
		t.Parallel()

		var gotFT editcore.FileType
		var gotNum int
		h := &mock.Highlighter{
			HighlightLineFn: func(line string, ft editcore.FileType, lineNum int) []editcore.Span {
				gotFT = ft
				gotNum = lineNum
				return []editcore.Span{{Text: line}}
			},
		}

		doc := editcore.NewDocument(buffer.New("x = 1"), "script.py", h)
		spans := doc.HighlightLine("x = 1", 7)

		require.Len(t, spans, 1)
		assert.Equal(t, editcore.FileTypePython, gotFT)
		assert.Equal(t, 7, gotNum)
	})

	t.Run("nil highlighter yields a single default span", func(t *testing.T) {
		t.Parallel()

		doc := editcore.NewDocument(buffer.New("hello"), "notes.txt", nil)
		spans := doc.HighlightLine("hello", 0)

		require.Len(t, spans, 1)
		assert.Equal(t, "hello", spans[0].Text)
		assert.Equal(t, editcore.Style{}, spans[0].Style)
	})
}

func TestDocument_Themes(t *testing.T) {
	t.Parallel()

	t.Run("delegates to the highlighter", func(t *testing.T) {
		t.Parallel()

		h := &mock.Highlighter{
			SetThemeFn:        func(name string) bool { return name == "dracula" },
			AvailableThemesFn: func() []string { return []string{"dracula", "monokai"} },
		}
		doc := editcore.NewDocument(buffer.New(""), "a.py", h)

		assert.True(t, doc.SetTheme("dracula"))
		assert.False(t, doc.SetTheme("nope"))
		assert.Equal(t, []string{"dracula", "monokai"}, doc.AvailableThemes())
	})

	t.Run("nil highlighter reports failure", func(t *testing.T) {
		t.Parallel()

		doc := editcore.NewDocument(buffer.New(""), "a.py", nil)

		assert.False(t, doc.SetTheme("dracula"))
		assert.Nil(t, doc.AvailableThemes())
	})
}

func TestDocument_ContainerDelegation(t *testing.T) {
	t.Parallel()

	t.Run("reads and writes go through the owned container", func(t *testing.T) {
		t.Parallel()

		buf := buffer.New("hello world")
		doc := editcore.NewDocument(buf, "notes.txt", nil)

		assert.Equal(t, "hello world", string(doc.ReadForward(0)))
		assert.Equal(t, "hello", string(doc.ReadBackward(5)))

		doc.Replace(0, 5, []byte("goodbye"))
		assert.Equal(t, "goodbye world", buf.String())
	})

	t.Run("passes arguments through unchanged", func(t *testing.T) {
		t.Parallel()

		var gotStart, gotEnd int
		var gotRepl []byte
		c := &mock.Container{
			ReplaceFn: func(start, end int, repl []byte) {
				gotStart, gotEnd, gotRepl = start, end, repl
			},
		}
		doc := editcore.NewDocument(c, "notes.txt", nil)

		doc.Replace(3, 9, []byte("abc"))
		assert.Equal(t, 3, gotStart)
		assert.Equal(t, 9, gotEnd)
		assert.Equal(t, []byte("abc"), gotRepl)
	})
}
