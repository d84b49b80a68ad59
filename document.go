package editcore

// Compile-time interface verification.
var _ TextWriter = (*Document)(nil)

// Document is the unit handed to an editing session. It owns one text
// container and one highlighter, and carries the file type detected from the
// filename at construction time. Re-detection requires a new Document.
type Document struct {
	container   TextWriter
	fileType    FileType
	highlighter Highlighter
}

// NewDocument creates a document over the given container. The file type is
// detected from filename. The highlighter may be nil, in which case lines
// highlight as single default-styled spans.
func NewDocument(container TextWriter, filename string, highlighter Highlighter) *Document {
	return &Document{
		container:   container,
		fileType:    DetectFileType(filename),
		highlighter: highlighter,
	}
}

// FileType returns the file type detected at construction.
func (d *Document) FileType() FileType {
	return d.fileType
}

// HighlightLine returns styled spans covering line exactly.
func (d *Document) HighlightLine(line string, lineNum int) []Span {
	if d.highlighter == nil {
		return []Span{{Text: line}}
	}
	return d.highlighter.HighlightLine(line, d.fileType, lineNum)
}

// SetTheme switches the highlighter's active theme. It reports whether the
// theme exists; without a highlighter it reports false.
func (d *Document) SetTheme(name string) bool {
	if d.highlighter == nil {
		return false
	}
	return d.highlighter.SetTheme(name)
}

// AvailableThemes lists the highlighter's registered themes.
func (d *Document) AvailableThemes() []string {
	if d.highlighter == nil {
		return nil
	}
	return d.highlighter.AvailableThemes()
}

// ReadForward implements TextReader by delegating to the owned container.
func (d *Document) ReadForward(off int) []byte {
	return d.container.ReadForward(off)
}

// ReadBackward implements TextReader by delegating to the owned container.
func (d *Document) ReadBackward(off int) []byte {
	return d.container.ReadBackward(off)
}

// Replace implements TextWriter by delegating to the owned container.
func (d *Document) Replace(start, end int, repl []byte) {
	d.container.Replace(start, end, repl)
}
