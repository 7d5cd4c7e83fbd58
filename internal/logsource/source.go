package logsource

// Source is an ordered, index-addressable sequence of log lines.
type Source interface {
	Len() int
	Line(index int) string
	IterateFrom(index int) *Cursor
}

// Lines is an immutable in-memory Source.
type Lines struct {
	lines []string
}

// NewLines wraps lines without copying them. Callers must not mutate the
// slice afterwards.
func NewLines(lines []string) *Lines {
	return &Lines{lines: lines}
}

// Len returns the number of lines.
func (l *Lines) Len() int {
	if l == nil {
		return 0
	}
	return len(l.lines)
}

// Line returns the text at index, or "" when index is out of range.
func (l *Lines) Line(index int) string {
	if l == nil || index < 0 || index >= len(l.lines) {
		return ""
	}
	return l.lines[index]
}

// IterateFrom returns a forward cursor positioned at index. Negative indices
// are clamped to 0.
func (l *Lines) IterateFrom(index int) *Cursor {
	if index < 0 {
		index = 0
	}
	return &Cursor{src: l, next: index}
}

// Cursor walks a Source forward one line at a time.
type Cursor struct {
	src  Source
	next int
}

// Next returns the next index and its text. ok is false once the source is
// exhausted.
func (c *Cursor) Next() (index int, text string, ok bool) {
	if c.next >= c.src.Len() {
		return 0, "", false
	}
	index = c.next
	c.next++
	return index, c.src.Line(index), true
}

// Position returns the index the next call to Next would return.
func (c *Cursor) Position() int {
	return c.next
}
