package search

import "github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/logsource"

// DefaultStart asks NewOperation to pick the start position from the
// direction: 0 for forward scans, the last line for backward ones.
const DefaultStart = -1

// Query is the text being searched for and the scan direction.
type Query struct {
	Text    string
	Forward bool
}

// Operation binds a query to a source and a start position. It is immutable
// and drives exactly one scan.
type Operation struct {
	Source  logsource.Source
	Query   Query
	Matcher Matcher
	Start   int
}

// NewOperation builds an exact substring operation. Constructing never scans.
// Backward operations construct fine but are rejected when run.
func NewOperation(src logsource.Source, text string, forward bool, start int) *Operation {
	if start == DefaultStart {
		if forward {
			start = 0
		} else {
			start = src.Len() - 1
		}
	}
	return &Operation{
		Source:  src,
		Query:   Query{Text: text, Forward: forward},
		Matcher: SubstringMatcher(text),
		Start:   start,
	}
}

// WithMatcher returns a copy of op that uses m.
func (op *Operation) WithMatcher(m Matcher) *Operation {
	cp := *op
	if m != nil {
		cp.Matcher = m
	}
	return &cp
}

// Forward reports whether op scans towards higher line indices.
func (op *Operation) Forward() bool {
	return op.Query.Forward
}
