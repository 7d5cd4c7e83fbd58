package search

import "github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/logsource"

// DefaultBatch is the number of lines examined between yields.
const DefaultBatch = 1000

// StepKind is the reason a Scanner returned control.
type StepKind int

const (
	StepYielded StepKind = iota
	StepMatched
	StepDone
	StepCancelled
)

func (k StepKind) String() string {
	switch k {
	case StepYielded:
		return "yielded"
	case StepMatched:
		return "matched"
	case StepDone:
		return "done"
	case StepCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Step is the result of one Resume call. Line and Ranges are set only for
// StepMatched.
type Step struct {
	Kind   StepKind
	Line   int
	Ranges []Range
}

// Scanner walks an operation's source in bounded batches. It is a resumable
// state machine: each Resume continues exactly where the previous one stopped.
type Scanner struct {
	op        *Operation
	cursor    *logsource.Cursor
	batch     int
	budget    int
	examined  int
	cancelled func() bool
	terminal  *Step
}

// NewScanner prepares a scan of op. A non-positive batch selects
// DefaultBatch. cancelled is polled before every line; nil never cancels.
func NewScanner(op *Operation, batch int, cancelled func() bool) (*Scanner, error) {
	if !op.Forward() {
		return nil, ErrUnsupportedDirection
	}
	if batch <= 0 {
		batch = DefaultBatch
	}
	if cancelled == nil {
		cancelled = func() bool { return false }
	}
	return &Scanner{
		op:        op,
		cursor:    op.Source.IterateFrom(op.Start),
		batch:     batch,
		budget:    batch,
		cancelled: cancelled,
	}, nil
}

// Examined returns the number of lines looked at so far.
func (s *Scanner) Examined() int {
	return s.examined
}

// Resume runs until the batch is spent, a line matches, the source ends, or
// the scan is cancelled. Terminal steps repeat on later calls.
func (s *Scanner) Resume() Step {
	if s.terminal != nil {
		return *s.terminal
	}
	for {
		if s.cancelled() {
			return s.finish(StepCancelled)
		}
		if s.budget == 0 {
			s.budget = s.batch
			return Step{Kind: StepYielded}
		}
		idx, text, ok := s.cursor.Next()
		if !ok {
			return s.finish(StepDone)
		}
		s.budget--
		s.examined++
		if ranges := s.op.Matcher(text); len(ranges) > 0 {
			return Step{Kind: StepMatched, Line: idx, Ranges: ranges}
		}
	}
}

func (s *Scanner) finish(kind StepKind) Step {
	s.terminal = &Step{Kind: kind}
	return *s.terminal
}
