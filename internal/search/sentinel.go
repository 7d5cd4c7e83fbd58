package search

import (
	"fmt"

	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/dispatch"
)

// Dispatcher schedules at most one task at a time. Run replaces the current
// task and Cancel drops it. *dispatch.Loop satisfies it.
type Dispatcher interface {
	Run(t dispatch.Task)
	Cancel()
}

// Sentinel owns the single active scan. Starting a new scan retires the
// previous one, and a retired scan never calls back again, even when it is
// retired from inside its own OnMatch.
//
// A Sentinel must be the only user of its Dispatcher.
type Sentinel struct {
	dispatcher Dispatcher
	batch      int
	gen        uint64
	cancelled  bool
	active     bool
	current    *Operation

	// OnMatch is called once per matching line, in source order.
	OnMatch func(op *Operation, line int)
	// OnComplete is called once when a scan reaches the end of its source
	// without being aborted or superseded.
	OnComplete func(op *Operation)
}

// NewSentinel returns a sentinel that schedules on d. A nil d gets a private
// dispatch.Loop.
func NewSentinel(d Dispatcher, batch int) *Sentinel {
	if d == nil {
		d = dispatch.NewLoop()
	}
	if batch <= 0 {
		batch = DefaultBatch
	}
	return &Sentinel{
		dispatcher: d,
		batch:      batch,
		OnMatch:    func(*Operation, int) {},
		OnComplete: func(*Operation) {},
	}
}

// RunFor retires any active scan and starts scanning op. Backward operations
// fail with ErrUnsupportedDirection and leave the active scan untouched.
func (s *Sentinel) RunFor(op *Operation) error {
	if op == nil {
		return ErrNoOperation
	}
	gen := s.gen + 1
	sc, err := NewScanner(op, s.batch, func() bool {
		return s.cancelled || s.gen != gen
	})
	if err != nil {
		return fmt.Errorf("run search for %q: %w", op.Query.Text, err)
	}
	s.gen = gen
	s.cancelled = false
	s.active = true
	s.current = op
	s.dispatcher.Run(&scanTask{sentinel: s, scanner: sc, op: op, gen: gen})
	return nil
}

// Abort stops the active scan. It is safe to call repeatedly and when no
// scan is running.
func (s *Sentinel) Abort() {
	s.cancelled = true
	s.active = false
	s.dispatcher.Cancel()
}

// Active reports whether a scan is scheduled and has not finished.
func (s *Sentinel) Active() bool {
	return s.active
}

// Cancelled reports whether the last scan was aborted.
func (s *Sentinel) Cancelled() bool {
	return s.cancelled
}

// Operation returns the most recently started operation, or nil.
func (s *Sentinel) Operation() *Operation {
	return s.current
}

type scanTask struct {
	sentinel *Sentinel
	scanner  *Scanner
	op       *Operation
	gen      uint64
}

func (t *scanTask) stale() bool {
	return t.sentinel.cancelled || t.sentinel.gen != t.gen
}

// Step runs one batch. Match callbacks fire from inside the batch; if a
// callback aborts or restarts the sentinel the task ends at once.
func (t *scanTask) Step() bool {
	s := t.sentinel
	for {
		step := t.scanner.Resume()
		switch step.Kind {
		case StepYielded:
			return true
		case StepMatched:
			if t.stale() {
				return false
			}
			s.OnMatch(t.op, step.Line)
			if t.stale() {
				return false
			}
		case StepDone:
			if t.stale() {
				return false
			}
			s.active = false
			s.OnComplete(t.op)
			return false
		default:
			return false
		}
	}
}
