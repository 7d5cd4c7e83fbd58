// Package dispatch runs resumable work on a single-threaded host loop.
//
// A Loop holds at most one Task. Starting a task with Run is the only way to
// retire the previous one, so two tasks never interleave. The host (the
// Bubble Tea update loop, or a test) calls Iterate whenever it is idle; each
// call runs exactly one Step of the current task.
package dispatch

// Task is a unit of work that runs in bounded slices. Step reports whether
// more work remains.
type Task interface {
	Step() bool
}

// TaskFunc adapts a function to Task.
type TaskFunc func() bool

// Step implements Task.
func (f TaskFunc) Step() bool { return f() }

// Loop is a single-task cooperative scheduler. It is not safe for use from
// more than one goroutine.
type Loop struct {
	current Task
	gen     uint64
	steps   int
}

// NewLoop returns an idle loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Run replaces the current task with t. The first step of t runs on the
// next Iterate.
func (l *Loop) Run(t Task) {
	l.gen++
	l.current = t
}

// Cancel drops the current task without running it again.
func (l *Loop) Cancel() {
	l.gen++
	l.current = nil
}

// Pending reports whether a task is waiting for another step.
func (l *Loop) Pending() bool {
	return l.current != nil
}

// Steps returns the number of steps run since the loop was created.
func (l *Loop) Steps() int {
	return l.steps
}

// Iterate runs one step of the current task and reports whether work is
// still pending afterwards. A task may call Run or Cancel from inside its own
// Step; the replacement wins.
func (l *Loop) Iterate() bool {
	t := l.current
	if t == nil {
		return false
	}
	gen := l.gen
	l.steps++
	more := t.Step()
	if !more && l.gen == gen {
		l.current = nil
	}
	return l.current != nil
}

// Drain iterates until the loop is idle or limit steps have run. A
// non-positive limit means no limit. It returns the number of steps run.
func (l *Loop) Drain(limit int) int {
	n := 0
	for l.Pending() {
		if limit > 0 && n >= limit {
			break
		}
		l.Iterate()
		n++
	}
	return n
}
