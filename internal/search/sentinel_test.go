package search

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/dispatch"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/logsource"
)

type recorder struct {
	matches   []int
	completed int
}

func newRecorded(batch int) (*Sentinel, *dispatch.Loop, *recorder) {
	loop := dispatch.NewLoop()
	s := NewSentinel(loop, batch)
	rec := &recorder{}
	s.OnMatch = func(_ *Operation, line int) { rec.matches = append(rec.matches, line) }
	s.OnComplete = func(*Operation) { rec.completed++ }
	return s, loop, rec
}

func sampleSource(n int) *logsource.Lines {
	lines := make([]string, n)
	for i := range lines {
		if i%7 == 3 || i%11 == 0 {
			lines[i] = fmt.Sprintf("%d needle here", i)
		} else {
			lines[i] = fmt.Sprintf("%d haystack", i)
		}
	}
	return logsource.NewLines(lines)
}

func bruteForce(src *logsource.Lines, text string, start int) []int {
	var out []int
	for i := start; i < src.Len(); i++ {
		if strings.Contains(src.Line(i), text) {
			out = append(out, i)
		}
	}
	return out
}

func TestSentinel_CompleteAndOrdered(t *testing.T) {
	src := sampleSource(250)
	for _, batch := range []int{1, 3, 17, 1000} {
		t.Run(fmt.Sprintf("batch=%d", batch), func(t *testing.T) {
			s, loop, rec := newRecorded(batch)
			require.NoError(t, s.RunFor(NewOperation(src, "needle", true, 5)))
			assert.True(t, s.Active())

			loop.Drain(0)

			assert.Equal(t, bruteForce(src, "needle", 5), rec.matches)
			assert.Equal(t, 1, rec.completed)
			assert.False(t, s.Active())
		})
	}
}

func TestSentinel_SmallBatchesYieldToHost(t *testing.T) {
	src := sampleSource(100)
	s, loop, _ := newRecorded(10)
	require.NoError(t, s.RunFor(NewOperation(src, "nothing matches", true, DefaultStart)))

	steps := loop.Drain(0)
	assert.Equal(t, 11, steps, "ten full batches plus the step that finds the end")
}

func TestSentinel_SupersededScanNeverCallsBack(t *testing.T) {
	src := sampleSource(200)
	s, loop, _ := newRecorded(5)

	var first, second []int
	var firstDone, secondDone int
	a := NewOperation(src, "needle", true, DefaultStart)
	b := NewOperation(src, "haystack", true, DefaultStart)
	s.OnMatch = func(op *Operation, line int) {
		if op == a {
			first = append(first, line)
		} else {
			second = append(second, line)
		}
	}
	s.OnComplete = func(op *Operation) {
		if op == a {
			firstDone++
		} else {
			secondDone++
		}
	}

	require.NoError(t, s.RunFor(a))
	loop.Iterate()
	loop.Iterate()
	seen := len(first)
	require.NoError(t, s.RunFor(b))
	loop.Drain(0)

	assert.Len(t, first, seen)
	assert.Zero(t, firstDone)
	assert.Equal(t, bruteForce(src, "haystack", 0), second)
	assert.Equal(t, 1, secondDone)
}

func TestSentinel_RestartFromInsideMatchCallback(t *testing.T) {
	src := logsource.NewLines([]string{"x", "a", "a", "x", "a"})
	s, loop, _ := newRecorded(1000)

	type call struct {
		start int
		line  int
	}
	var calls []call
	s.OnMatch = func(op *Operation, line int) {
		calls = append(calls, call{op.Start, line})
		if op.Start == 0 {
			require.NoError(t, s.RunFor(NewOperation(src, "a", true, line+1)))
		}
	}

	require.NoError(t, s.RunFor(NewOperation(src, "a", true, 0)))
	loop.Drain(0)

	// The first scan is retired mid-batch, so line 2 is reported once, by
	// the second scan.
	assert.Equal(t, []call{{0, 1}, {2, 2}, {2, 4}}, calls)
}

func TestSentinel_AbortBeforeFirstBatch(t *testing.T) {
	src := sampleSource(50)
	s, loop, rec := newRecorded(10)
	require.NoError(t, s.RunFor(NewOperation(src, "needle", true, DefaultStart)))

	s.Abort()
	loop.Drain(0)

	assert.Empty(t, rec.matches)
	assert.Zero(t, rec.completed)
	assert.True(t, s.Cancelled())
	assert.False(t, s.Active())
}

func TestSentinel_AbortFromMatchCallback(t *testing.T) {
	src := sampleSource(50)
	s, loop, rec := newRecorded(1000)
	s.OnMatch = func(_ *Operation, line int) {
		rec.matches = append(rec.matches, line)
		s.Abort()
	}
	require.NoError(t, s.RunFor(NewOperation(src, "needle", true, DefaultStart)))
	loop.Drain(0)

	assert.Equal(t, []int{0}, rec.matches)
	assert.Zero(t, rec.completed)
}

func TestSentinel_AbortIsIdempotent(t *testing.T) {
	s, loop, rec := newRecorded(10)
	s.Abort()
	s.Abort()
	assert.False(t, loop.Pending())

	require.NoError(t, s.RunFor(NewOperation(sampleSource(20), "needle", true, DefaultStart)))
	assert.False(t, s.Cancelled(), "a new scan clears the cancellation flag")
	s.Abort()
	s.Abort()
	loop.Drain(0)
	assert.Empty(t, rec.matches)
}

func TestSentinel_BackwardLeavesActiveScanRunning(t *testing.T) {
	src := sampleSource(30)
	s, loop, rec := newRecorded(1000)
	fwd := NewOperation(src, "needle", true, DefaultStart)
	require.NoError(t, s.RunFor(fwd))

	err := s.RunFor(NewOperation(src, "needle", false, DefaultStart))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedDirection))
	assert.Same(t, fwd, s.Operation())

	loop.Drain(0)
	assert.Equal(t, bruteForce(src, "needle", 0), rec.matches)
}

func TestSentinel_NilOperation(t *testing.T) {
	s := NewSentinel(nil, 0)
	assert.ErrorIs(t, s.RunFor(nil), ErrNoOperation)
}
