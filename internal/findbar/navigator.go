package findbar

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/logsource"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/search"
)

// Navigator turns raw scan matches into next/previous navigation over a
// viewport. All methods must be called from the goroutine that drives the
// sentinel's dispatcher.
type Navigator struct {
	src      logsource.Source
	sentinel *search.Sentinel
	host     Host
	log      logrus.FieldLogger

	mode    string
	matcher search.Matcher
	query   string
	owner   string
	lastOp  *search.Operation

	state      SearchState
	matches    *MatchSet
	cursor     Cursor
	status     Status
	lastTarget *int
}

// NewNavigator wires a navigator to sentinel's callbacks. A nil logger uses
// the logrus standard logger.
func NewNavigator(src logsource.Source, sentinel *search.Sentinel, host Host, logger logrus.FieldLogger) *Navigator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	n := &Navigator{
		src:      src,
		sentinel: sentinel,
		host:     host,
		log:      logger.WithField("logger", "ui.findbar"),
		mode:     search.MatchModeExact,
		matches:  NewMatchSet(),
	}
	sentinel.OnMatch = n.handleMatch
	sentinel.OnComplete = n.handleComplete
	return n
}

// SetMatchMode selects exact or fuzzy matching for the next query.
func (n *Navigator) SetMatchMode(mode string) {
	n.mode = mode
}

// SetSource swaps the searched lines. Results are dropped and an active
// query is searched again from the first visible line.
func (n *Navigator) SetSource(src logsource.Source) {
	n.src = src
	query := n.query
	n.reset()
	if query != "" {
		n.SetQuery(query)
	}
}

// SetQuery reacts to the find bar text changing.
func (n *Navigator) SetQuery(text string) {
	if text == n.query {
		return
	}
	if text == "" {
		n.reset()
		return
	}
	n.start(text)
}

// Restart searches again from the first visible line. An empty text reuses
// the previous query.
func (n *Navigator) Restart(text string) error {
	if text == "" {
		if n.lastOp == nil {
			return search.ErrNoOperation
		}
		text = n.lastOp.Query.Text
	}
	n.start(text)
	return nil
}

// GotoNext scrolls to the prefetched next match and starts looking for the
// one after it.
func (n *Navigator) GotoNext() {
	if n.cursor.Next == nil {
		n.log.Warn("goto next without a next match")
		return
	}
	line := *n.cursor.Next
	n.scrollTo(line)
	n.cursor.Next = nil
	n.state = BrowseSearching
	n.run(line + 1)
	n.updatePrev()
}

// GotoPrevious scrolls to the closest known match above the view. It only
// looks at matches already found; it never scans.
func (n *Navigator) GotoPrevious() {
	first, _ := n.host.Viewport.VisibleRange()
	line, ok := n.matches.Below(first)
	if !ok {
		return
	}
	n.scrollTo(line)
	n.updatePrev()
}

// ScanBackward asks for a full backward scan from the first visible line.
// Backward scanning is not implemented and the call always fails with
// search.ErrUnsupportedDirection, leaving the navigator untouched.
func (n *Navigator) ScanBackward() error {
	if n.query == "" {
		return search.ErrNoOperation
	}
	first, _ := n.host.Viewport.VisibleRange()
	op := search.NewOperation(n.src, n.query, false, first).WithMatcher(n.matcher)
	return n.sentinel.RunFor(op)
}

// Dismiss hides the find session: the scan stops and highlights go away.
func (n *Navigator) Dismiss() {
	n.reset()
}

// ViewportMoved recomputes the previous target after the user scrolled.
func (n *Navigator) ViewportMoved() {
	n.updatePrev()
}

// State returns the current search state.
func (n *Navigator) State() SearchState { return n.state }

// Status returns the status message.
func (n *Navigator) Status() Status { return n.status }

// Query returns the active query text.
func (n *Navigator) Query() string { return n.query }

// Cursor returns a copy of the navigation targets.
func (n *Navigator) Cursor() Cursor { return n.cursor }

// Matches returns the lines found so far in ascending order.
func (n *Navigator) Matches() []int { return n.matches.Lines() }

// Matcher returns the matcher of the active query, or nil.
func (n *Navigator) Matcher() search.Matcher { return n.matcher }

// Sensitivity reports which navigation actions are possible.
func (n *Navigator) Sensitivity() Sensitivity {
	return Sensitivity{Next: n.cursor.Next != nil, Prev: n.cursor.Prev != nil}
}

// LastTarget returns the last line navigation tried to show, including
// targets that were already visible.
func (n *Navigator) LastTarget() (int, bool) {
	if n.lastTarget == nil {
		return 0, false
	}
	return *n.lastTarget, true
}

func (n *Navigator) start(text string) {
	n.sentinel.Abort()
	n.clearResults()
	n.query = text
	n.matcher = search.NewMatcher(n.mode, text)
	n.owner = uuid.NewString()
	n.host.Highlighter.Register(n.owner, n.matcher)

	first, _ := n.host.Viewport.VisibleRange()
	n.state = ScrollSearching
	n.status = StatusSearching
	n.run(first)
}

func (n *Navigator) run(start int) {
	op := search.NewOperation(n.src, n.query, true, start).WithMatcher(n.matcher)
	n.lastOp = op
	if err := n.sentinel.RunFor(op); err != nil {
		n.log.WithError(err).Warn("search not started")
		n.state = Idle
		n.status = StatusNone
	}
}

func (n *Navigator) reset() {
	n.sentinel.Abort()
	n.clearResults()
	n.query = ""
	n.matcher = nil
	n.state = Idle
}

// clearResults drops highlights, the match set and the cursor.
func (n *Navigator) clearResults() {
	if n.owner != "" {
		n.host.Highlighter.Unregister(n.owner)
		n.owner = ""
	}
	first, last := n.host.Viewport.VisibleRange()
	for _, line := range n.matches.Within(first, last) {
		n.host.Highlighter.Redraw(line)
	}
	n.matches.Clear()
	n.cursor = Cursor{}
	n.status = StatusNone
}

func (n *Navigator) handleMatch(op *search.Operation, line int) {
	switch n.state {
	case ScrollSearching:
		n.sentinel.Abort()
		n.matches.Add(line)
		n.scrollTo(line)
		n.status = StatusNone
		n.state = BrowseSearching
		n.run(line + 1)
	case BrowseSearching:
		n.matches.Add(line)
		n.cursor.Next = &line
		n.sentinel.Abort()
		n.status = StatusNone
	default:
		n.log.WithFields(logrus.Fields{
			"state": n.state.String(),
			"line":  line,
			"query": op.Query.Text,
		}).Warn("match in unexpected search state")
		return
	}
	n.updatePrev()
}

func (n *Navigator) handleComplete(op *search.Operation) {
	switch n.state {
	case ScrollSearching, BrowseSearching:
		n.cursor.Next = nil
		n.updatePrev()
		if n.cursor.Next == nil && n.cursor.Prev == nil {
			n.status = StatusNoMatch
		} else {
			n.status = StatusNone
		}
	default:
		n.log.WithFields(logrus.Fields{
			"state": n.state.String(),
			"query": op.Query.Text,
		}).Warn("search completed in unexpected state")
	}
}

func (n *Navigator) scrollTo(line int) {
	n.lastTarget = &line
	first, last := n.host.Viewport.VisibleRange()
	if line >= first && line <= last {
		return
	}
	n.host.Viewport.ScrollTo(line)
}

func (n *Navigator) updatePrev() {
	first, _ := n.host.Viewport.VisibleRange()
	if line, ok := n.matches.Below(first); ok {
		n.cursor.Prev = &line
		return
	}
	n.cursor.Prev = nil
}
