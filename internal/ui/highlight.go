package ui

import "github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/search"

// highlightRegistry holds the matchers whose ranges are painted on visible
// lines. Owners are unique per find session.
type highlightRegistry struct {
	owners   map[string]search.Matcher
	order    []string
	onChange func()
}

func newHighlightRegistry(onChange func()) *highlightRegistry {
	if onChange == nil {
		onChange = func() {}
	}
	return &highlightRegistry{
		owners:   make(map[string]search.Matcher),
		onChange: onChange,
	}
}

// Register adds or replaces owner's matcher.
func (h *highlightRegistry) Register(owner string, m search.Matcher) {
	if _, ok := h.owners[owner]; !ok {
		h.order = append(h.order, owner)
	}
	h.owners[owner] = m
	h.onChange()
}

// Unregister removes owner. Unknown owners are ignored.
func (h *highlightRegistry) Unregister(owner string) {
	if _, ok := h.owners[owner]; !ok {
		return
	}
	delete(h.owners, owner)
	for i, o := range h.order {
		if o == owner {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	h.onChange()
}

// Redraw marks line as stale. The pane re-renders its whole visible window,
// so any redraw invalidates it.
func (h *highlightRegistry) Redraw(int) {
	h.onChange()
}

// rangeFor returns the range to paint on line, from the oldest owner that
// matches it.
func (h *highlightRegistry) rangeFor(line string) (search.Range, bool) {
	for _, owner := range h.order {
		if ranges := h.owners[owner](line); len(ranges) > 0 {
			return ranges[0], true
		}
	}
	return search.Range{}, false
}
