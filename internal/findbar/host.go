package findbar

import "github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/search"

// Viewport is the scrollable view over the log lines.
type Viewport interface {
	// VisibleRange returns the first and last visible line, inclusive. An
	// empty view reports last < first.
	VisibleRange() (first, last int)
	// ScrollTo brings line into view, centred.
	ScrollTo(line int)
}

// Highlighter paints matcher ranges on visible lines.
type Highlighter interface {
	Register(owner string, m search.Matcher)
	// Unregister removes owner's matcher. Unknown owners are ignored.
	Unregister(owner string)
	Redraw(line int)
}

// Host bundles what the navigator drives outside itself.
type Host struct {
	Viewport    Viewport
	Highlighter Highlighter
}
