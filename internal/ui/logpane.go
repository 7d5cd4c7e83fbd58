package ui

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/logsource"
)

// logPane is the scrollable window over the loaded lines. Only the visible
// slice is ever rendered, so huge logs stay cheap to draw.
type logPane struct {
	src    logsource.Source
	top    int
	width  int
	height int
	view   viewport.Model

	// Content caching: skip re-render when unchanged.
	contentVersion uint64
	lastRendered   uint64
}

func newLogPane() *logPane {
	return &logPane{
		src:            logsource.NewLines(nil),
		view:           viewport.New(0, 0),
		contentVersion: 1,
	}
}

func (p *logPane) setSource(src logsource.Source) {
	p.src = src
	p.top = 0
	p.invalidate()
}

func (p *logPane) resize(width, height int) {
	if height < 1 {
		height = 1
	}
	p.width = width
	p.height = height
	p.view.Width = width
	p.view.Height = height
	p.clamp()
	p.invalidate()
}

func (p *logPane) invalidate() {
	p.contentVersion++
}

func (p *logPane) len() int {
	return p.src.Len()
}

// VisibleRange returns the first and last visible line, inclusive.
func (p *logPane) VisibleRange() (int, int) {
	last := min(p.top+p.height, p.len()) - 1
	return p.top, last
}

// ScrollTo centres line in the pane.
func (p *logPane) ScrollTo(line int) {
	p.top = line - p.height/2
	p.clamp()
	p.invalidate()
}

func (p *logPane) scrollBy(delta int) {
	p.top += delta
	p.clamp()
	p.invalidate()
}

func (p *logPane) pageDown() { p.scrollBy(max(p.height-1, 1)) }
func (p *logPane) pageUp()   { p.scrollBy(-max(p.height-1, 1)) }

func (p *logPane) gotoTop() {
	p.top = 0
	p.invalidate()
}

func (p *logPane) gotoBottom() {
	p.top = p.maxTop()
	p.invalidate()
}

func (p *logPane) maxTop() int {
	return max(p.len()-p.height, 0)
}

func (p *logPane) clamp() {
	p.top = min(max(p.top, 0), p.maxTop())
}

// needsRender reports whether content changed since the last setContent.
func (p *logPane) needsRender() bool {
	return p.lastRendered != p.contentVersion
}

func (p *logPane) setContent(content string) {
	p.view.SetContent(content)
	p.view.GotoTop()
	p.lastRendered = p.contentVersion
}
