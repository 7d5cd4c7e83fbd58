package ui

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/findbar"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/search"
)

// GStreamer debug lines carry the level as a padded token after the thread
// pointer: "0:00:00.001 12345 0x55d0 WARN  GST_PADS gstpad.c:42:fn: msg".
var levelRe = regexp.MustCompile(`\s(ERROR|WARN|FIXME|INFO|DEBUG|LOG|TRACE|MEMDUMP)\s`)

func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderLogs())
	b.WriteString("\n")

	if m.findVisible {
		b.WriteString(m.renderFindBar())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	return b.String()
}

// renderHeader renders the title bar with the file name and theme.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	name := "no file"
	if m.path != "" {
		name = filepath.Base(m.path)
	}
	parts := []string{
		bg.Render("gst-debug-viewer", styles.WarningText.Bold(true)),
		bg.Render(name, styles.Text),
	}
	if m.tailLines > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("last %d lines", m.tailLines), styles.MutedText))
	}
	parts = append(parts,
		bg.Render("T", styles.AccentText)+bg.Render(":", styles.FaintText)+bg.Render(m.theme.Name, styles.FaintText),
		bg.Render("?", styles.AccentText)+bg.Render(":", styles.FaintText)+bg.Render("Help", styles.MutedText),
	)
	return styles.Header.Width(m.width).Render(strings.Join(parts, bg.Spaces(2)))
}

// renderLogs renders the visible window of log lines.
func (m Model) renderLogs() string {
	pane := m.s.pane
	if pane.needsRender() {
		pane.setContent(m.renderLogContent())
	}
	return pane.view.View()
}

func (m Model) renderLogContent() string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	pane := m.s.pane
	width := pane.width

	switch {
	case m.loading:
		return bg.FillLine(bg.Render("Loading "+m.path+"...", styles.MutedText), width)
	case m.loadErr != nil:
		return bg.FillLine(bg.Render(m.loadErr.Error(), styles.DangerText), width)
	case pane.len() == 0:
		return bg.FillLine(bg.Render("No log entries", styles.MutedText), width)
	}

	first, last := pane.VisibleRange()
	gutter := len(strconv.Itoa(pane.len()))

	lines := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		number := bg.Render(fmt.Sprintf("%*d │ ", gutter, i+1), styles.FaintText)
		lines = append(lines, bg.FillLine(number+m.renderLine(pane.src.Line(i), styles, bg), width))
	}
	return strings.Join(lines, "\n")
}

// renderLine paints the find highlight if the line has one, otherwise the
// debug level color.
func (m Model) renderLine(line string, styles Styles, bg BgStyle) string {
	if r, ok := m.s.highlights.rangeFor(line); ok {
		return renderHighlighted(line, r, styles, bg)
	}
	return colorizeLevel(line, styles, bg)
}

func renderHighlighted(line string, r search.Range, styles Styles, bg BgStyle) string {
	start := min(max(r.Start, 0), len(line))
	end := min(max(r.End, start), len(line))
	return bg.Render(line[:start], styles.Text) +
		styles.Match.Render(line[start:end]) +
		bg.Render(line[end:], styles.Text)
}

func colorizeLevel(line string, styles Styles, bg BgStyle) string {
	loc := levelRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return bg.Render(line, styles.Text)
	}
	start, end := loc[2], loc[3]
	level := line[start:end]
	return bg.Render(line[:start], styles.FaintText) +
		bg.Render(level, styles.LevelStyle(level).Bold(true)) +
		bg.Render(line[end:], styles.Text)
}

// renderFindBar renders the find entry with the search status.
func (m Model) renderFindBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	entry := m.find.View()
	parts := []string{entry}
	switch m.s.nav.Status() {
	case findbar.StatusSearching:
		parts = append(parts, bg.Render("Searching...", styles.WarningText))
	case findbar.StatusNoMatch:
		parts = append(parts, bg.Render("No match found", styles.DangerText))
	}

	sens := m.s.nav.Sensitivity()
	parts = append(parts,
		renderAction(bg, styles, "n", "Next", sens.Next),
		renderAction(bg, styles, "N", "Prev", sens.Prev),
	)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Render(strings.Join(parts, bg.Spaces(2)))
}

func renderAction(bg BgStyle, styles Styles, key, label string, enabled bool) string {
	if !enabled {
		return bg.Render(key+":"+label, styles.FaintText.Strikethrough(true))
	}
	return bg.Render(key, styles.AccentText) + bg.Render(":"+label, styles.MutedText)
}

// renderStatus renders the position and match count below the pane.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)
	pane := m.s.pane

	var parts []string
	if total := pane.len(); total > 0 {
		first, last := pane.VisibleRange()
		parts = append(parts, bg.Render(fmt.Sprintf("lines %d-%d of %d", first+1, last+1, total), styles.FaintText))
	}
	if q := m.s.nav.Query(); q != "" {
		parts = append(parts,
			bg.Render(truncate(q, 24), styles.AccentText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d found", len(m.s.nav.Matches())), styles.MutedText))
	}
	if !m.findVisible {
		parts = append(parts, bg.Render("ctrl+f", styles.AccentText)+bg.Render(":Find", styles.MutedText))
	}

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return bg.FillLine(strings.Join(parts, sep), m.width)
}

// truncate truncates a string to max runes with an ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 {
		return ""
	}
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
