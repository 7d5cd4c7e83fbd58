// Package logsource provides the ordered, index-addressable collection of log
// lines that the find engine scans.
//
// # Overview
//
// A Source is the only view the search core has of a log. It exposes the
// number of lines, random access by index, and a forward cursor that can be
// re-requested at any index:
//
//	type Source interface {
//		Len() int
//		Line(index int) string
//		IterateFrom(index int) *Cursor
//	}
//
// Lines is the in-memory implementation used by the viewer. It is immutable
// once built, so cursors over it never observe a changing length.
//
// # Loading
//
// Load reads a whole GStreamer debug log into memory. Tail keeps only the
// last N lines, using a ring buffer so memory stays O(N) regardless of file
// size:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line in file:
//	   - Store line at current index
//	   - Increment index (wrapping at maxLines)
//	   - Track total lines seen
//	3. Return buffer starting from the oldest line
//
// Both readers strip ANSI colour sequences, which GST_DEBUG_COLOR_MODE=on
// embeds in every line; matching then works on the text the user reads.
//
// # Limits
//
//   - Scanner buffer: 64KB initial, 1MB max per line
//   - A missing file is an error for Load, while Tail returns no lines (the
//     file may simply not exist yet)
package logsource
