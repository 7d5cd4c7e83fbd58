// Package ui implements the Bubble Tea terminal viewer for GStreamer debug
// logs.
//
// The model owns a dispatch.Loop and drives it from Update: whenever a search
// has pending work, a scanStepMsg is queued, and handling it runs exactly one
// batch before re-queuing. Key presses and redraws are processed between
// batches, so searching a multi-million line log never freezes the screen.
//
// The log pane implements findbar.Viewport and only renders the visible
// window. The highlight registry implements findbar.Highlighter and paints
// the first range each registered matcher reports on a line.
package ui
