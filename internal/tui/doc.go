// Package tui renders the server status board in a terminal.
//
// The terminal view is a second surface over the same reconciliation engine
// the web dashboard uses: poll results are reconciled into an in-memory card
// container, and [RenderView] draws that container with lipgloss. Cards
// therefore keep their identity across polls exactly as they do in the
// browser; only the drawing differs.
//
// Key bindings:
//
//	r        fetch now
//	up/down  scroll
//	q        quit
package tui
