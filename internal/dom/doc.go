// Package dom is a small owned element tree used as the dashboard's view.
//
// Elements wrap golang.org/x/net/html nodes, so the tree renders to HTML with
// html.Render and keeps pointer identity across mutations: moving an element
// into a new parent re-parents the same node instead of copying it. Only the
// subset of DOM behaviour the view layer needs is provided (class lists, text
// content, child replacement).
//
// An Element is not safe for concurrent use. The tree is owned by a single
// reconciliation loop; other goroutines should consume rendered HTML instead.
package dom
