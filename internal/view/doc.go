// Package view reconciles a repeatedly refreshed list of server-status records
// into one long-lived card per server.
//
// The main components are:
//
//   - [Reconciler]: renders a full record list in input order, handles the
//     empty and single-server modes and prunes cards for vanished servers
//   - [Registry]: maps server ids to card entries and owns card creation
//   - [Updater]: applies a record to a card, rebuilding the player list only
//     when its derived key changes
//   - [FormatLatency] and [FormatCheckedAt]: display formatting with literal
//     fallbacks for missing or malformed fields
//
// Rendering goes through the [Surface] and [Card] interfaces. [NewDOMSurface]
// binds them to an element tree from the dom package; tests and other front
// ends can supply their own implementation.
//
// A Reconciler is not safe for concurrent use. Callers run every pass from a
// single goroutine so that passes never interleave.
package view
