// Package poller fetches the server-status list on a fixed interval.
//
// The main components are:
//
//   - [Client]: HTTP client wrapper that fetches and decodes one snapshot
//   - [Scheduler]: cancellable repeating task that starts a fetch immediately
//     and then on every tick, emitting each outcome as a [Result]
//
// A cycle either succeeds with a full list or fails as a whole; the scheduler
// never retries and never merges partial data. Fetches from consecutive ticks
// may overlap, and results are emitted in completion order.
package poller
