// Package server provides the HTTP surface of the serverboard dashboard.
//
//   - GET /: the embedded dashboard page with the current view inlined
//   - GET /api/servers: the latest server-status records as JSON
//   - GET /api/view: the latest rendered view as an HTML fragment
//   - GET /api/sse: Server-Sent Events stream of rendered views
//   - GET /api/ws: WebSocket stream of rendered views
//
// Handlers only read published snapshots from the store. The server supports
// graceful shutdown via context cancellation, with a 5-second timeout for
// in-flight requests.
package server
