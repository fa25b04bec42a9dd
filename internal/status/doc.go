// Package status defines the server-status record consumed by the dashboard.
//
// A [ServerStatus] describes one monitored game server as reported by the
// upstream /api/servers endpoint. Records are immutable snapshots: each poll
// cycle decodes a fresh list with [DecodeList] and hands it to the view layer.
package status
