// Package store keeps the latest rendered dashboard snapshot and fans it out
// to subscribers.
//
// The main components are:
//
//   - [Store]: interface for publishing and subscribing to snapshots
//   - [MemoryStore]: in-memory implementation with non-blocking fan-out
//   - [Snapshot]: one reconciliation outcome (records plus rendered HTML)
//
// Snapshots are immutable once published. HTTP handlers read them instead of
// the live element tree, which is owned by the reconciliation goroutine.
// Slow subscribers miss updates rather than block the publisher.
package store
