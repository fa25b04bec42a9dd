package store

import (
	"time"

	"github.com/jpalmerr/serverboard/internal/status"
	"github.com/jpalmerr/serverboard/internal/view"
)

// Snapshot is the published outcome of one successful poll cycle.
type Snapshot struct {
	// Cycle is the poll cycle that produced the snapshot.
	Cycle uint64 `json:"cycle"`

	// Servers is the record list exactly as received.
	Servers []status.ServerStatus `json:"servers"`

	// HTML is the rendered container element.
	HTML string `json:"html"`

	// Class is the container's class attribute.
	Class string `json:"class"`

	// Cards holds the markup of each mounted card in display order, keyed by
	// server id. Empty while the empty state is shown.
	Cards []view.CardFragment `json:"cards,omitempty"`

	// Stats describes the reconciliation pass.
	Stats view.RenderStats `json:"stats"`

	// RenderedAt is when the pass completed.
	RenderedAt time.Time `json:"rendered_at"`
}

// Store holds the latest snapshot and notifies subscribers of new ones.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Update replaces the latest snapshot and notifies all subscribers.
	Update(snap Snapshot)

	// Latest returns the most recent snapshot; ok is false before the first
	// Update.
	Latest() (snap Snapshot, ok bool)

	// Subscribe returns a buffered channel of future snapshots. Caller must
	// call Unsubscribe when done.
	Subscribe() <-chan Snapshot

	// Unsubscribe removes a subscription and closes its channel. Safe to call
	// with an unknown or already removed channel.
	Unsubscribe(ch <-chan Snapshot)
}
