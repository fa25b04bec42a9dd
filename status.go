package serverboard

import (
	"time"

	"github.com/jpalmerr/serverboard/internal/status"
	"github.com/jpalmerr/serverboard/internal/view"
)

// ServerStatus is one server-status record as reported by the source.
type ServerStatus = status.ServerStatus

// ServerID identifies a server across cycles. Numeric and string ids from the
// source decode to the same text.
type ServerID = status.ID

// Labels is the display vocabulary of the cards.
type Labels = view.Labels

// RenderStats describes one reconciliation pass.
type RenderStats = view.RenderStats

// EnglishLabels returns the default English vocabulary.
func EnglishLabels() Labels {
	return view.EnglishLabels()
}

// ChineseLabels returns the Simplified Chinese vocabulary.
func ChineseLabels() Labels {
	return view.ChineseLabels()
}

// RenderResult is handed to render callbacks after each successful poll.
//
// Servers and HTML are copies; a callback may keep them.
type RenderResult struct {
	// Cycle numbers poll cycles in the order they were started, from 1.
	Cycle uint64

	// Servers is the snapshot exactly as received.
	Servers []ServerStatus

	// HTML is the rendered card container.
	HTML string

	// Stats describes what the pass created, updated and removed.
	Stats RenderStats

	// Latency is the duration of the HTTP request.
	Latency time.Duration

	// RenderedAt is when the pass completed.
	RenderedAt time.Time
}

// RenderCallback observes every successful reconciliation pass.
type RenderCallback func(RenderResult)
