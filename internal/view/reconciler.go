package view

import (
	"time"

	"github.com/jpalmerr/serverboard/internal/status"
)

// RenderStats summarises one reconciliation pass.
type RenderStats struct {
	// Cards is the number of cards mounted.
	Cards int `json:"cards"`

	// Created counts cards built during the pass.
	Created int `json:"created"`

	// Pruned lists ids whose entries were dropped, in sorted order.
	Pruned []string `json:"pruned,omitempty"`

	// RosterRebuilds counts player lists that were rebuilt.
	RosterRebuilds int `json:"roster_rebuilds"`

	// Empty is true when the empty-state message was shown.
	Empty bool `json:"empty"`
}

// ViewState is the state carried between passes.
type ViewState struct {
	registry    *Registry
	hasRendered bool
}

// Registry returns the card registry.
func (v *ViewState) Registry() *Registry {
	return v.registry
}

// HasRendered reports whether a non-empty list has been rendered.
func (v *ViewState) HasRendered() bool {
	return v.hasRendered
}

// Reconciler maps record lists onto a Surface.
type Reconciler struct {
	surface  Surface
	updater  *Updater
	labels   Labels
	location *time.Location
	state    ViewState
}

// Option configures a [Reconciler].
type Option func(*Reconciler)

// WithLabels sets the label set. Defaults to [EnglishLabels].
func WithLabels(labels Labels) Option {
	return func(r *Reconciler) {
		r.labels = labels
	}
}

// WithLocation sets the display location for timestamps. Defaults to local
// time.
func WithLocation(loc *time.Location) Option {
	return func(r *Reconciler) {
		r.location = loc
	}
}

// NewReconciler creates a Reconciler with an empty registry.
func NewReconciler(surface Surface, opts ...Option) *Reconciler {
	r := &Reconciler{
		surface: surface,
		labels:  EnglishLabels(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.updater = NewUpdater(r.labels, r.location)
	r.state.registry = NewRegistry(surface)
	return r
}

// State returns the reconciler's view state.
func (r *Reconciler) State() *ViewState {
	return &r.state
}

// Render reconciles servers onto the surface.
//
// Cards appear in input order. Existing cards are updated in place and
// re-mounted; cards for ids missing from servers are dropped from the
// registry. An empty list shows the empty-state message and forgets every
// card. Every non-empty pass after the first suppresses entrance animations.
func (r *Reconciler) Render(servers []status.ServerStatus) RenderStats {
	r.surface.SetSingle(len(servers) == 1)

	if len(servers) == 0 {
		r.surface.SetSingle(false)
		r.surface.ShowEmpty(r.labels.Empty)
		r.state.registry.Reset()
		return RenderStats{Empty: true}
	}

	var stats RenderStats
	cards := make([]Card, 0, len(servers))
	seen := make(map[string]struct{}, len(servers))
	for _, s := range servers {
		id := s.ID.String()
		entry, created := r.state.registry.Ensure(id)
		if created {
			stats.Created++
		}
		if r.updater.Update(entry, s) {
			stats.RosterRebuilds++
		}
		cards = append(cards, entry.Card)
		seen[id] = struct{}{}
	}
	r.surface.Mount(cards)
	stats.Cards = len(cards)

	stats.Pruned = r.state.registry.Prune(seen)

	if !r.state.hasRendered {
		r.state.hasRendered = true
	} else {
		r.surface.SuppressAnimation()
	}
	return stats
}
