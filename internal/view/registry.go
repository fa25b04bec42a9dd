package view

import "sort"

// Entry is the long-lived state of one server's card.
type Entry struct {
	ID   string
	Card Card

	// lastPlayersKey is the Roster.Key last written to the card; empty means
	// the player list has never been rendered.
	lastPlayersKey string
}

// PlayersKey returns the key of the last rendered roster.
func (e *Entry) PlayersKey() string {
	return e.lastPlayersKey
}

// Registry holds exactly one Entry per known server id.
type Registry struct {
	surface Surface
	entries map[string]*Entry
}

// NewRegistry creates an empty registry whose cards come from surface.
func NewRegistry(surface Surface) *Registry {
	return &Registry{
		surface: surface,
		entries: make(map[string]*Entry),
	}
}

// Ensure returns the entry for id, creating its card on first sight.
func (r *Registry) Ensure(id string) (entry *Entry, created bool) {
	if e, ok := r.entries[id]; ok {
		return e, false
	}
	e := &Entry{ID: id, Card: r.surface.NewCard(id)}
	r.entries[id] = e
	return e, true
}

// Get returns the entry for id if it is known.
func (r *Registry) Get(id string) (*Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Prune forgets every entry whose id is not in present and returns the
// removed ids in sorted order. Cards are not detached here; the next Mount
// leaves them out.
func (r *Registry) Prune(present map[string]struct{}) []string {
	var removed []string
	for id := range r.entries {
		if _, ok := present[id]; !ok {
			delete(r.entries, id)
			removed = append(removed, id)
		}
	}
	sort.Strings(removed)
	return removed
}

// Reset forgets every entry.
func (r *Registry) Reset() {
	clear(r.entries)
}

// Len returns the number of known entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// IDs returns the known ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
