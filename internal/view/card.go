package view

import "strings"

// Connectivity is the two-state online/offline marker of a card.
type Connectivity bool

const (
	Offline Connectivity = false
	Online  Connectivity = true
)

// Class returns the class name used for the state.
func (c Connectivity) Class() string {
	if c {
		return "online"
	}
	return "offline"
}

// Field names a plain text region of a card.
type Field int

const (
	FieldTitle Field = iota
	FieldBadge
	FieldAddress
	FieldLatency
	FieldCount
	FieldChecked
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldBadge:
		return "badge"
	case FieldAddress:
		return "address"
	case FieldLatency:
		return "latency"
	case FieldCount:
		return "count"
	case FieldChecked:
		return "checked"
	default:
		return "unknown"
	}
}

// RosterState classifies the player-list region.
type RosterState int

const (
	// RosterUnavailable means the upstream could not read the player list.
	RosterUnavailable RosterState = iota
	// RosterNames means at least one player name is shown.
	RosterNames
	// RosterEmpty means the list is known and nobody is connected.
	RosterEmpty
)

// playerKeySeparator cannot occur inside a Minecraft player name.
const playerKeySeparator = "|"

// namesKeyPrefix keeps a roster of players literally named "empty" or
// "unknown" apart from the placeholder states.
const namesKeyPrefix = "names:"

// Roster is the content of a card's player-list region.
type Roster struct {
	State RosterState

	// Names is set for RosterNames, in display order.
	Names []string

	// Placeholder is the muted text shown for the other states.
	Placeholder string
}

// Key summarises the roster for change detection. Any difference in state,
// content or order produces a different key.
func (r Roster) Key() string {
	switch r.State {
	case RosterUnavailable:
		return "unknown"
	case RosterNames:
		return namesKeyPrefix + strings.Join(r.Names, playerKeySeparator)
	default:
		return "empty"
	}
}

// Card is one rendered server card.
type Card interface {
	// SetConnectivity applies the online/offline marker to the card and its
	// status badge.
	SetConnectivity(c Connectivity)

	// SetText writes a text region.
	SetText(field Field, value string)

	// SetPlayers clears the player-list region and repopulates it.
	SetPlayers(r Roster)
}

// Surface is the container cards are mounted into.
type Surface interface {
	// NewCard builds a detached card for a server id.
	NewCard(id string) Card

	// Mount atomically replaces the container content with cards, in order.
	// Cards that were already mounted keep their identity.
	Mount(cards []Card)

	// ShowEmpty replaces the container content with a single message.
	ShowEmpty(message string)

	// SetSingle toggles the single-server layout marker.
	SetSingle(on bool)

	// SuppressAnimation applies the entrance-animation suppression marker.
	SuppressAnimation()
}
