package view

import (
	"fmt"
	"time"

	"github.com/jpalmerr/serverboard/internal/status"
)

// Updater applies fresh records to card entries.
type Updater struct {
	labels   Labels
	location *time.Location
}

// NewUpdater creates an Updater. A nil location means local time.
func NewUpdater(labels Labels, location *time.Location) *Updater {
	if location == nil {
		location = time.Local
	}
	return &Updater{labels: labels, location: location}
}

// Update writes every field of s to the entry's card. Text fields are written
// unconditionally; the player list is rebuilt only when its key changed.
// Update reports whether the player list was rebuilt.
func (u *Updater) Update(e *Entry, s status.ServerStatus) bool {
	connectivity := Connectivity(s.Online)
	badge := u.labels.Offline
	if s.Online {
		badge = u.labels.Online
	}

	c := e.Card
	c.SetConnectivity(connectivity)
	c.SetText(FieldBadge, badge)
	c.SetText(FieldTitle, s.Name)
	c.SetText(FieldAddress, u.labels.Address+s.Address)
	c.SetText(FieldLatency, u.labels.Latency+FormatLatency(s.LatencyMS))
	c.SetText(FieldCount, fmt.Sprintf("%s%d/%d", u.labels.Players, s.PlayersOnline, s.PlayersMax))
	c.SetText(FieldChecked, u.labels.Checked+FormatCheckedAtIn(s.CheckedAt, u.location))

	return u.updatePlayers(e, s)
}

// updatePlayers rebuilds the player list when the roster key differs from the
// last rendered one.
func (u *Updater) updatePlayers(e *Entry, s status.ServerStatus) bool {
	roster := u.RosterFor(s)
	key := roster.Key()
	if key == e.lastPlayersKey {
		return false
	}
	e.lastPlayersKey = key
	e.Card.SetPlayers(roster)
	return true
}

// RosterFor derives the player-list content of a record. An unavailable
// roster takes priority over any names the record still carries.
func (u *Updater) RosterFor(s status.ServerStatus) Roster {
	if !s.RosterKnown() {
		return Roster{State: RosterUnavailable, Placeholder: u.labels.RosterUnavailable}
	}
	if names := s.DisplayPlayers(); len(names) > 0 {
		return Roster{State: RosterNames, Names: names}
	}
	return Roster{State: RosterEmpty, Placeholder: u.labels.RosterNone}
}
