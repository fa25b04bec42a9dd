package view

import "github.com/jpalmerr/serverboard/internal/status"

// fakeCard records every call made by the updater.
type fakeCard struct {
	id           string
	connectivity Connectivity
	text         map[Field]string
	roster       Roster
	rosterWrites int
}

func (c *fakeCard) SetConnectivity(conn Connectivity) { c.connectivity = conn }
func (c *fakeCard) SetText(f Field, v string)         { c.text[f] = v }
func (c *fakeCard) SetPlayers(r Roster) {
	c.roster = r
	c.rosterWrites++
}

// fakeSurface records container state.
type fakeSurface struct {
	created []*fakeCard
	mounted []Card
	empty   string
	single  bool
	noAnim  bool
	mounts  int
}

func (s *fakeSurface) NewCard(id string) Card {
	c := &fakeCard{id: id, text: make(map[Field]string)}
	s.created = append(s.created, c)
	return c
}

func (s *fakeSurface) Mount(cards []Card) {
	s.mounted = append([]Card(nil), cards...)
	s.empty = ""
	s.mounts++
}

func (s *fakeSurface) ShowEmpty(message string) {
	s.mounted = nil
	s.empty = message
}

func (s *fakeSurface) SetSingle(on bool)  { s.single = on }
func (s *fakeSurface) SuppressAnimation() { s.noAnim = true }

func (s *fakeSurface) mountedIDs() []string {
	ids := make([]string, 0, len(s.mounted))
	for _, c := range s.mounted {
		ids = append(ids, c.(*fakeCard).id)
	}
	return ids
}

func server(id string, players ...string) status.ServerStatus {
	return status.ServerStatus{
		ID:            status.ID(id),
		Name:          "Server " + id,
		Address:       id + ".example.com:25565",
		Online:        true,
		LatencyMS:     status.Float(12),
		PlayersOnline: len(players),
		PlayersMax:    20,
		CheckedAt:     "2024-05-01T10:00:00Z",
		PlayersKnown:  status.Bool(true),
		Players:       players,
	}
}
