package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/jpalmerr/serverboard"
)

var playerPool = []string{
	"alice", "bob", "carol", "dave", "erin", "frank", "grace", "heidi",
	"ivan", "judy", "mallory", "niaj", "olivia", "peggy", "rupert", "sybil",
}

// mockFleet is a set of game servers whose state drifts between requests.
type mockFleet struct {
	mu      sync.Mutex
	servers []serverboard.ServerStatus
	nextID  int
}

func newMockFleet() *mockFleet {
	f := &mockFleet{nextID: 1}
	f.add("Survival", 20, true)
	f.add("Creative", 10, true)
	f.add("Minigames", 40, false)
	return f
}

func (f *mockFleet) add(name string, maxPlayers int, rosterKnown bool) {
	known := rosterKnown
	f.servers = append(f.servers, serverboard.ServerStatus{
		ID:           serverboard.ServerID(fmt.Sprint(f.nextID)),
		Name:         name,
		Address:      fmt.Sprintf("mc.example.com:%d", 25564+f.nextID),
		Online:       true,
		PlayersMax:   maxPlayers,
		PlayersKnown: &known,
	})
	f.nextID++
}

// step moves every server one tick forward: players join and leave, servers
// occasionally drop offline, and now and then a server is added or retired.
func (f *mockFleet) step() {
	switch r := rand.Intn(30); {
	case r == 0 && len(f.servers) < 6:
		f.add(fmt.Sprintf("Event %d", f.nextID), 16, true)
		slog.Info("server added", "name", f.servers[len(f.servers)-1].Name)
	case r == 1 && len(f.servers) > 1:
		i := rand.Intn(len(f.servers))
		slog.Info("server retired", "name", f.servers[i].Name)
		f.servers = append(f.servers[:i], f.servers[i+1:]...)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i := range f.servers {
		s := &f.servers[i]
		s.CheckedAt = now

		if rand.Intn(20) == 0 {
			s.Online = !s.Online
			slog.Info("status change", "name", s.Name, "online", s.Online)
		}
		if !s.Online {
			s.LatencyMS = nil
			s.PlayersOnline = 0
			s.Players = nil
			continue
		}

		latency := 15 + rand.Float64()*120
		s.LatencyMS = &latency

		switch {
		case rand.Intn(3) == 0 && len(s.Players) < s.PlayersMax:
			s.Players = append(s.Players, playerPool[rand.Intn(len(playerPool))])
		case rand.Intn(3) == 0 && len(s.Players) > 0:
			s.Players = s.Players[1:]
		}
		s.PlayersOnline = len(s.Players)
	}
}

func (f *mockFleet) snapshot() []serverboard.ServerStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step()

	out := make([]serverboard.ServerStatus, len(f.servers))
	copy(out, f.servers)
	for i := range out {
		if out[i].PlayersKnown != nil && !*out[i].PlayersKnown {
			out[i].Players = nil
		} else {
			out[i].Players = append([]string(nil), out[i].Players...)
		}
	}
	return out
}

// StartMockServer runs a mock server-list endpoint at /api/servers.
// Call this in a goroutine before creating the board.
func StartMockServer(addr string) {
	fleet := newMockFleet()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/servers", func(w http.ResponseWriter, r *http.Request) {
		// simulate small latency variance
		time.Sleep(time.Duration(50+rand.Intn(150)) * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(fleet.snapshot()); err != nil {
			slog.Error("failed to write response", "error", err)
		}
	})

	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("mock server error", "error", err)
	}
}
