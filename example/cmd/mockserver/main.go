// Standalone mock server for testing the CLI.
//
// Usage:
//
//	go run ./example/cmd/mockserver
//
// Then in another terminal:
//
//	go run ./cmd/serverboard serve -c example/config.yaml
//	go run ./cmd/serverboard watch --url http://localhost:9999/api/servers
//
// The response cycles through a fixed sequence of scenarios every 10 seconds
// so each board state can be watched in turn.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"
)

type scenario struct {
	name string
	body string
}

var scenarios = []scenario{
	{"empty", `[]`},
	{"single server", `[
		{"id": 1, "name": "Survival", "address": "mc.example.com:25565", "online": true,
		 "latency_ms": 23.5, "players_online": 2, "players_max": 20,
		 "checked_at": "2024-05-01T10:00:00Z", "players_known": true, "players": ["alice", "bob"]}
	]`},
	{"second server joins", `[
		{"id": 1, "name": "Survival", "address": "mc.example.com:25565", "online": true,
		 "latency_ms": 31, "players_online": 3, "players_max": 20,
		 "checked_at": "2024-05-01T10:00:10Z", "players_known": true, "players": ["alice", "bob", "carol"]},
		{"id": "creative", "name": "Creative", "address": "mc.example.com:25566", "online": true,
		 "latency_ms": 48.25, "players_online": 0, "players_max": 10,
		 "checked_at": "2024-05-01T10:00:10Z", "players_known": true, "players": []}
	]`},
	{"roster unknown, one offline", `[
		{"id": "creative", "name": "Creative", "address": "mc.example.com:25566", "online": false,
		 "latency_ms": null, "players_online": 0, "players_max": 10,
		 "checked_at": "2024-05-01T10:00:20Z", "players_known": true, "players": []},
		{"id": 1, "name": "Survival", "address": "mc.example.com:25565", "online": true,
		 "latency_ms": 19.9, "players_online": 7, "players_max": 20,
		 "checked_at": "2024-05-01T10:00:20Z", "players_known": false}
	]`},
	{"display names", `[
		{"id": 1, "name": "Survival", "address": "mc.example.com:25565", "online": true,
		 "latency_ms": 22, "players_online": 2, "players_max": 20,
		 "checked_at": "2024-05-01T10:00:30Z", "players_known": true,
		 "players": ["alice", "bob"], "players_display": ["Alice the Brave", "Bob <3"]}
	]`},
	{"upstream error", ""},
}

func main() {
	fmt.Println("Mock server list starting on :9999")
	fmt.Println("Scenarios change every 10s: empty → single → two → offline → display names → error")
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	var (
		mu      sync.Mutex
		current = 0
		since   = time.Now()
	)

	http.HandleFunc("/api/servers", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		if time.Since(since) >= 10*time.Second {
			current = (current + 1) % len(scenarios)
			since = time.Now()
			slog.Info("scenario change", "scenario", scenarios[current].name)
		}
		sc := scenarios[current]
		mu.Unlock()

		if sc.body == "" {
			http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, sc.body)
	})

	if err := http.ListenAndServe(":9999", nil); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
