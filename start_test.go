package serverboard

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"
)

const twoServers = `[
	{"id": 1, "name": "Survival", "address": "mc.example.com:25565", "online": true,
	 "latency_ms": 23.5, "players_online": 2, "players_max": 20,
	 "checked_at": "2024-05-01T10:00:00Z", "players_known": true, "players": ["alice", "bob"]},
	{"id": 2, "name": "Creative", "address": "mc.example.com:25566", "online": false,
	 "latency_ms": null, "players_online": 0, "players_max": 10,
	 "checked_at": "2024-05-01T10:00:00Z", "players_known": false}
]`

// sourceServer serves body as the server list.
func sourceServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

// freePort returns a port that was free a moment ago.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("failed to create listener: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()
	return port
}

// TestStart_BlocksUntilContextCancelled verifies that Start blocks until the
// provided context is cancelled.
func TestStart_BlocksUntilContextCancelled(t *testing.T) {
	ts := sourceServer(t, "[]")

	board, err := New(
		WithSource(ts.URL),
		WithPort(freePort(t)),
		WithPollingInterval(100*time.Millisecond),
		WithLogger(testLogger()),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- board.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)

	select {
	case err := <-done:
		t.Fatalf("Start() returned early with error: %v", err)
	default:
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after context cancellation")
	}
}

// TestStart_ReturnsImmediatelyIfContextAlreadyCancelled verifies that Start
// does nothing when handed a dead context.
func TestStart_ReturnsImmediatelyIfContextAlreadyCancelled(t *testing.T) {
	ts := sourceServer(t, "[]")

	board, err := New(WithSource(ts.URL), WithPort(freePort(t)), WithLogger(testLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- board.Start(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() error = %v, want nil", err)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Start() should return immediately for cancelled context")
	}
}

func TestStart_PortInUse(t *testing.T) {
	ts := sourceServer(t, "[]")

	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("failed to create listener: %v", err)
	}
	defer func() { _ = ln.Close() }()

	board, err := New(
		WithSource(ts.URL),
		WithPort(ln.Addr().(*net.TCPAddr).Port),
		WithLogger(testLogger()),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = board.Start(ctx)
	if err == nil {
		t.Fatal("Start() on occupied port should return error")
	}
	if !strings.Contains(err.Error(), "failed to start HTTP server") {
		t.Errorf("Start() error = %v, want HTTP server error", err)
	}
}

// TestStart_ServesReconciledView runs the whole pipeline: poll, reconcile,
// publish and serve.
func TestStart_ServesReconciledView(t *testing.T) {
	ts := sourceServer(t, twoServers)
	port := freePort(t)

	board, err := New(
		WithSource(ts.URL),
		WithPort(port),
		WithPollingInterval(50*time.Millisecond),
		WithLogger(testLogger()),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- board.Start(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	base := "http://127.0.0.1:" + strconv.Itoa(port)

	var view string
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		view = get(t, base+"/api/view")
		if strings.Contains(view, "Survival") {
			break
		}
		time.Sleep(25 * time.Millisecond)
	}

	for _, want := range []string{
		`id="server-list"`,
		`data-id="1"`,
		`data-id="2"`,
		`class="card online"`,
		`class="card offline"`,
		"Latency: 23.5 ms",
		`<span class="chip">alice</span>`,
		"roster unavailable",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	var servers []ServerStatus
	if err := json.Unmarshal([]byte(get(t, base+"/api/servers")), &servers); err != nil {
		t.Fatalf("invalid /api/servers JSON: %v", err)
	}
	if len(servers) != 2 || servers[0].Name != "Survival" {
		t.Errorf("servers = %+v, want Survival, Creative", servers)
	}
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		return ""
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}
