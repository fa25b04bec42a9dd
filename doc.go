// Package serverboard provides a live-updating status board for a fleet of
// game servers.
//
// A Board polls a JSON endpoint that reports the state of each server and
// keeps one card per server on screen. Cards are reconciled rather than
// redrawn: a card created for a server id is reused on every later poll and
// only its contents change, so a browser never flickers and client-side
// state such as hover or selection survives a refresh.
//
// # Quick Start
//
//	board, err := serverboard.New(
//	    serverboard.WithSource("http://127.0.0.1:5000/api/servers"),
//	    serverboard.WithTitle("Minecraft servers"),
//	)
//	if err != nil {
//	    slog.Error("failed to create board", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	board.Start(ctx) // blocks until ctx is cancelled
//
// # Configuration
//
// Board uses the functional options pattern:
//
//	board, err := serverboard.New(
//	    serverboard.WithSource(url),
//	    serverboard.WithPollingInterval(10 * time.Second),
//	    serverboard.WithTimeout(4 * time.Second),
//	    serverboard.WithPort(9090),
//	    serverboard.WithLabels(serverboard.ChineseLabels()),
//	)
//
// # Poll Failures
//
// A poll that fails (network error, non-2xx status, malformed JSON) is logged
// at Warn and otherwise ignored: the board keeps showing the previous
// snapshot until the next successful poll.
//
// # Architecture
//
//   - internal/status: the server-status record and its decoding
//   - internal/dom: a small mutable element tree over golang.org/x/net/html
//   - internal/view: formatting, card registry, card updater and reconciler
//   - internal/poller: HTTP fetch and the fixed-interval scheduler
//   - internal/store: latest rendered snapshot with pub/sub
//   - internal/server: dashboard page, JSON, SSE and WebSocket endpoints
//   - internal/tui: terminal rendering of the same card tree
//   - dashboard: embedded web UI assets
//
// The internal packages are not part of the public API.
package serverboard
