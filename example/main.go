package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jpalmerr/serverboard"
)

func main() {
	// start mock server (see mock_server.go)
	go StartMockServer(":9999")
	time.Sleep(100 * time.Millisecond)

	board, err := serverboard.New(
		serverboard.WithSource("http://localhost:9999/api/servers"),
		serverboard.WithTitle("Demo servers"),
		serverboard.WithPollingInterval(3*time.Second),
		serverboard.WithPort(8080),
		serverboard.WithRenderCallback(func(r serverboard.RenderResult) {
			for _, id := range r.Stats.Pruned {
				slog.Info("card removed", "id", id)
			}
			if r.Stats.Created > 0 {
				slog.Info("cards created", "count", r.Stats.Created, "cycle", r.Cycle)
			}
		}),
	)
	if err != nil {
		slog.Error("failed to create board", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("  ╔═══════════════════════════════════════════════════════╗")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   serverboard demo                                    ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   Open http://localhost:8080 in your browser          ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   Mock fleet: players join and leave, servers drop    ║")
	fmt.Println("  ║   offline and come and go between polls               ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   Press Ctrl+C to stop                                ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ╚═══════════════════════════════════════════════════════╝")
	fmt.Println()

	// set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := board.Start(ctx); err != nil {
		slog.Error("serverboard error", "error", err)
		os.Exit(1)
	}
}
