package serverboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jpalmerr/serverboard/dashboard"
	"github.com/jpalmerr/serverboard/internal/dom"
	"github.com/jpalmerr/serverboard/internal/poller"
	"github.com/jpalmerr/serverboard/internal/server"
	"github.com/jpalmerr/serverboard/internal/store"
	"github.com/jpalmerr/serverboard/internal/view"
)

const (
	defaultPollingInterval = poller.DefaultInterval
	defaultTimeout         = 10 * time.Second
	defaultPort            = 8080

	// containerID is the element id the dashboard script patches on update.
	containerID = "server-list"
)

// Board is the orchestrator for polling, reconciliation and serving.
//
// Board polls the configured source, reconciles every successful snapshot
// into a persistent card tree, publishes the rendered tree to the dashboard
// and notifies render callbacks. It is created using [New] with functional
// options and started with [Board.Start].
//
// The caller controls the lifecycle via the context passed to Start. Cancel
// the context to trigger graceful shutdown.
type Board struct {
	title           string
	source          string
	pollingInterval time.Duration
	timeout         time.Duration
	port            int
	logger          *slog.Logger
	labels          Labels
	location        *time.Location
	renderCallbacks []RenderCallback
}

// New creates a new [Board] with the given options.
//
// A source must be configured via [WithSource]. Other options have defaults:
//   - Polling interval: 5 seconds
//   - Timeout: 10 seconds
//   - Port: 8080
//   - Labels: English
//
// Returns an error if no source is configured or if any option is invalid.
func New(opts ...Option) (*Board, error) {
	cfg := &boardConfig{
		pollingInterval: defaultPollingInterval,
		timeout:         defaultTimeout,
		port:            defaultPort,
		labels:          view.EnglishLabels(),
		location:        time.Local,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.source == "" {
		return nil, errors.New("a source URL is required")
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Board{
		title:           cfg.title,
		source:          cfg.source,
		pollingInterval: cfg.pollingInterval,
		timeout:         cfg.timeout,
		port:            cfg.port,
		logger:          logger,
		labels:          cfg.labels,
		location:        cfg.location,
		renderCallbacks: slices.Clone(cfg.renderCallbacks),
	}, nil
}

// Start begins polling and serving the dashboard.
//
// Start is a blocking call that runs until ctx is cancelled. During
// execution:
//
//   - The source is polled immediately, then at the configured interval
//   - Each successful poll is reconciled into the card tree and published
//   - Failed polls are logged and leave the published view unchanged
//   - The dashboard is available at http://localhost:<port>
//
// Returns nil on graceful shutdown. Returns an error if the HTTP server fails
// to start.
func (b *Board) Start(ctx context.Context) error {
	b.logger.Info("serverboard starting", "source", b.source)
	b.logger.Info("polling configured",
		"interval", b.pollingInterval.String(),
		"timeout", b.timeout.String(),
	)
	b.logger.Info("dashboard available", "url", fmt.Sprintf("http://localhost:%d", b.port))

	if ctx.Err() != nil {
		return nil
	}

	snapshots := store.NewMemoryStore()
	loop := b.newRenderLoop(snapshots)

	scheduler := poller.NewScheduler(b.source, b.pollingInterval, b.timeout, b.logger)
	scheduler.Start(ctx)

	// single consumer: reconciliation passes never interleave
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for result := range scheduler.Results() {
			loop.handle(result)
		}
	}()

	cleanup := func() {
		scheduler.Stop() // closes results channel
		wg.Wait()
	}

	httpServer := server.NewServer(snapshots, b.port, dashboard.Assets, b.title, b.logger)
	if err := httpServer.Start(ctx); err != nil {
		cleanup()
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	<-ctx.Done()
	cleanup()
	b.logger.Info("serverboard stopped")
	return nil
}

// Source returns the polled URL.
func (b *Board) Source() string {
	return b.source
}

// Port returns the configured HTTP port for the dashboard server.
func (b *Board) Port() int {
	return b.port
}

// PollingInterval returns the configured interval between poll cycles.
func (b *Board) PollingInterval() time.Duration {
	return b.pollingInterval
}

// Timeout returns the per-fetch timeout.
func (b *Board) Timeout() time.Duration {
	return b.timeout
}

// renderLoop owns the card tree. Only the consumer goroutine calls handle.
type renderLoop struct {
	container  *dom.Element
	surface    *view.DOMSurface
	reconciler *view.Reconciler
	store      store.Store
	callbacks  []RenderCallback
	logger     *slog.Logger
}

func (b *Board) newRenderLoop(st store.Store) *renderLoop {
	container := dom.New("section", "server-list", "")
	container.SetAttr("id", containerID)

	surface := view.NewDOMSurface(container, b.labels)
	return &renderLoop{
		container: container,
		surface:   surface,
		reconciler: view.NewReconciler(surface,
			view.WithLabels(b.labels),
			view.WithLocation(b.location),
		),
		store:     st,
		callbacks: b.renderCallbacks,
		logger:    b.logger,
	}
}

// handle applies one poll result. A failed result is logged and dropped; the
// card tree and the published snapshot stay as they were.
func (l *renderLoop) handle(result poller.Result) {
	if result.Err != nil {
		l.logger.Warn("poll failed",
			"cycle", result.Cycle,
			"url", result.URL,
			"status_code", result.StatusCode,
			"latency_ms", result.Latency.Milliseconds(),
			"error", result.Err.Error(),
		)
		return
	}

	stats := l.reconciler.Render(result.Servers)
	snap := store.Snapshot{
		Cycle:      result.Cycle,
		Servers:    result.Servers,
		HTML:       l.container.HTML(),
		Class:      l.container.ClassName(),
		Cards:      l.surface.Fragments(),
		Stats:      stats,
		RenderedAt: time.Now(),
	}

	// store update first (callbacks fire after the view is published)
	l.store.Update(snap)

	l.logger.Debug("view reconciled",
		"cycle", result.Cycle,
		"cards", stats.Cards,
		"created", stats.Created,
		"pruned", len(stats.Pruned),
		"roster_rebuilds", stats.RosterRebuilds,
		"latency_ms", result.Latency.Milliseconds(),
	)

	for _, cb := range l.callbacks {
		invokeCallbackSafe(cb, toRenderResult(snap, result.Latency), l.logger)
	}
}

// toRenderResult converts a snapshot to the public callback type. Each call
// returns fresh copies so callbacks cannot observe each other's mutations.
func toRenderResult(snap store.Snapshot, latency time.Duration) RenderResult {
	stats := snap.Stats
	stats.Pruned = slices.Clone(stats.Pruned)

	return RenderResult{
		Cycle:      snap.Cycle,
		Servers:    copyServers(snap.Servers),
		HTML:       snap.HTML,
		Stats:      stats,
		Latency:    latency,
		RenderedAt: snap.RenderedAt,
	}
}

// copyServers deep-copies the mutable fields of each record.
func copyServers(servers []ServerStatus) []ServerStatus {
	if servers == nil {
		return nil
	}
	out := make([]ServerStatus, len(servers))
	for i, s := range servers {
		s.Players = slices.Clone(s.Players)
		s.PlayersDisplay = slices.Clone(s.PlayersDisplay)
		if s.LatencyMS != nil {
			v := *s.LatencyMS
			s.LatencyMS = &v
		}
		if s.PlayersKnown != nil {
			v := *s.PlayersKnown
			s.PlayersKnown = &v
		}
		out[i] = s
	}
	return out
}

// invokeCallbackSafe calls a render callback with panic recovery. The panic
// and stack are logged under a correlation id and do not propagate.
func invokeCallbackSafe(cb RenderCallback, result RenderResult, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("render callback panicked",
				"correlation_id", uuid.NewString(),
				"panic", fmt.Sprintf("%v", r),
				"cycle", result.Cycle,
				"stack", string(debug.Stack()),
			)
		}
	}()
	cb(result)
}
