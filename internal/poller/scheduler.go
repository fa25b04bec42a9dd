package poller

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jpalmerr/serverboard/internal/status"
)

// DefaultInterval is the time between poll cycles.
const DefaultInterval = 5 * time.Second

// Result is the outcome of one poll cycle.
type Result struct {
	// Cycle numbers fetches in the order they were started, from 1.
	Cycle uint64

	// URL is the polled endpoint.
	URL string

	// Servers is the decoded snapshot. Nil when Err is set.
	Servers []status.ServerStatus

	// Err is the transport, status or decode failure of the cycle.
	Err error

	// StatusCode is the HTTP status, zero if no response arrived.
	StatusCode int

	// Latency is the duration of the HTTP request.
	Latency time.Duration

	// StartedAt is when the fetch was started.
	StartedAt time.Time
}

// Scheduler polls one URL on a fixed interval.
//
// Start fetches immediately and then on every tick. Each fetch runs on its own
// goroutine, so a slow response may still be in flight when the next tick
// fires; results are emitted in completion order and the newest completion
// wins. Stop cancels the ticker and every in-flight request.
//
// All lifecycle methods are safe for concurrent use.
type Scheduler struct {
	url      string
	interval time.Duration
	timeout  time.Duration
	client   *Client
	results  chan Result
	refresh  chan struct{}
	logger   *slog.Logger
	cycle    atomic.Uint64
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	inflight sync.WaitGroup

	mu        sync.Mutex
	started   bool
	stopped   bool
	closeOnce sync.Once
}

// NewScheduler creates a [Scheduler] for url.
//
// Parameters:
//   - url: the server-list endpoint
//   - interval: time between cycles; zero or negative means [DefaultInterval]
//   - timeout: per-request timeout; zero disables it
//   - logger: logger for lifecycle events
func NewScheduler(url string, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		url:      url,
		interval: interval,
		timeout:  timeout,
		client:   NewClient(),
		results:  make(chan Result, 4),
		refresh:  make(chan struct{}, 1),
		logger:   logger,
	}
}

// Results returns the channel of poll outcomes. It is closed once the
// scheduler has stopped and every in-flight fetch has finished.
func (s *Scheduler) Results() <-chan Result {
	return s.results
}

// Interval returns the time between cycles.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start begins polling in a background goroutine and returns immediately.
//
// If ctx is nil, context.Background() is used. Start is idempotent; calling it
// after Stop is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.started = true

	if ctx == nil {
		ctx = context.Background()
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	pollCtx := s.ctx // capture under lock to avoid race
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Debug("poller started", "url", s.url, "interval", s.interval.String())

	go func() {
		defer s.wg.Done()
		defer func() {
			// only this goroutine adds to inflight, so Wait cannot race Add
			s.inflight.Wait()
			s.closeOnce.Do(func() { close(s.results) })
		}()

		s.launch(pollCtx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
				s.launch(pollCtx)
			case <-s.refresh:
				s.launch(pollCtx)
			}
		}
	}()
}

// Refresh requests an extra cycle outside the regular ticks. Requests made
// while one is already pending are merged. It is a no-op when not running.
func (s *Scheduler) Refresh() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// Stop cancels polling, aborts in-flight requests and waits for the results
// channel to close. Stop is idempotent and safe to call before Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		if s.cancel != nil {
			s.cancel()
		}
	}
	s.mu.Unlock()

	s.wg.Wait()

	if s.client != nil {
		s.client.Close()
	}

	// ensure channel is closed even if Start() was never called
	s.closeOnce.Do(func() { close(s.results) })
}

// launch starts one fetch on its own goroutine.
func (s *Scheduler) launch(ctx context.Context) {
	cycle := s.cycle.Add(1)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		result := s.poll(ctx, cycle)
		select {
		case s.results <- result:
		case <-ctx.Done():
		}
	}()
}

// poll performs a single fetch.
func (s *Scheduler) poll(ctx context.Context, cycle uint64) Result {
	started := time.Now()
	servers, resp, err := s.client.FetchServers(ctx, s.url, s.timeout)
	return Result{
		Cycle:      cycle,
		URL:        s.url,
		Servers:    servers,
		Err:        err,
		StatusCode: resp.StatusCode,
		Latency:    resp.Latency,
		StartedAt:  started,
	}
}
