package serverboard

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"
)

// boardConfig holds mutable state during Board construction.
type boardConfig struct {
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

// Option is a function that configures a [Board] during construction.
//
// Options return an error if validation fails.
type Option func(*boardConfig) error

// WithSource sets the URL of the JSON endpoint to poll. Required.
//
// The URL must be absolute with an http or https scheme.
func WithSource(rawURL string) Option {
	return func(cfg *boardConfig) error {
		if err := validateSource(rawURL); err != nil {
			return err
		}
		cfg.source = rawURL
		return nil
	}
}

func validateSource(rawURL string) error {
	if rawURL == "" {
		return errors.New("source URL cannot be empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid source URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("source URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("source URL must have a host")
	}
	return nil
}

// WithPollingInterval sets the time between poll cycles. Defaults to 5
// seconds.
//
// Polls are not sequenced: a slow response may still be in flight when the
// next cycle starts.
//
// Returns an error if the duration is zero or negative.
func WithPollingInterval(d time.Duration) Option {
	return func(cfg *boardConfig) error {
		if d <= 0 {
			return errors.New("polling interval must be positive")
		}
		cfg.pollingInterval = d
		return nil
	}
}

// WithTimeout bounds a single fetch. Defaults to 10 seconds.
//
// Returns an error if the duration is zero or negative.
func WithTimeout(d time.Duration) Option {
	return func(cfg *boardConfig) error {
		if d <= 0 {
			return errors.New("timeout must be positive")
		}
		cfg.timeout = d
		return nil
	}
}

// WithPort sets the HTTP port for the dashboard server. Defaults to 8080.
//
// Returns an error if the port is outside the valid range (1-65535).
func WithPort(port int) Option {
	return func(cfg *boardConfig) error {
		if port < 1 || port > 65535 {
			return errors.New("port must be between 1 and 65535")
		}
		cfg.port = port
		return nil
	}
}

// WithTitle sets the dashboard title displayed in the browser tab and header.
//
// If not specified, the server falls back to "Server Status".
func WithTitle(title string) Option {
	return func(cfg *boardConfig) error {
		cfg.title = title
		return nil
	}
}

// WithLogger sets a custom [slog.Logger]. If not specified, [slog.Default]
// is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *boardConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithLabels sets the display vocabulary of the cards. Defaults to
// [EnglishLabels].
func WithLabels(labels Labels) Option {
	return func(cfg *boardConfig) error {
		cfg.labels = labels
		return nil
	}
}

// WithLocation sets the time zone checked-at timestamps are displayed in.
// Defaults to the local zone.
//
// Returns an error if loc is nil.
func WithLocation(loc *time.Location) Option {
	return func(cfg *boardConfig) error {
		if loc == nil {
			return errors.New("location cannot be nil")
		}
		cfg.location = loc
		return nil
	}
}

// WithRenderCallback registers a function to be called after every successful
// reconciliation pass.
//
// Multiple callbacks may be registered; they execute in registration order,
// after the new view has been published to the dashboard. Callbacks run on
// the render goroutine and must not block. Panics are recovered and logged.
//
// Example:
//
//	board, err := serverboard.New(
//	    serverboard.WithSource(url),
//	    serverboard.WithRenderCallback(func(r serverboard.RenderResult) {
//	        for _, id := range r.Stats.Pruned {
//	            log.Printf("server %s disappeared", id)
//	        }
//	    }),
//	)
//
// Nil callbacks are silently ignored.
func WithRenderCallback(cb RenderCallback) Option {
	return func(cfg *boardConfig) error {
		if cb == nil {
			return nil
		}
		cfg.renderCallbacks = append(cfg.renderCallbacks, cb)
		return nil
	}
}
