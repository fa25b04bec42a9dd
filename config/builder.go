package config

import (
	"github.com/jpalmerr/serverboard"
)

// BuildOptions converts a parsed configuration into [serverboard.Option]
// values for [serverboard.New].
//
// The config is expected to have passed [Parse]; the remaining error comes
// from resolving the time zone.
func BuildOptions(cfg *Config) ([]serverboard.Option, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	opts := []serverboard.Option{
		serverboard.WithSource(cfg.Source),
		serverboard.WithPort(cfg.Port),
		serverboard.WithPollingInterval(cfg.PollInterval.Duration()),
		serverboard.WithTimeout(cfg.Timeout.Duration()),
		serverboard.WithLabels(cfg.Labels()),
		serverboard.WithLocation(loc),
	}
	if cfg.Title != "" {
		opts = append(opts, serverboard.WithTitle(cfg.Title))
	}
	return opts, nil
}
