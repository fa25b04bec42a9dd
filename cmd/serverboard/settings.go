package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jpalmerr/serverboard/internal/poller"
	"github.com/jpalmerr/serverboard/internal/view"
)

// envPrefix namespaces environment overrides, e.g. SERVERBOARD_URL.
const envPrefix = "SERVERBOARD"

// clientSettings are the source options shared by watch and render.
type clientSettings struct {
	URL      string
	Interval time.Duration
	Timeout  time.Duration
	Title    string
	Labels   view.Labels
	Location *time.Location
}

// addClientFlags registers the flags read by loadClientSettings.
func addClientFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("url", "", "server-list endpoint to poll (env SERVERBOARD_URL)")
	f.Duration("interval", poller.DefaultInterval, "time between polls (env SERVERBOARD_INTERVAL)")
	f.Duration("timeout", 10*time.Second, "timeout for a single fetch (env SERVERBOARD_TIMEOUT)")
	f.String("title", "Server Status", "board title (env SERVERBOARD_TITLE)")
	f.String("locale", "en", "card vocabulary: en or zh (env SERVERBOARD_LOCALE)")
	f.String("time-zone", "", "IANA zone for checked-at times, default local (env SERVERBOARD_TIME_ZONE)")
}

// loadClientSettings resolves flags, SERVERBOARD_* environment variables and
// defaults, in that order of precedence.
func loadClientSettings(cmd *cobra.Command) (clientSettings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return clientSettings{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	s := clientSettings{
		URL:      strings.TrimSpace(v.GetString("url")),
		Interval: v.GetDuration("interval"),
		Timeout:  v.GetDuration("timeout"),
		Title:    v.GetString("title"),
	}

	if s.URL == "" {
		return clientSettings{}, errors.New("a source URL is required (--url or SERVERBOARD_URL)")
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return clientSettings{}, fmt.Errorf("invalid url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return clientSettings{}, fmt.Errorf("url must be an absolute http or https URL, got %q", s.URL)
	}

	if s.Interval <= 0 {
		return clientSettings{}, fmt.Errorf("interval must be positive, got %s", s.Interval)
	}
	if s.Timeout <= 0 {
		return clientSettings{}, fmt.Errorf("timeout must be positive, got %s", s.Timeout)
	}

	locale := v.GetString("locale")
	labels, ok := view.LabelsForLocale(locale)
	if !ok {
		return clientSettings{}, fmt.Errorf("unsupported locale %q (expected en or zh)", locale)
	}
	s.Labels = labels

	s.Location = time.Local
	if zone := v.GetString("time-zone"); zone != "" {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return clientSettings{}, fmt.Errorf("time-zone: %w", err)
		}
		s.Location = loc
	}

	return s, nil
}
