package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/jpalmerr/serverboard/internal/view"
)

func TestParse_MinimalConfig(t *testing.T) {
	yaml := `
source: http://127.0.0.1:5000/api/servers
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// check defaults applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.PollInterval.Duration() != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", cfg.PollInterval.Duration())
	}
	if cfg.Timeout.Duration() != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout.Duration())
	}
	if cfg.Locale != "" {
		t.Errorf("Locale = %q, want empty", cfg.Locale)
	}
}

func TestParse_FullConfig(t *testing.T) {
	yaml := `
title: Minecraft servers
port: 9090
source: https://status.example.com/api/servers
poll_interval: 30s
timeout: 4s
locale: zh
time_zone: Asia/Shanghai
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Title != "Minecraft servers" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Minecraft servers")
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.Source != "https://status.example.com/api/servers" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.PollInterval.Duration() != 30*time.Second {
		t.Errorf("PollInterval = %v, want 30s", cfg.PollInterval.Duration())
	}
	if cfg.Timeout.Duration() != 4*time.Second {
		t.Errorf("Timeout = %v, want 4s", cfg.Timeout.Duration())
	}
	if cfg.Labels() != view.ChineseLabels() {
		t.Errorf("Labels() = %+v, want Chinese", cfg.Labels())
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	if loc.String() != "Asia/Shanghai" {
		t.Errorf("Location() = %v, want Asia/Shanghai", loc)
	}
}

func TestParse_EnvVarSubstitution(t *testing.T) {
	t.Setenv("STATUS_HOST", "mc.internal")
	t.Setenv("BOARD_TITLE", "Fleet")

	yaml := `
title: ${BOARD_TITLE}
source: http://${STATUS_HOST}:5000/api/servers
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Source != "http://mc.internal:5000/api/servers" {
		t.Errorf("Source = %q, want expanded host", cfg.Source)
	}
	if cfg.Title != "Fleet" {
		t.Errorf("Title = %q, want Fleet", cfg.Title)
	}
}

func TestParse_EnvVarDefault(t *testing.T) {
	yaml := `
source: ${SERVERBOARD_TEST_UNSET_SOURCE:-http://127.0.0.1:5000/api/servers}
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Source != "http://127.0.0.1:5000/api/servers" {
		t.Errorf("Source = %q, want default", cfg.Source)
	}
}

func TestParse_EnvVarMissing(t *testing.T) {
	yaml := `
source: ${SERVERBOARD_TEST_MISSING_SOURCE}
`
	_, err := Parse([]byte(yaml))
	if err == nil {
		t.Fatal("Parse() expected error for missing env var, got nil")
	}
	if !strings.Contains(err.Error(), "SERVERBOARD_TEST_MISSING_SOURCE") {
		t.Errorf("error = %v, want it to name the variable", err)
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing source",
			yaml:    `port: 8080`,
			wantErr: "source is required",
		},
		{
			name:    "source without scheme",
			yaml:    `source: 127.0.0.1/api/servers`,
			wantErr: "must have a scheme",
		},
		{
			name:    "source with ftp scheme",
			yaml:    `source: ftp://example.com/servers`,
			wantErr: "scheme must be http or https",
		},
		{
			name:    "source without host",
			yaml:    `source: "http:///api/servers"`,
			wantErr: "must have a host",
		},
		{
			name: "port out of range",
			yaml: `
source: http://example.com
port: 70000
`,
			wantErr: "port must be between 1 and 65535",
		},
		{
			name: "negative port",
			yaml: `
source: http://example.com
port: -1
`,
			wantErr: "port must be between 1 and 65535",
		},
		{
			name: "poll interval too short",
			yaml: `
source: http://example.com
poll_interval: 500ms
`,
			wantErr: "poll_interval must be at least 1s",
		},
		{
			name: "timeout too short",
			yaml: `
source: http://example.com
timeout: 10ms
`,
			wantErr: "timeout must be at least 100ms",
		},
		{
			name: "negative timeout",
			yaml: `
source: http://example.com
timeout: -1s
`,
			wantErr: "timeout must be at least",
		},
		{
			name: "unknown locale",
			yaml: `
source: http://example.com
locale: fr
`,
			wantErr: `unsupported locale "fr"`,
		},
		{
			name: "unknown time zone",
			yaml: `
source: http://example.com
time_zone: Mars/Olympus_Mons
`,
			wantErr: "time_zone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Parse() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse_Locales(t *testing.T) {
	tests := []struct {
		locale string
		want   view.Labels
	}{
		{"", view.EnglishLabels()},
		{"en", view.EnglishLabels()},
		{"zh", view.ChineseLabels()},
		{"zh-CN", view.ChineseLabels()},
	}

	for _, tt := range tests {
		t.Run("locale="+tt.locale, func(t *testing.T) {
			cfg, err := Parse([]byte("source: http://example.com\nlocale: \"" + tt.locale + "\"\n"))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if cfg.Labels() != tt.want {
				t.Errorf("Labels() = %+v, want %+v", cfg.Labels(), tt.want)
			}
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("source: [unclosed"))
	if err == nil {
		t.Fatal("Parse() expected error for invalid YAML, got nil")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("error = %v, want YAML parse error", err)
	}
}

func TestParse_InvalidDuration(t *testing.T) {
	_, err := Parse([]byte("source: http://example.com\npoll_interval: soon\n"))
	if err == nil {
		t.Fatal("Parse() expected error for invalid duration, got nil")
	}
	if !strings.Contains(err.Error(), `invalid duration "soon"`) {
		t.Errorf("error = %v, want invalid duration error", err)
	}
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"5s", 5 * time.Second},
		{"1m30s", 90 * time.Second},
		{"500ms", 500 * time.Millisecond},
		{"2h", 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg, err := Parse([]byte("source: http://example.com\ntimeout: " + tt.input + "\n"))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if cfg.Timeout.Duration() != tt.want {
				t.Errorf("Timeout = %v, want %v", cfg.Timeout.Duration(), tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "serverboard.yaml")
	if err := os.WriteFile(path, []byte("source: http://example.com/api/servers\nport: 9000\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %v, want read error", err)
	}
}

func TestConfig_LocationDefault(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	if loc != time.Local {
		t.Errorf("Location() = %v, want Local", loc)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_VAR", "value")
	t.Setenv("EMPTY_VAR", "") // set but empty

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"no vars", "plain text", "plain text", false},
		{"simple var", "${TEST_VAR}", "value", false},
		{"var in text", "prefix ${TEST_VAR} suffix", "prefix value suffix", false},
		{"multiple vars", "${TEST_VAR}-${TEST_VAR}", "value-value", false},
		{"with default (var set)", "${TEST_VAR:-default}", "value", false},
		{"with default (var unset)", "${UNSET:-default}", "default", false},
		{"missing required", "${MISSING}", "", true},
		{"empty default (var unset)", "${UNSET:-}", "", false},
		{"set but empty var", "${EMPTY_VAR}", "", false},
		{"set but empty with default", "${EMPTY_VAR:-fallback}", "", false}, // set var takes precedence
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandEnvVars(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expandEnvVars() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expandEnvVars() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandEnvVars() = %q, want %q", got, tt.want)
			}
		})
	}
}
