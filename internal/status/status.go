package status

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ID is the identity key of a server. Upstream services emit either a JSON
// number (database primary keys) or a string; both decode to the same textual
// form so a server keeps its identity regardless of encoding.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return errors.New("id must not be null")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = canonicalNumber(n)
	return nil
}

// maxExactInt is the largest integer a float64 holds exactly.
const maxExactInt = 1 << 53

// canonicalNumber maps integral numbers to their shortest decimal form, so
// 1, 1.0, 1e0 and "1" all name the same server. Other numbers keep their text.
func canonicalNumber(n json.Number) ID {
	if i, err := n.Int64(); err == nil {
		return ID(strconv.FormatInt(i, 10))
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) <= maxExactInt {
		return ID(strconv.FormatInt(int64(f), 10))
	}
	return ID(n.String())
}

// MarshalJSON writes ids in canonical integer form back as JSON numbers and
// everything else, including "007" and "+5", as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if i, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(i, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// String returns the id text.
func (id ID) String() string {
	return string(id)
}

// ServerStatus is a single server-status record.
type ServerStatus struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Online  bool   `json:"online"`

	// LatencyMS is nil when latency was not measured.
	LatencyMS *float64 `json:"latency_ms"`

	PlayersOnline int `json:"players_online"`
	PlayersMax    int `json:"players_max"`

	// CheckedAt is an ISO-8601 timestamp, empty when absent.
	CheckedAt string `json:"checked_at"`

	// PlayersKnown is nil when the upstream did not say. Only an explicit
	// false marks the roster as unavailable.
	PlayersKnown *bool `json:"players_known"`

	Players        []string `json:"players"`
	PlayersDisplay []string `json:"players_display"`
}

// RosterKnown reports whether the player roster is available.
func (s ServerStatus) RosterKnown() bool {
	return s.PlayersKnown == nil || *s.PlayersKnown
}

// DisplayPlayers returns PlayersDisplay when it has entries, otherwise Players.
func (s ServerStatus) DisplayPlayers() []string {
	if len(s.PlayersDisplay) > 0 {
		return s.PlayersDisplay
	}
	return s.Players
}

// ErrNotList is returned by [DecodeList] when the body is not a JSON array.
var ErrNotList = errors.New("server list must be a JSON array")

// DecodeList parses a JSON array of server-status records.
//
// The whole body must be a well-formed array. A null body, a null element or a
// field of the wrong type fails the decode; unknown fields are ignored.
func DecodeList(r io.Reader) ([]ServerStatus, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode server list: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrNotList
	}

	var items []*ServerStatus
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode server list: %w", err)
	}

	servers := make([]ServerStatus, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("server list element %d is null", i)
		}
		servers = append(servers, *item)
	}
	return servers, nil
}

// Float returns a pointer to v, for building records in code.
func Float(v float64) *float64 {
	return &v
}

// Bool returns a pointer to v, for building records in code.
func Bool(v bool) *bool {
	return &v
}
