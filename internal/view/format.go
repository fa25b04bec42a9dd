package view

import (
	"strconv"
	"time"
)

// Placeholder is shown for fields that are absent.
const Placeholder = "-"

// checkedAtDisplayLayout is the display form of a parsed checked_at value.
const checkedAtDisplayLayout = "2006-01-02 15:04:05"

// zoned layouts carry their own offset; local layouts are read in the display
// location, the way a browser Date treats zone-less ISO strings.
var (
	zonedLayouts = []string{time.RFC3339Nano}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02",
	}
)

// FormatLatency renders a latency in milliseconds, or [Placeholder] when it
// was not measured.
func FormatLatency(ms *float64) string {
	if ms == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*ms, 'f', -1, 64) + " ms"
}

// FormatCheckedAt renders an ISO-8601 timestamp in local time. Empty input
// yields [Placeholder]; input that does not parse is returned unchanged.
func FormatCheckedAt(iso string) string {
	return FormatCheckedAtIn(iso, time.Local)
}

// FormatCheckedAtIn is [FormatCheckedAt] with an explicit display location.
func FormatCheckedAtIn(iso string, loc *time.Location) string {
	if iso == "" {
		return Placeholder
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.In(loc).Format(checkedAtDisplayLayout)
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, iso, loc); err == nil {
			return t.Format(checkedAtDisplayLayout)
		}
	}
	return iso
}
