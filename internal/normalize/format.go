// Package normalize absorbs the backend's inconsistent key naming and
// formats. Alias resolution happens here, exactly once, at the API
// boundary; the rest of the program only sees canonical entity shapes.
//
// Normalization never fails. Fields that cannot be resolved degrade to
// documented defaults, and every fabricated default is reported back as
// a data-quality issue so the caller can log it instead of the
// substitution happening silently.
package normalize

import (
	"strings"
	"time"
)

const (
	// DateLayout and TimeLayout are the exact wire formats the backend
	// expects: "2025-09-10" and "10:00:00".
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// timestampLayouts cover the creation-date spellings observed in
// backend responses, e.g. "2025-07-29T19:27:31.573" (no zone).
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	DateLayout,
}

// FormatDate reduces any ISO-ish date to the bare "2006-01-02" form,
// stripping a trailing time component.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}

	d, _, _ := strings.Cut(s, "T")

	return d
}

// FormatTime forces "HH:MM" into "HH:MM:SS"; values already carrying
// seconds pass through untouched.
func FormatTime(s string) string {
	if s == "" {
		return ""
	}

	if strings.Count(s, ":") >= 2 {
		return s
	}

	return s + ":00"
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func firstInt(values ...*int) int {
	for _, v := range values {
		if v != nil && *v != 0 {
			return *v
		}
	}

	return 0
}
