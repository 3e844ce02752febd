// Package datetime converts the graph API's timestamp encodings into
// time.Time values.
//
// All parse functions report absence instead of failing: a missing or
// unreadable timestamp yields (time.Time{}, false).
package datetime

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// LongLayout is the long format used for created_time and friends,
	// for example "2012-01-01T00:00:00+0000".
	LongLayout = "2006-01-02T15:04:05-0700"

	LongLayoutNoZone        = "2006-01-02T15:04:05"
	LongLayoutNoZoneSeconds = "2006-01-02T15:04"
)

// ParseLong converts a long format timestamp. An all-digit value is read as
// seconds since the Unix epoch. Values without a zone are taken as UTC.
// Values in none of the long layouts get a last, lenient attempt.
func ParseLong(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if allDigits(raw) {
		secs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(secs, 0).UTC(), true
	}
	for _, layout := range []string{LongLayout, LongLayoutNoZone, LongLayoutNoZoneSeconds} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return lenient(raw)
}

func lenient(raw string) (t time.Time, ok bool) {
	// dateparse can panic on some malformed inputs
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
