package trips

import (
	"strings"
	"time"
)

// TimestampLayout is the normalised form timestamps are stored in after derivation.
const TimestampLayout = "2006-01-02 15:04:05"

// timestampLayouts are tried in order; covers Divvy exports from 2013 onward.
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999 -0700",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
}

// ParseTimestamp parses s with the first matching layout. ok is false when no
// layout matches; the value is then missing rather than an error.
func ParseTimestamp(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
