package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"smart-notes/pkg/clock"
)

// ReferenceZone is assumed for wall-clock expressions when the local zone
// cannot be determined. It matches the zone the analysis prompt tells the
// backend to use.
var ReferenceZone = time.FixedZone("IST", 5*60*60+30*60)

// NoneValue is the literal the backend emits when a note carries no date.
const NoneValue = "none"

var timeOfDayRe = regexp.MustCompile(`(\d{1,2})(?:\s*[:.]\s*(\d{2}))?\s*([AaPp][Mm])?`)

// absoluteLayouts are tried in order. Layouts without a zone are read in the
// resolver's location.
var absoluteLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	"January 2, 2006 3:04 PM",
	"January 2, 2006 15:04",
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006 15:04",
	"January 2, 2006",
}

// Resolver converts date expressions extracted from a note into absolute times.
type Resolver struct {
	zones clock.ZoneProvider
}

// NewResolver creates a Resolver that asks zones for the local timezone on
// every resolution.
func NewResolver(zones clock.ZoneProvider) *Resolver {
	return &Resolver{zones: zones}
}

// Resolve returns the instant expr refers to, relative to now. ok is false
// when expr is empty, "none", or cannot be understood; Resolve never fails
// louder than that.
//
// Wall-clock expressions are read in the local zone, or in ReferenceZone
// (UTC+5:30) when no local zone can be determined. An expression that
// carries its own offset ("2024-01-02T18:00:00Z") keeps it.
func (r *Resolver) Resolve(expr string, now time.Time) (t time.Time, ok bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" || expr == NoneValue {
		return time.Time{}, false
	}

	loc := r.location()

	if strings.Contains(strings.ToLower(expr), "tomorrow") {
		return resolveTomorrow(expr, now.In(loc), loc)
	}
	return parseAbsolute(expr, loc)
}

// location returns the zone wall-clock fields are interpreted in.
func (r *Resolver) location() *time.Location {
	if r.zones != nil {
		if loc, ok := r.zones.Location(); ok && loc != nil {
			return loc
		}
	}
	return ReferenceZone
}

// resolveTomorrow handles "tomorrow at 6 PM" style expressions. Without an
// explicit time of day there is no due date.
func resolveTomorrow(expr string, now time.Time, loc *time.Location) (time.Time, bool) {
	m := timeOfDayRe.FindStringSubmatch(expr)
	if m == nil {
		return time.Time{}, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	minute := 0
	if m[2] != "" {
		if minute, err = strconv.Atoi(m[2]); err != nil {
			return time.Time{}, false
		}
	}

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	return time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, loc), true
}

func parseAbsolute(expr string, loc *time.Location) (time.Time, bool) {
	for _, layout := range absoluteLayouts {
		t, err := time.ParseInLocation(layout, expr, loc)
		if err == nil && !t.IsZero() {
			return t, true
		}
	}
	return time.Time{}, false
}
