package countdown

import (
	"fmt"
	"math"
	"time"
)

const (
	minutesInDay           = 1440
	minutesInAlmostTwoDays = 2520
	minutesInMonth         = 43200
	minutesInTwoMonths     = 86400
)

// FormatDistance renders a coarse relative phrase such as "in about 2 hours"
// for a future duration, or "... ago" for a past one. Buckets follow the
// common date-fns wording.
func FormatDistance(d time.Duration) string {
	past := d < 0
	if past {
		d = -d
	}

	phrase := distancePhrase(d)
	if past {
		return phrase + " ago"
	}
	return "in " + phrase
}

func distancePhrase(d time.Duration) string {
	minutes := int(math.Round(d.Seconds() / 60))

	switch {
	case minutes < 2:
		if minutes == 0 {
			return "less than a minute"
		}
		return "1 minute"
	case minutes < 45:
		return fmt.Sprintf("%d minutes", minutes)
	case minutes < 90:
		return "about 1 hour"
	case minutes < minutesInDay:
		return plural("about %d hour", int(math.Round(float64(minutes)/60)))
	case minutes < minutesInAlmostTwoDays:
		return "1 day"
	case minutes < minutesInMonth:
		return plural("%d day", int(math.Round(float64(minutes)/minutesInDay)))
	case minutes < minutesInTwoMonths:
		return plural("about %d month", int(math.Round(float64(minutes)/minutesInMonth)))
	}

	months := minutes / minutesInMonth
	if months < 12 {
		return plural("%d month", int(math.Round(float64(minutes)/minutesInMonth)))
	}

	years := months / 12
	switch rest := months % 12; {
	case rest < 3:
		return plural("about %d year", years)
	case rest < 9:
		return plural("over %d year", years)
	default:
		return plural("almost %d year", years+1)
	}
}

func plural(format string, n int) string {
	s := fmt.Sprintf(format, n)
	if n != 1 {
		s += "s"
	}
	return s
}
