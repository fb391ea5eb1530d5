package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the calendar-day format used across the API.
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// TruncateToDay drops the time-of-day component, keeping the calendar day
// in the value's location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RangesOverlap reports whether two date ranges intersect under
// closed-interval semantics: aStart <= bEnd && aEnd >= bStart.
// All comparisons are calendar-day comparisons.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = TruncateToDay(aStart), TruncateToDay(aEnd)
	bStart, bEnd = TruncateToDay(bStart), TruncateToDay(bEnd)
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// FormatDateRange renders a range the way the API reports conflicts,
// e.g. "2025-03-01 to 2025-03-03".
func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s to %s", start.Format(DateLayout), end.Format(DateLayout))
}
