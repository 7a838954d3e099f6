package main

import (
	"fmt"
	"time"
)

// Approximate-calendar constants. These are not calendar-aware on
// purpose; the divisors are part of the output contract.
const (
	secondsPerMonth = 2629744
	secondsPerYear  = 31556926
)

// formatModTime renders the modified-time column. A zero time means the
// timestamp could not be read and renders as "unknown".
//
// The non-fuzzy mode is epoch-relative, not age-relative: it shows
// days-since-epoch mod 365 plus the hour/minute of day of the timestamp
// itself, as "{days}d {hours}h:{minutes}m". That matches the historical
// behavior and is kept as-is.
func formatModTime(mod time.Time, fuzzy bool) string {
	if mod.IsZero() {
		return "unknown"
	}
	if fuzzy {
		return fuzzyAge(time.Now().Unix() - mod.Unix())
	}

	secs := mod.Unix()
	days := secs / 86400 % 365
	hours := secs % 86400 / 3600
	minutes := secs % 3600 / 60
	return fmt.Sprintf("%dd %dh:%dm", days, hours, minutes)
}

// fuzzyAge buckets an elapsed number of seconds into the largest unit
// that fits. Timestamps from the future render as "future".
func fuzzyAge(elapsed int64) string {
	switch {
	case elapsed < 0:
		return "future"
	case elapsed == 0:
		return "now"
	case elapsed < 60:
		return pluralize(elapsed, "second")
	case elapsed < 3600:
		return pluralize(elapsed/60, "minute")
	case elapsed < 86400:
		return pluralize(elapsed/3600, "hour")
	case elapsed < 604800:
		return pluralize(elapsed/86400, "day")
	case elapsed < secondsPerMonth:
		return pluralize(elapsed/604800, "week")
	case elapsed < secondsPerYear:
		return pluralize(elapsed/secondsPerMonth, "month")
	default:
		return pluralize(elapsed/secondsPerYear, "year")
	}
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
