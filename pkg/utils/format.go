package utils

import (
	"fmt"
	"strings"
	"time"
)

// FormatFileSize renders a byte count as a human-readable size using a
// 1024 base and at most one decimal place. Zero is a literal "0 B".
func FormatFileSize(size int64) string {
	if size <= 0 {
		return "0 B"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d B", size)
	}

	s := fmt.Sprintf("%.1f", value)
	s = strings.TrimSuffix(s, ".0")
	return s + " " + units[unit]
}

// FormatRelativeTime renders a millisecond timestamp as a coarse relative
// string ("just now", "5 minutes ago", ...), falling back to an absolute
// date for anything older than a week.
func FormatRelativeTime(unixMs int64) string {
	return relativeTime(unixMs, time.Now())
}

func relativeTime(unixMs int64, now time.Time) string {
	ts := time.UnixMilli(unixMs)
	elapsed := now.Sub(ts)

	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return pluralize(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return pluralize(int(elapsed.Hours()), "hour")
	case elapsed < 7*24*time.Hour:
		return pluralize(int(elapsed.Hours()/24), "day")
	default:
		return ts.Format("Jan 2, 2006")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
