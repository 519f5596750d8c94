// Package normalize converts the heterogeneous duration and price shapes
// observed across upstream providers into canonical values.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
)

// isoDurationRegex matches ISO-8601-like durations such as "PT4H30M",
// "PT45M", or "PT2H". Either component may be absent.
var isoDurationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?`)

// ParseDuration converts a "PT<hours>H<minutes>M" duration to total minutes.
// Any non-matching input yields 0, not an error. Already-humanized strings
// like "4h 30m" therefore parse to 0; callers keep the raw string for display
// instead of round-tripping it through this parser.
func ParseDuration(raw string) int {
	m := isoDurationRegex.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	return hours*60 + minutes
}

// FormatMinutes renders total minutes as a human-readable duration.
func FormatMinutes(total int) string {
	hours := total / 60
	mins := total % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// SecondsToFormatted renders a duration in seconds as "Xh Ym".
func SecondsToFormatted(seconds int) string {
	return FormatMinutes(seconds / 60)
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
