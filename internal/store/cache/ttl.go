package cache

import (
	"fmt"
	"time"
)

// TTL bounds.
const (
	// MinTTLSeconds is the minimum allowed TTL (1 minute).
	MinTTLSeconds = 60

	// MaxTTLSeconds is the maximum allowed TTL (7 days).
	MaxTTLSeconds = 604800

	minutesPerHour = 60
	hoursPerDay    = 24
)

// ErrInvalidTTL reports a TTL outside the allowed range.
var ErrInvalidTTL = fmt.Errorf("TTL must be between %d and %d seconds", MinTTLSeconds, MaxTTLSeconds)

// ValidateTTL checks a positive TTL against the allowed range. Zero means
// caching is disabled and is always accepted.
func ValidateTTL(seconds int) error {
	if seconds == 0 {
		return nil
	}
	if seconds < MinTTLSeconds || seconds > MaxTTLSeconds {
		return fmt.Errorf("%w: got %d", ErrInvalidTTL, seconds)
	}
	return nil
}

// FormatDuration formats a duration in a human-readable way.
// Examples: "45s", "30m", "1h30m", "2d3h".
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	if d < hoursPerDay*time.Hour {
		hours := int(d.Hours())
		minutes := int(d.Minutes()) % minutesPerHour
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	days := int(d.Hours()) / hoursPerDay
	hours := int(d.Hours()) % hoursPerDay
	if hours == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd%dh", days, hours)
}
