package cmd

import "time"

func durationMinutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

// parseFlagTimestamp parses a CLI-supplied instant, accepting both
// offset-bearing and naive ISO-8601 forms.
func parseFlagTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
