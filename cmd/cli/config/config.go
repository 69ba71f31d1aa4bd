package config

import (
	"fmt"
	"os"
	"time"

	"github.com/crucial707/habit-countdown/internal/countdown"
)

const defaultHostURL = "http://localhost:8080"

// HostURL returns the base URL of a running countdown web host.
// It can be overridden with the HABIT_COUNTDOWN_URL environment variable.
func HostURL() string {
	if v := os.Getenv("HABIT_COUNTDOWN_URL"); v != "" {
		return v
	}
	return defaultHostURL
}

// Now returns the current local time, or today at the given "HH:MM" when at is set.
func Now(at string) (time.Time, error) {
	now := time.Now()
	if at == "" {
		return now, nil
	}
	tod, err := countdown.ParseTimeOfDay(at)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at: %w", err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), tod.Hour, tod.Minute, 0, 0, now.Location()), nil
}
