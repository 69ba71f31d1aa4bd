package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned when a reminder time is not in "HH:MM" form.
var ErrInvalidTime = errors.New("invalid reminder time")

// TimeOfDay is a daily wall-clock time. Seconds are always zero.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTimeOfDay parses a 24-hour "HH:MM" value such as the one carried by
// data-reminder-time. Values are not range checked; out-of-range parts roll
// over the same way time.Date normalizes them.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: hours %q", ErrInvalidTime, hh)
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: minutes %q", ErrInvalidTime, mm)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// Next returns the next occurrence of t at or after now, in now's location.
// A target equal to now is not in the past and is returned as is.
func Next(now time.Time, t TimeOfDay) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
	if target.Before(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// Remaining returns the non-negative duration from now until Next(now, t).
func Remaining(now time.Time, t TimeOfDay) time.Duration {
	return Next(now, t).Sub(now)
}

// Format renders d as "{H}h {M}m remaining". Partial minutes are truncated.
func Format(d time.Duration) string {
	hours := int64(d / time.Hour)
	minutes := int64(d/time.Minute) % 60
	return fmt.Sprintf("%dh %dm remaining", hours, minutes)
}

// Text is Format(Remaining(now, t)).
func Text(now time.Time, t TimeOfDay) string {
	return Format(Remaining(now, t))
}
