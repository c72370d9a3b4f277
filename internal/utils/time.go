package utils

import (
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

// Loc is the location calendar days are computed in. It defaults to the
// machine's local time and is replaced from the config at startup.
var Loc = time.Local

func SetLocation(name string) error {
	if name == "" || name == "Local" {
		Loc = time.Local
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load location %q: %w", name, err)
	}
	Loc = loc
	return nil
}

// DayKey returns the local calendar date of t, e.g. "2025-02-07".
func DayKey(t time.Time) string {
	return t.In(Loc).Format(DayLayout)
}

// StartOfDay returns local midnight of the day t falls on.
func StartOfDay(t time.Time) time.Time {
	l := t.In(Loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, Loc)
}

// FormatLocal returns the provided time formatted in the configured location.
func FormatLocal(t time.Time) string {
	return t.In(Loc).Format(time.RFC1123)
}

// FormatClock renders seconds as mm:ss, or h:mm:ss past the hour.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, (seconds%3600)/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatMinutes renders a minute total as "1h 5m" or "45m".
func FormatMinutes(minutes int) string {
	h, m := minutes/60, minutes%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
