// Package stats folds finished sessions into the workout history and daily
// totals and derives streaks and period statistics from them.
//
// Every function is a pure function of its inputs; slices and maps passed in
// are never modified, so a caller can retry a whole read-modify-write cycle.
package stats

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/misterclayt0n/fitpulse/internal/models"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

const (
	// HistoryLimit caps the retained history. The oldest entries go first.
	HistoryLimit = 100

	DefaultLookbackDays = 30
)

type Period string

const (
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case Week, Month, Year:
		return p, nil
	default:
		return "", fmt.Errorf("unknown period %q (want week, month or year)", s)
	}
}

// Since returns the earliest instant included in the period ending at now.
func (p Period) Since(now time.Time) time.Time {
	switch p {
	case Month:
		return now.AddDate(0, -1, 0)
	case Year:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// RecordSession prepends s to history with the given id and timestamp and adds
// it to the totals of now's calendar day. History is capped at limit entries
// (HistoryLimit when limit <= 0).
func RecordSession(s models.SessionSummary, history []models.HistoryEntry, daily models.DailyStatsByDay, now time.Time, id string, limit int) ([]models.HistoryEntry, models.DailyStatsByDay) {
	if limit <= 0 {
		limit = HistoryLimit
	}

	entry := models.HistoryEntry{ID: id, Date: now, SessionSummary: s}
	entry.Exercises = slices.Clone(s.Exercises)

	n := min(len(history)+1, limit)
	newHistory := make([]models.HistoryEntry, 0, n)
	newHistory = append(newHistory, entry)
	newHistory = append(newHistory, history[:n-1]...)

	newDaily := make(models.DailyStatsByDay, len(daily)+1)
	for k, v := range daily {
		newDaily[k] = v
	}
	key := utils.DayKey(now)
	newDaily[key] = newDaily[key].Add(models.DailyStats{
		Workouts:  1,
		Calories:  s.CaloriesBurned,
		Minutes:   s.Duration,
		Exercises: s.TotalExercises,
	})

	return newHistory, newDaily
}

// TodayStats returns the totals of now's calendar day, zeroed when absent.
func TodayStats(daily models.DailyStatsByDay, now time.Time) models.DailyStats {
	return daily[utils.DayKey(now)]
}

// WorkoutDays returns the set of calendar days with at least one history entry.
func WorkoutDays(history []models.HistoryEntry) map[string]bool {
	days := make(map[string]bool, len(history))
	for _, h := range history {
		days[utils.DayKey(h.Date)] = true
	}
	return days
}

// ComputeStreak counts consecutive workout days walking back from ref. The
// reference day itself may be empty without breaking the streak. At most
// lookbackDays days are inspected (DefaultLookbackDays when <= 0).
func ComputeStreak(history []models.HistoryEntry, ref time.Time, lookbackDays int) int {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	days := WorkoutDays(history)
	day := utils.StartOfDay(ref)
	streak := 0
	for i := range lookbackDays {
		if days[utils.DayKey(day)] {
			streak++
		} else if i > 0 {
			break
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// ComputePeriodStats aggregates the entries dated on or after p.Since(now).
// The best day is the most frequent weekday; ties go to the earliest weekday
// counting from Monday.
func ComputePeriodStats(history []models.HistoryEntry, p Period, now time.Time) models.PeriodStats {
	since := p.Since(now)

	var out models.PeriodStats
	var perWeekday [7]int
	for _, h := range history {
		if h.Date.Before(since) {
			continue
		}
		out.Workouts++
		out.TotalTime += h.Duration
		out.Calories += h.CaloriesBurned
		perWeekday[h.Date.In(utils.Loc).Weekday()]++
	}

	if out.Workouts == 0 {
		return out
	}
	out.AvgDuration = int(math.Round(float64(out.TotalTime) / float64(out.Workouts)))

	best := 0
	for i := range 7 {
		wd := time.Weekday((i + 1) % 7) // Monday first, Sunday last.
		if perWeekday[wd] > best {
			best = perWeekday[wd]
			out.BestDay = wd
			out.HasBestDay = true
		}
	}
	return out
}
