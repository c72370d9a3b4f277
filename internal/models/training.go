package models

import "time"

type WorkoutType string

const (
	WorkoutCustom WorkoutType = "custom"
	WorkoutPreset WorkoutType = "preset"
)

// SessionSummary is the derived, immutable record of one finished workout attempt.
type SessionSummary struct {
	Name               string      `json:"name"`
	Duration           int         `json:"duration"` // Whole minutes.
	CaloriesBurned     int         `json:"caloriesBurned"`
	Exercises          []string    `json:"exercises"` // Catalog order, not completion order.
	Difficulty         Difficulty  `json:"difficulty"`
	CompletedExercises int         `json:"completedExercises"`
	TotalExercises     int         `json:"totalExercises"`
	WorkoutType        WorkoutType `json:"workoutType"`
}

// HistoryEntry is a SessionSummary as stored in the workout history log.
type HistoryEntry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	SessionSummary
}

// DailyStats accumulates totals for one calendar day.
type DailyStats struct {
	Workouts  int `json:"workouts"`
	Calories  int `json:"calories"`
	Minutes   int `json:"minutes"`
	Exercises int `json:"exercises"`
}

func (d DailyStats) Add(o DailyStats) DailyStats {
	return DailyStats{
		Workouts:  d.Workouts + o.Workouts,
		Calories:  d.Calories + o.Calories,
		Minutes:   d.Minutes + o.Minutes,
		Exercises: d.Exercises + o.Exercises,
	}
}

// DailyStatsByDay is keyed by the local date string (see utils.DayKey).
type DailyStatsByDay map[string]DailyStats

type PeriodStats struct {
	Workouts    int          `json:"workouts"`
	TotalTime   int          `json:"totalTime"` // Minutes.
	Calories    int          `json:"calories"`
	AvgDuration int          `json:"avgDuration"`
	BestDay     time.Weekday `json:"bestDay"`
	HasBestDay  bool         `json:"hasBestDay"`
}
