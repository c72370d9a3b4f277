// Package summary derives the durable record of a finished workout attempt.
package summary

import (
	"fmt"
	"math"

	"github.com/misterclayt0n/fitpulse/internal/models"
	"github.com/misterclayt0n/fitpulse/internal/session"
)

// DefaultCaloriesPerMinute applies when a workout carries no calorie estimate.
const DefaultCaloriesPerMinute = 8.0

// PlannedMinutes is the nominal length the calorie estimates of workouts refer to.
const PlannedMinutes = 30

// CaloriesPerMinute returns the burn rate for w.
func CaloriesPerMinute(w models.WorkoutDefinition) float64 {
	if w.EstimatedCalories > 0 {
		return float64(w.EstimatedCalories) / PlannedMinutes
	}
	return DefaultCaloriesPerMinute
}

// Summarize builds the SessionSummary of a completed session. Calories follow
// the actual elapsed minutes, not the workout's nominal duration.
func Summarize(state session.State, w models.WorkoutDefinition) (models.SessionSummary, error) {
	if state.Phase != session.Complete {
		return models.SessionSummary{}, fmt.Errorf("summarize while %s: %w", state.Phase, session.ErrInvalidState)
	}

	minutes := state.ElapsedSeconds / 60
	names := make([]string, len(state.Exercises))
	for i, e := range state.Exercises {
		names[i] = e.Name
	}

	return models.SessionSummary{
		Name:               w.Name,
		Duration:           minutes,
		CaloriesBurned:     int(math.Round(float64(minutes) * CaloriesPerMinute(w))),
		Exercises:          names,
		Difficulty:         w.Difficulty,
		CompletedExercises: len(state.CompletedIndices),
		TotalExercises:     len(state.Exercises),
		WorkoutType:        w.Type(),
	}, nil
}
