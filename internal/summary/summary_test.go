package summary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/fitpulse/internal/catalog"
	"github.com/misterclayt0n/fitpulse/internal/models"
	"github.com/misterclayt0n/fitpulse/internal/session"
)

func completeState(elapsed int, names ...string) session.State {
	st := session.State{Phase: session.Complete, ElapsedSeconds: elapsed}
	for i, n := range names {
		st.Exercises = append(st.Exercises, models.ExerciseDefinition{ID: i + 1, Name: n})
	}
	return st
}

func TestSummarize_RefusesUnfinishedSession(t *testing.T) {
	for _, p := range []session.Phase{session.NotStarted, session.Active, session.Resting} {
		_, err := Summarize(session.State{Phase: p}, models.WorkoutDefinition{})
		assert.ErrorIs(t, err, session.ErrInvalidState, p.String())
	}
}

func TestSummarize(t *testing.T) {
	st := completeState(125, "Push-ups", "Squats", "Planks")
	st.CompletedIndices = []int{0, 2}
	w := models.WorkoutDefinition{Name: "Beginner Strength", Difficulty: models.Beginner, EstimatedCalories: 240}

	got, err := Summarize(st, w)
	require.NoError(t, err)

	want := models.SessionSummary{
		Name:               "Beginner Strength",
		Duration:           2,
		CaloriesBurned:     16,
		Exercises:          []string{"Push-ups", "Squats", "Planks"},
		Difficulty:         models.Beginner,
		CompletedExercises: 2,
		TotalExercises:     3,
		WorkoutType:        models.WorkoutPreset,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_Calories(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   int
		estimated int
		want      int
	}{
		{name: "default rate", elapsed: 600, want: 80},
		{name: "under a minute", elapsed: 59, estimated: 400, want: 0},
		{name: "rounds half up", elapsed: 180, estimated: 15, want: 2},
		{name: "overrun", elapsed: 60 * 45, estimated: 150, want: 225},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(completeState(tt.elapsed, "a"), models.WorkoutDefinition{EstimatedCalories: tt.estimated})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.CaloriesBurned)
		})
	}
}

func TestSummarize_CustomWorkoutType(t *testing.T) {
	got, err := Summarize(completeState(60, "a"), models.WorkoutDefinition{IsCustom: true})
	require.NoError(t, err)
	assert.Equal(t, models.WorkoutCustom, got.WorkoutType)
}

func TestSummarize_FromSession(t *testing.T) {
	w, ok := catalog.PresetByID("beginner_2")
	require.True(t, ok)

	s, err := session.New(catalog.Resolve(w))
	require.NoError(t, err)
	require.NoError(t, s.Start())
	for range 61 {
		s.Tick()
	}
	require.NoError(t, s.Finish())

	got, err := Summarize(s.Snapshot(), w)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Duration)
	assert.Equal(t, 4, got.CaloriesBurned)
	assert.Equal(t, []string{"Jumping Jacks", "High Knees"}, got.Exercises)
	assert.Equal(t, 0, got.CompletedExercises)
	assert.Equal(t, 2, got.TotalExercises)
}
