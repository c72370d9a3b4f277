package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/fitpulse/internal/achievements"
	"github.com/misterclayt0n/fitpulse/internal/models"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

func TestMain(m *testing.M) {
	utils.Loc = time.UTC
	os.Exit(m.Run())
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStorage(t *testing.T) (*Storage, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2025, 2, 7, 18, 30, 0, 0, time.UTC)}
	st, err := Open(context.Background(), ":memory:", WithClock(c.now))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st, c
}

func TestDriverFor(t *testing.T) {
	assert.Equal(t, "libsql", DriverFor("libsql://fit.turso.io?authToken=x"))
	assert.Equal(t, "libsql", DriverFor("http://127.0.0.1:8080"))
	assert.Equal(t, "sqlite3", DriverFor("file:./local.db?cache=shared&mode=rwc"))
	assert.Equal(t, "sqlite3", DriverFor(":memory:"))
}

func TestOpen_EmptyURL(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}

func TestBucketsKV(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStorage(t)

	_, ok, err := st.Get(ctx, BucketAchievements)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Set(ctx, BucketAchievements, []string{"first_workout"}))
	require.NoError(t, st.Set(ctx, BucketAchievements, []string{"first_workout", "10_workouts"}))

	raw, ok, err := st.Get(ctx, BucketAchievements)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["first_workout","10_workouts"]`, string(raw))

	require.NoError(t, st.Set(ctx, BucketSettings, models.DefaultSettings()))
	names, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{BucketAchievements, BucketSettings}, names)

	exists, err := st.BucketExists(ctx, BucketSettings)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, st.Remove(ctx, BucketSettings, "never_written"))
	exists, err = st.BucketExists(ctx, BucketSettings)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProfileAndSettings(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStorage(t)

	_, err := st.Profile(ctx)
	assert.True(t, errors.Is(err, ErrNotFound))

	settings, err := st.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	p := &models.Profile{Name: "Sam", Age: 31, Weight: 70, Height: 175, FitnessGoal: "strength", Experience: "beginner"}
	require.NoError(t, st.SetProfile(ctx, p))
	got, err := st.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	// A partial document keeps the defaults for the missing keys.
	require.NoError(t, st.Set(ctx, BucketSettings, map[string]any{"theme": "dark"}))
	settings, err = st.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, "09:00", settings.ReminderTime)
}

var summary = models.SessionSummary{
	Name:               "Beginner Strength",
	Duration:           20,
	CaloriesBurned:     600,
	Exercises:          []string{"Push-ups", "Squats", "Planks"},
	Difficulty:         models.Beginner,
	CompletedExercises: 3,
	TotalExercises:     3,
	WorkoutType:        models.WorkoutPreset,
}

func TestCompleteWorkout(t *testing.T) {
	ctx := context.Background()
	st, c := newTestStorage(t)

	first, err := st.CompleteWorkout(ctx, summary, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{achievements.FirstWorkout}, first.Unlocked)
	assert.Equal(t, 1, first.TotalWorkouts)
	assert.Equal(t, 1, first.Streak)
	assert.Len(t, first.Entry.ID, 26)

	c.t = c.t.Add(time.Hour)
	second, err := st.CompleteWorkout(ctx, summary, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{achievements.ThousandCalDay}, second.Unlocked)
	assert.Equal(t, models.DailyStats{Workouts: 2, Calories: 1200, Minutes: 40, Exercises: 6}, second.Today)

	history, err := st.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.Entry.ID, history[0].ID)
	assert.True(t, history[0].Date.Equal(c.t))
	if diff := cmp.Diff(summary, history[1].SessionSummary); diff != "" {
		t.Errorf("stored summary mismatch (-want +got):\n%s", diff)
	}

	earned, err := st.Achievements(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{achievements.FirstWorkout, achievements.ThousandCalDay}, earned)

	third, err := st.CompleteWorkout(ctx, summary, 0)
	require.NoError(t, err)
	assert.Empty(t, third.Unlocked, "earned badges are not unlocked again")
}

func TestCompleteWorkout_HistoryLimit(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2025, 2, 7, 8, 0, 0, 0, time.UTC)}
	st, err := Open(ctx, ":memory:", WithClock(c.now), WithHistoryLimit(3))
	require.NoError(t, err)
	defer st.Close()

	var last Completion
	for range 12 {
		last, err = st.CompleteWorkout(ctx, models.SessionSummary{Name: "x"}, 0)
		require.NoError(t, err)
		c.t = c.t.Add(time.Minute)
	}

	history, err := st.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 3)
	assert.Equal(t, 12, last.TotalWorkouts, "the total is not bounded by the history cap")

	earned, err := st.Achievements(ctx)
	require.NoError(t, err)
	assert.Contains(t, earned, achievements.TenWorkouts)
}

func TestCustomWorkouts(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStorage(t)

	_, err := st.SaveCustomWorkout(ctx, models.WorkoutDefinition{Name: "Empty"})
	assert.Error(t, err)

	w, err := st.SaveCustomWorkout(ctx, models.WorkoutDefinition{Name: "Morning", ExerciseIDs: []int{1, 2}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(w.ID, "custom_"))
	assert.True(t, w.IsCustom)
	require.NotNil(t, w.CreatedAt)

	_, err = st.SaveCustomWorkout(ctx, models.WorkoutDefinition{Name: "morning", ExerciseIDs: []int{3}})
	assert.Error(t, err, "names are unique regardless of case")

	ws, err := st.CustomWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, w.ID, ws[0].ID)
	assert.Equal(t, []int{1, 2}, ws[0].ExerciseIDs)

	deleted, err := st.DeleteCustomWorkout(ctx, "Morning")
	require.NoError(t, err)
	assert.Equal(t, w.ID, deleted.ID)

	_, err = st.DeleteCustomWorkout(ctx, w.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	ws, err = st.CustomWorkouts(ctx)
	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src, _ := newTestStorage(t)

	_, err := src.CompleteWorkout(ctx, summary, 0)
	require.NoError(t, err)
	_, err = src.SaveCustomWorkout(ctx, models.WorkoutDefinition{Name: "Legs", ExerciseIDs: []int{2, 3}})
	require.NoError(t, err)

	dump, err := src.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, dump.Buckets, 4)

	// Simulate a trip through a file format.
	data, err := json.Marshal(dump)
	require.NoError(t, err)
	var decoded Dump
	require.NoError(t, json.Unmarshal(data, &decoded))

	dst, _ := newTestStorage(t)
	require.NoError(t, dst.Set(ctx, BucketProfile, &models.Profile{Name: "stale"}))
	require.NoError(t, dst.Import(ctx, &decoded))

	_, err = dst.Profile(ctx)
	assert.ErrorIs(t, err, ErrNotFound, "import replaces everything")

	want, err := src.History(ctx)
	require.NoError(t, err)
	got, err := dst.History(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	ws, err := dst.CustomWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "Legs", ws[0].Name)
}

func TestImport_RejectsBadDumps(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStorage(t)
	require.NoError(t, st.Set(ctx, BucketAchievements, []string{"first_workout"}))

	err := st.Import(ctx, &Dump{Buckets: map[string]any{"secrets": 1}})
	assert.Error(t, err)

	err = st.Import(ctx, &Dump{Buckets: map[string]any{BucketAchievements: "not a list"}})
	assert.Error(t, err)

	earned, err := st.Achievements(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"first_workout"}, earned, "a refused import writes nothing")
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStorage(t)
	_, err := st.CompleteWorkout(ctx, summary, 0)
	require.NoError(t, err)

	require.NoError(t, st.ClearAll(ctx))

	names, err := st.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
	history, err := st.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
	daily, err := st.DailyStats(ctx)
	require.NoError(t, err)
	assert.Empty(t, daily)
}
