package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/fitpulse/internal/models"
)

func TestEvaluate_FirstWorkout(t *testing.T) {
	got := Evaluate(models.DailyStats{Workouts: 1, Calories: 150}, 1, nil)
	assert.Equal(t, NewSet(FirstWorkout), got)
}

func TestEvaluate_AllRulesCanFireTogether(t *testing.T) {
	got := Evaluate(models.DailyStats{Calories: 1000}, 10, NewSet())
	assert.Equal(t, []string{TenWorkouts, ThousandCalDay}, got.IDs())
}

func TestEvaluate_NeverReturnsEarned(t *testing.T) {
	earned := NewSet(FirstWorkout, ThousandCalDay)
	got := Evaluate(models.DailyStats{Calories: 5000}, 1, earned)
	assert.Empty(t, got)
	assert.Len(t, earned, 2, "earned set must not be modified")
}

func TestEvaluate_Thresholds(t *testing.T) {
	assert.Empty(t, Evaluate(models.DailyStats{Calories: 999}, 2, nil))
	assert.Empty(t, Evaluate(models.DailyStats{}, 11, nil), "10_workouts fires on the tenth workout only")
}

func TestEvaluateWithStreak(t *testing.T) {
	assert.Empty(t, EvaluateWithStreak(models.DailyStats{}, 3, 6, nil))
	assert.Equal(t, NewSet(ConsistencyWeek), EvaluateWithStreak(models.DailyStats{}, 3, 7, nil))
	assert.Equal(t, NewSet(ThirtyDayStreak), EvaluateWithStreak(models.DailyStats{}, 40, 30, NewSet(ConsistencyWeek)))
}

func TestMerge(t *testing.T) {
	earned := []string{ThousandCalDay}
	got := Merge(earned, NewSet(FirstWorkout, ThousandCalDay, "mystery"))
	assert.Equal(t, []string{ThousandCalDay, FirstWorkout, "mystery"}, got)
	assert.Equal(t, []string{ThousandCalDay}, earned)
}

func TestLookup(t *testing.T) {
	b, ok := Lookup(ConsistencyWeek)
	require.True(t, ok)
	assert.Equal(t, "7 Day Streak", b.Title)

	_, ok = Lookup("nope")
	assert.False(t, ok)
	assert.Len(t, Badges(), 5)
}
