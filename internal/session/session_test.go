package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/fitpulse/internal/models"
)

func exercises(rests ...int) []models.ExerciseDefinition {
	out := make([]models.ExerciseDefinition, len(rests))
	for i, r := range rests {
		out[i] = models.ExerciseDefinition{ID: i + 1, Name: "ex", Sets: 3, Reps: models.RepCount(10), Rest: r}
	}
	return out
}

func started(t *testing.T, rests ...int) *Session {
	t.Helper()
	s, err := New(exercises(rests...))
	require.NoError(t, err)
	require.NoError(t, s.Start())
	return s
}

func ticks(s *Session, n int) {
	for range n {
		s.Tick()
	}
}

func TestNew_EmptyWorkout(t *testing.T) {
	s, err := New(nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrEmptyWorkout)
}

func TestStart(t *testing.T) {
	at := time.Date(2025, 2, 7, 9, 0, 0, 0, time.UTC)
	s, err := New(exercises(60, 90), WithClock(func() time.Time { return at }))
	require.NoError(t, err)
	assert.Equal(t, NotStarted, s.Phase())

	require.NoError(t, s.Start())

	st := s.Snapshot()
	assert.Equal(t, Active, st.Phase)
	assert.Equal(t, 0, st.ElapsedSeconds)
	assert.Equal(t, 0, st.CurrentIndex)
	assert.Equal(t, at, st.StartedAt)

	assert.ErrorIs(t, s.Start(), ErrInvalidState, "starting twice must be refused")
}

func TestTick_IgnoredBeforeStart(t *testing.T) {
	s, err := New(exercises(60))
	require.NoError(t, err)
	ticks(s, 5)
	assert.Equal(t, 0, s.ElapsedSeconds())
	assert.Equal(t, NotStarted, s.Phase())
}

func TestTick_ElapsedFrozenWhileResting(t *testing.T) {
	s := started(t, 10, 10, 10)
	ticks(s, 7)
	require.NoError(t, s.Advance())
	ticks(s, 4) // Resting.
	assert.Equal(t, 7, s.ElapsedSeconds())
	assert.Equal(t, 6, s.RestRemainingSeconds())

	ticks(s, 6) // Drains the rest.
	assert.Equal(t, Active, s.Phase())
	ticks(s, 3)
	assert.Equal(t, 10, s.ElapsedSeconds())
}

func TestExampleScenario(t *testing.T) {
	s := started(t, 60, 90)

	require.NoError(t, s.Advance())
	assert.Equal(t, Resting, s.Phase())
	assert.Equal(t, 60, s.RestRemainingSeconds())
	assert.Equal(t, 1, s.CurrentIndex())

	ticks(s, 60)
	assert.Equal(t, Active, s.Phase())
	assert.Equal(t, 0, s.RestRemainingSeconds())

	require.NoError(t, s.Advance())
	st := s.Snapshot()
	assert.Equal(t, Complete, st.Phase)
	assert.Equal(t, []int{0, 1}, st.CompletedIndices)
	assert.Equal(t, 1, st.CurrentIndex)
}

func TestAdvance_LastExerciseCompletesWithoutRest(t *testing.T) {
	var seen []Transition
	s, err := New(exercises(300), WithObserver(func(tr Transition) { seen = append(seen, tr) }))
	require.NoError(t, err)
	require.NoError(t, s.Start())

	require.NoError(t, s.Advance())

	assert.Equal(t, Complete, s.Phase())
	assert.Equal(t, 0, s.RestRemainingSeconds())
	require.Len(t, seen, 2)
	assert.Equal(t, Transition{From: Active, To: Complete, Index: 0, At: seen[1].At}, seen[1])
	for _, tr := range seen {
		assert.NotEqual(t, Resting, tr.To)
	}
}

func TestAdvance_RestDefaults(t *testing.T) {
	tests := []struct {
		name string
		rest int
		want int
	}{
		{name: "configured", rest: 45, want: 45},
		{name: "zero", rest: 0, want: DefaultRestSeconds},
		{name: "negative", rest: -5, want: DefaultRestSeconds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := started(t, tt.rest, 90)
			require.NoError(t, s.Advance())
			assert.Equal(t, tt.want, s.RestRemainingSeconds())
			assert.Equal(t, 1, s.CurrentIndex())
		})
	}
}

func TestAdvance_IdempotentCompletion(t *testing.T) {
	s := started(t, 10, 10, 10)
	require.NoError(t, s.Advance())
	require.NoError(t, s.SkipRest())
	require.NoError(t, s.GoToPrevious())
	require.NoError(t, s.Advance())
	require.NoError(t, s.SkipRest())

	assert.Equal(t, []int{0}, s.Snapshot().CompletedIndices)
	assert.Equal(t, 1, s.CompletedCount())
}

func TestAdvance_RefusedWhileResting(t *testing.T) {
	s := started(t, 10, 10)
	require.NoError(t, s.Advance())
	assert.ErrorIs(t, s.Advance(), ErrInvalidState)
}

func TestSkipRest(t *testing.T) {
	s := started(t, 30, 30)
	assert.ErrorIs(t, s.SkipRest(), ErrInvalidState, "not resting yet")

	require.NoError(t, s.Advance())
	require.NoError(t, s.SkipRest())

	assert.Equal(t, Active, s.Phase())
	assert.Equal(t, 0, s.RestRemainingSeconds())
	assert.False(t, s.IsCompleted(1), "the exercise rested into is not done yet")
}

func TestGoToPrevious(t *testing.T) {
	s := started(t, 10, 10, 10)
	assert.ErrorIs(t, s.GoToPrevious(), ErrInvalidState, "already at the first exercise")

	require.NoError(t, s.Advance())
	assert.ErrorIs(t, s.GoToPrevious(), ErrInvalidState, "not allowed while resting")

	require.NoError(t, s.SkipRest())
	ticks(s, 3)
	require.NoError(t, s.GoToPrevious())

	assert.Equal(t, 0, s.CurrentIndex())
	assert.True(t, s.IsCompleted(0))
	assert.Equal(t, 3, s.ElapsedSeconds())
}

func TestFinish(t *testing.T) {
	unstarted, err := New(exercises(10))
	require.NoError(t, err)
	assert.ErrorIs(t, unstarted.Finish(), ErrInvalidState)

	s := started(t, 10, 10, 10)
	require.NoError(t, s.Advance())
	require.NoError(t, s.Finish())

	st := s.Snapshot()
	assert.Equal(t, Complete, st.Phase)
	assert.Equal(t, 0, st.RestRemainingSeconds)
	assert.False(t, st.CompletedAt.IsZero())
	assert.Equal(t, []int{0}, st.CompletedIndices)
}

func TestComplete_IsTerminal(t *testing.T) {
	s := started(t, 10)
	require.NoError(t, s.Advance())
	before := s.Snapshot()

	ticks(s, 10)
	for _, op := range []func() error{s.Start, s.Advance, s.SkipRest, s.GoToPrevious, s.Finish} {
		err := op()
		assert.True(t, errors.Is(err, ErrInvalidState))
	}

	assert.Equal(t, before, s.Snapshot())
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := started(t, 10, 10)
	st := s.Snapshot()
	st.Exercises[0].Name = "changed"
	assert.Equal(t, "ex", s.Current().Name)
}

func TestProgress(t *testing.T) {
	s := started(t, 10, 10, 10, 10)
	assert.InDelta(t, 0.25, s.Progress(), 1e-9)
	require.NoError(t, s.Advance())
	assert.InDelta(t, 0.5, s.Progress(), 1e-9)
}
