package models

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepsJSON(t *testing.T) {
	data, err := json.Marshal([]Reps{RepCount(12), RepLabel("30 sec")})
	require.NoError(t, err)
	assert.JSONEq(t, `[12, "30 sec"]`, string(data))

	var got []Reps
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []Reps{RepCount(12), RepLabel("30 sec")}, got)

	var bad Reps
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &bad))
}

func TestRepsTOML(t *testing.T) {
	var doc struct {
		Exercise []ExerciseDefinition `toml:"exercise"`
	}
	_, err := toml.Decode(`
[[exercise]]
id = 100
name = "Wall Sit"
reps = "45 sec"

[[exercise]]
id = 101
name = "Dips"
reps = 10
`, &doc)
	require.NoError(t, err)
	require.Len(t, doc.Exercise, 2)
	assert.True(t, doc.Exercise[0].Reps.IsTimed())
	assert.Equal(t, "45 sec", doc.Exercise[0].Reps.String())
	assert.Equal(t, RepCount(10), doc.Exercise[1].Reps)
}

func TestWorkoutDefinition_LegacyExerciseIDs(t *testing.T) {
	var w WorkoutDefinition
	require.NoError(t, json.Unmarshal([]byte(`{"id":"custom_1","name":"Mine","exercises":[1,2,11],"isCustom":true}`), &w))
	assert.Equal(t, []int{1, 2, 11}, w.ExerciseIDs)
	assert.Empty(t, w.Exercises)
	assert.Equal(t, WorkoutCustom, w.Type())
}

func TestWorkoutDefinition_InlinedExercises(t *testing.T) {
	in := WorkoutDefinition{
		ID:        "custom_2",
		Name:      "Inline",
		Exercises: []ExerciseDefinition{{ID: 7, Name: "High Knees", Sets: 3, Reps: RepCount(20), Rest: 45}},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out WorkoutDefinition
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
	assert.Equal(t, WorkoutPreset, out.Type())
}

func TestDailyStatsAdd(t *testing.T) {
	got := DailyStats{Workouts: 1, Calories: 100}.Add(DailyStats{Workouts: 1, Calories: 50, Minutes: 10, Exercises: 3})
	assert.Equal(t, DailyStats{Workouts: 2, Calories: 150, Minutes: 10, Exercises: 3}, got)
}

func TestProfileIsComplete(t *testing.T) {
	var missing *Profile
	assert.False(t, missing.IsComplete())

	p := &Profile{Name: "Sam", Age: 30, Weight: 70, Height: 175, FitnessGoal: "endurance", Experience: "beginner"}
	assert.True(t, p.IsComplete())

	p.Name = "  "
	assert.False(t, p.IsComplete())
}
