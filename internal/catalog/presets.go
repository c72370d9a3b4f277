package catalog

import (
	"fmt"

	"github.com/misterclayt0n/fitpulse/internal/models"
)

var presets = []models.WorkoutDefinition{
	{
		ID: "beginner_1", Name: "Beginner Strength", Duration: "20 min",
		Difficulty: models.Beginner, Category: models.CategoryStrength,
		ExerciseIDs: []int{1, 2, 11}, EstimatedCalories: 150,
	},
	{
		ID: "beginner_2", Name: "Beginner Cardio", Duration: "15 min",
		Difficulty: models.Beginner, Category: models.CategoryCardio,
		ExerciseIDs: []int{6, 7}, EstimatedCalories: 120,
	},
	{
		ID: "intermediate_1", Name: "Full Body HIIT", Duration: "30 min",
		Difficulty: models.Intermediate, Category: models.CategoryHIIT,
		ExerciseIDs: []int{16, 17, 9}, EstimatedCalories: 250,
	},
	{
		ID: "intermediate_2", Name: "Strength Circuit", Duration: "35 min",
		Difficulty: models.Intermediate, Category: models.CategoryStrength,
		ExerciseIDs: []int{1, 2, 3, 9}, EstimatedCalories: 220,
	},
	{
		ID: "advanced_1", Name: "Elite HIIT", Duration: "45 min",
		Difficulty: models.Advanced, Category: models.CategoryHIIT,
		ExerciseIDs: []int{15, 8, 18}, EstimatedCalories: 400,
	},
	{
		ID: "advanced_2", Name: "Strength Master", Duration: "50 min",
		Difficulty: models.Advanced, Category: models.CategoryStrength,
		ExerciseIDs: []int{4, 5, 8, 3}, EstimatedCalories: 350,
	},
}

// Presets returns the compiled-in workouts, beginner first.
func Presets() []models.WorkoutDefinition {
	out := make([]models.WorkoutDefinition, len(presets))
	for i, p := range presets {
		p.ExerciseIDs = append([]int(nil), p.ExerciseIDs...)
		out[i] = p
	}
	return out
}

func PresetByID(id string) (models.WorkoutDefinition, bool) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, true
		}
	}
	return models.WorkoutDefinition{}, false
}

// FindWorkout looks id up among the presets first, then the given custom workouts.
func FindWorkout(id string, custom []models.WorkoutDefinition) (models.WorkoutDefinition, error) {
	if p, ok := PresetByID(id); ok {
		return p, nil
	}
	for _, w := range custom {
		if w.ID == id {
			return w, nil
		}
	}
	return models.WorkoutDefinition{}, fmt.Errorf("%w: %s", ErrUnknownWorkout, id)
}
