// Package catalog holds the compiled-in exercise database and preset workouts
// and resolves workout definitions into concrete exercise sequences.
package catalog

import (
	"errors"
	"slices"

	"github.com/misterclayt0n/fitpulse/internal/models"
)

var ErrUnknownWorkout = errors.New("unknown workout")

// Categories lists the catalog categories in display order.
var Categories = []models.Category{
	models.CategoryStrength,
	models.CategoryCardio,
	models.CategoryFlexibility,
	models.CategoryHIIT,
}

func ex(id int, name string, sets int, reps models.Reps, rest int, d models.Difficulty, muscle string, c models.Category) models.ExerciseDefinition {
	return models.ExerciseDefinition{
		ID: id, Name: name, Sets: sets, Reps: reps, Rest: rest,
		Difficulty: d, Muscle: muscle, Category: c,
	}
}

var database = map[models.Category][]models.ExerciseDefinition{
	models.CategoryStrength: {
		ex(1, "Push-ups", 3, models.RepCount(12), 60, models.Beginner, "Chest, Arms", models.CategoryStrength),
		ex(2, "Squats", 3, models.RepCount(15), 60, models.Beginner, "Legs, Glutes", models.CategoryStrength),
		ex(3, "Lunges", 3, models.RepCount(10), 60, models.Intermediate, "Legs, Glutes", models.CategoryStrength),
		ex(4, "Pull-ups", 3, models.RepCount(8), 90, models.Advanced, "Back, Arms", models.CategoryStrength),
		ex(5, "Deadlifts", 3, models.RepCount(8), 120, models.Advanced, "Full Body", models.CategoryStrength),
	},
	models.CategoryCardio: {
		ex(6, "Jumping Jacks", 3, models.RepCount(30), 45, models.Beginner, "Full Body", models.CategoryCardio),
		ex(7, "High Knees", 3, models.RepCount(20), 45, models.Beginner, "Legs, Core", models.CategoryCardio),
		ex(8, "Burpees", 3, models.RepCount(8), 90, models.Advanced, "Full Body", models.CategoryCardio),
		ex(9, "Mountain Climbers", 3, models.RepCount(20), 60, models.Intermediate, "Core, Arms", models.CategoryCardio),
		ex(10, "Jump Rope", 3, models.RepLabel("1 min"), 60, models.Intermediate, "Full Body", models.CategoryCardio),
	},
	models.CategoryFlexibility: {
		ex(11, "Planks", 3, models.RepLabel("30 sec"), 60, models.Beginner, "Core", models.CategoryFlexibility),
		ex(12, "Child Pose", 3, models.RepLabel("30 sec"), 30, models.Beginner, "Back, Hips", models.CategoryFlexibility),
		ex(13, "Downward Dog", 3, models.RepLabel("30 sec"), 30, models.Beginner, "Full Body", models.CategoryFlexibility),
		ex(14, "Warrior Pose", 3, models.RepLabel("45 sec"), 45, models.Intermediate, "Legs, Core", models.CategoryFlexibility),
	},
	models.CategoryHIIT: {
		ex(15, "Sprint Intervals", 5, models.RepLabel("30 sec"), 30, models.Advanced, "Legs, Cardio", models.CategoryHIIT),
		ex(16, "Plank Jacks", 4, models.RepCount(15), 45, models.Intermediate, "Core, Full Body", models.CategoryHIIT),
		ex(17, "Squat Jumps", 4, models.RepCount(12), 60, models.Intermediate, "Legs, Glutes", models.CategoryHIIT),
		ex(18, "Bear Crawl", 3, models.RepLabel("20 steps"), 90, models.Advanced, "Full Body", models.CategoryHIIT),
	},
}

// LookupByID scans the category tables for id. Absent ids are an expected
// condition (stale references in saved workouts), hence the bool.
func LookupByID(id int) (models.ExerciseDefinition, bool) {
	for _, c := range Categories {
		for _, e := range database[c] {
			if e.ID == id {
				return e, true
			}
		}
	}
	return models.ExerciseDefinition{}, false
}

// ByCategory returns a copy of the exercises in category c.
func ByCategory(c models.Category) []models.ExerciseDefinition {
	return slices.Clone(database[c])
}

// Exercises returns every catalog exercise, ordered by category then id.
func Exercises() []models.ExerciseDefinition {
	var all []models.ExerciseDefinition
	for _, c := range Categories {
		all = append(all, database[c]...)
	}
	return all
}

// Resolve turns a workout definition into its exercise sequence. Inlined
// records are returned as is; ids are looked up and unknown ids dropped.
// A definition with neither yields an empty sequence.
func Resolve(w models.WorkoutDefinition) []models.ExerciseDefinition {
	if len(w.Exercises) > 0 {
		return slices.Clone(w.Exercises)
	}

	resolved := make([]models.ExerciseDefinition, 0, len(w.ExerciseIDs))
	for _, id := range w.ExerciseIDs {
		if e, ok := LookupByID(id); ok {
			resolved = append(resolved, e)
		}
	}
	return resolved
}
