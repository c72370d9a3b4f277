package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// WorkoutDefinition is either a compiled-in preset or a user authored custom workout.
// A definition carries exercise ids, fully inlined exercise records, or neither.
type WorkoutDefinition struct {
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	Duration          string               `json:"duration"` // Human readable label, e.g. "20 min".
	Difficulty        Difficulty           `json:"difficulty"`
	Category          Category             `json:"category,omitempty"`
	ExerciseIDs       []int                `json:"exerciseIds,omitempty"`
	Exercises         []ExerciseDefinition `json:"exercises,omitempty"`
	EstimatedCalories int                  `json:"estimatedCalories,omitempty"` // Zero means no estimate.
	IsCustom          bool                 `json:"isCustom"`
	CreatedAt         *time.Time           `json:"createdAt,omitempty"`
}

// UnmarshalJSON also accepts the older layout where "exercises" holds plain ids.
func (w *WorkoutDefinition) UnmarshalJSON(data []byte) error {
	type plain WorkoutDefinition
	var aux struct {
		plain
		Exercises json.RawMessage `json:"exercises,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*w = WorkoutDefinition(aux.plain)
	w.Exercises = nil

	if len(aux.Exercises) == 0 || string(aux.Exercises) == "null" {
		return nil
	}

	var ids []int
	if err := json.Unmarshal(aux.Exercises, &ids); err == nil {
		if len(w.ExerciseIDs) == 0 {
			w.ExerciseIDs = ids
		}
		return nil
	}

	var exercises []ExerciseDefinition
	if err := json.Unmarshal(aux.Exercises, &exercises); err != nil {
		return fmt.Errorf("decode exercises of workout %q: %w", w.ID, err)
	}
	w.Exercises = exercises
	return nil
}

func (w WorkoutDefinition) Type() WorkoutType {
	if w.IsCustom {
		return WorkoutCustom
	}
	return WorkoutPreset
}

//
// For TOML parsing only
//

type WorkoutTOML struct {
	Name              string               `toml:"name"`
	Duration          string               `toml:"duration"`
	Difficulty        Difficulty           `toml:"difficulty"`
	Category          Category             `toml:"category"`
	EstimatedCalories int                  `toml:"estimated_calories"`
	ExerciseIDs       []int                `toml:"exercise_ids"`
	Exercises         []ExerciseDefinition `toml:"exercise"`
}

func (t WorkoutTOML) Definition() WorkoutDefinition {
	return WorkoutDefinition{
		Name:              t.Name,
		Duration:          t.Duration,
		Difficulty:        t.Difficulty,
		Category:          t.Category,
		ExerciseIDs:       t.ExerciseIDs,
		Exercises:         t.Exercises,
		EstimatedCalories: t.EstimatedCalories,
		IsCustom:          true,
	}
}
