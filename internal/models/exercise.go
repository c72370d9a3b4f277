package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryFlexibility Category = "flexibility"
	CategoryHIIT        Category = "hiit"
)

// ExerciseDefinition is an immutable catalog record.
type ExerciseDefinition struct {
	ID         int        `json:"id" toml:"id"`
	Name       string     `json:"name" toml:"name"`
	Sets       int        `json:"sets" toml:"sets"`
	Reps       Reps       `json:"reps" toml:"reps"`
	Rest       int        `json:"rest" toml:"rest"` // Seconds.
	Difficulty Difficulty `json:"difficulty" toml:"difficulty"`
	Muscle     string     `json:"muscle" toml:"muscle"` // Comma separated muscle groups.
	Category   Category   `json:"category,omitempty" toml:"category"`
}

// Reps holds either a repetition count or a textual duration label such as "30 sec".
// Exactly one of Count and Label is meaningful; Label wins when set.
type Reps struct {
	Count int
	Label string
}

func RepCount(n int) Reps { return Reps{Count: n} }
func RepLabel(label string) Reps { return Reps{Label: label} }

func (r Reps) IsTimed() bool { return r.Label != "" }

func (r Reps) String() string {
	if r.Label != "" {
		return r.Label
	}
	return strconv.Itoa(r.Count)
}

func (r Reps) MarshalJSON() ([]byte, error) {
	if r.Label != "" {
		return json.Marshal(r.Label)
	}
	return json.Marshal(r.Count)
}

func (r *Reps) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Reps{Count: n}
		return nil
	}
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("reps must be a number or a label: %s", data)
	}
	*r = Reps{Label: label}
	return nil
}

// UnmarshalTOML accepts `reps = 12` as well as `reps = "30 sec"`.
func (r *Reps) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case int64:
		*r = Reps{Count: int(val)}
	case string:
		*r = Reps{Label: val}
	default:
		return fmt.Errorf("reps must be an integer or a string, got %T", v)
	}
	return nil
}
