package models

import "strings"

type Profile struct {
	Name        string  `json:"name"`
	Age         int     `json:"age"`
	Weight      float64 `json:"weight"` // Kilograms.
	Height      float64 `json:"height"` // Centimeters.
	FitnessGoal string  `json:"fitnessGoal"`
	Experience  string  `json:"experience"`
}

// IsComplete reports whether every field the onboarding flow asks for is filled in.
func (p *Profile) IsComplete() bool {
	if p == nil {
		return false
	}
	return strings.TrimSpace(p.Name) != "" &&
		p.Age > 0 &&
		p.Weight > 0 &&
		p.Height > 0 &&
		p.FitnessGoal != "" &&
		p.Experience != ""
}

type Settings struct {
	ReminderEnabled bool   `json:"reminderEnabled"`
	ReminderTime    string `json:"reminderTime"`
	SoundEnabled    bool   `json:"soundEnabled"`
	Theme           string `json:"theme"`
}

func DefaultSettings() Settings {
	return Settings{
		ReminderEnabled: true,
		ReminderTime:    "09:00",
		SoundEnabled:    true,
		Theme:           "light",
	}
}
