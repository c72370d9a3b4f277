package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/fitpulse/internal/models"
)

// ParseWorkoutFromTOML reads a custom workout template.
func ParseWorkoutFromTOML(path string) (models.WorkoutDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.WorkoutDefinition{}, err
	}

	var w models.WorkoutTOML
	if err := toml.Unmarshal(data, &w); err != nil {
		return models.WorkoutDefinition{}, fmt.Errorf("invalid TOML format: %w", err)
	}
	if strings.TrimSpace(w.Name) == "" {
		return models.WorkoutDefinition{}, fmt.Errorf("workout name not specified in %s", path)
	}

	return w.Definition(), nil
}

// IsYAMLPath reports whether the file extension asks for YAML rather than TOML.
func IsYAMLPath(path string) bool {
	p := strings.ToLower(path)
	return strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml")
}
