package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/misterclayt0n/fitpulse/internal/models"
)

const customIDPrefix = "custom_"

func (s *Storage) CustomWorkouts(ctx context.Context) ([]models.WorkoutDefinition, error) {
	return customWorkouts(ctx, s.DB)
}

func customWorkouts(ctx context.Context, q querier) ([]models.WorkoutDefinition, error) {
	var ws []models.WorkoutDefinition
	if _, err := getInto(ctx, q, BucketCustomWorkouts, &ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// SaveCustomWorkout assigns w a new id and creation time and appends it to the
// custom workouts.
func (s *Storage) SaveCustomWorkout(ctx context.Context, w models.WorkoutDefinition) (models.WorkoutDefinition, error) {
	if strings.TrimSpace(w.Name) == "" {
		return models.WorkoutDefinition{}, fmt.Errorf("workout name is required")
	}
	if len(w.ExerciseIDs) == 0 && len(w.Exercises) == 0 {
		return models.WorkoutDefinition{}, fmt.Errorf("workout %q has no exercises", w.Name)
	}

	now := s.now().UTC()
	w.ID = customIDPrefix + uuid.New().String()
	w.IsCustom = true
	w.CreatedAt = &now

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		ws, err := customWorkouts(ctx, tx)
		if err != nil {
			return err
		}
		for _, existing := range ws {
			if strings.EqualFold(existing.Name, w.Name) {
				return fmt.Errorf("custom workout %q already exists", w.Name)
			}
		}
		return set(ctx, tx, BucketCustomWorkouts, append(ws, w), now)
	})
	if err != nil {
		return models.WorkoutDefinition{}, err
	}

	s.logger.Info("custom workout saved", slog.String("id", w.ID), slog.String("name", w.Name))
	return w, nil
}

// DeleteCustomWorkout removes the custom workout with the given id or name.
func (s *Storage) DeleteCustomWorkout(ctx context.Context, idOrName string) (models.WorkoutDefinition, error) {
	var deleted models.WorkoutDefinition

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		ws, err := customWorkouts(ctx, tx)
		if err != nil {
			return err
		}
		i := slices.IndexFunc(ws, func(w models.WorkoutDefinition) bool {
			return w.ID == idOrName || strings.EqualFold(w.Name, idOrName)
		})
		if i < 0 {
			return fmt.Errorf("custom workout %q: %w", idOrName, ErrNotFound)
		}
		deleted = ws[i]
		return set(ctx, tx, BucketCustomWorkouts, slices.Delete(ws, i, i+1), s.now())
	})
	if err != nil {
		return models.WorkoutDefinition{}, err
	}

	s.logger.Info("custom workout deleted", slog.String("id", deleted.ID))
	return deleted, nil
}
