package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/misterclayt0n/fitpulse/internal/models"
)

func (s *Storage) BucketExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM buckets WHERE name = ?)",
		name,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	return exists, nil
}

// IsKnownBucket reports whether name is one of the application's buckets.
func IsKnownBucket(name string) bool {
	return slices.Contains(Buckets, name)
}

// validateBucket checks that raw decodes as the type stored under name.
func validateBucket(name string, raw json.RawMessage) error {
	var target any
	switch name {
	case BucketProfile:
		target = &models.Profile{}
	case BucketHistory:
		target = &[]models.HistoryEntry{}
	case BucketDailyStats:
		target = &models.DailyStatsByDay{}
	case BucketSettings:
		target = &models.Settings{}
	case BucketAchievements:
		target = &[]string{}
	case BucketCustomWorkouts:
		target = &[]models.WorkoutDefinition{}
	default:
		return fmt.Errorf("unknown bucket %q", name)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	return nil
}
