package storage

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/fitpulse/internal/models"
)

// Profile returns the stored user profile, or ErrNotFound before onboarding.
func (s *Storage) Profile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	ok, err := getInto(ctx, s.DB, BucketProfile, &p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("profile: %w", ErrNotFound)
	}
	return &p, nil
}

func (s *Storage) SetProfile(ctx context.Context, p *models.Profile) error {
	return set(ctx, s.DB, BucketProfile, p, s.now())
}

// Settings returns the stored settings, falling back to the defaults. Keys
// missing from the stored document keep their default value.
func (s *Storage) Settings(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()
	if _, err := getInto(ctx, s.DB, BucketSettings, &settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *Storage) SetSettings(ctx context.Context, settings models.Settings) error {
	return set(ctx, s.DB, BucketSettings, settings, s.now())
}
