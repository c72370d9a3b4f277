package storage

import (
	"context"

	"github.com/misterclayt0n/fitpulse/internal/models"
)

// History returns the workout history, newest first.
func (s *Storage) History(ctx context.Context) ([]models.HistoryEntry, error) {
	return history(ctx, s.DB)
}

func (s *Storage) SetHistory(ctx context.Context, h []models.HistoryEntry) error {
	return set(ctx, s.DB, BucketHistory, h, s.now())
}

func (s *Storage) DailyStats(ctx context.Context) (models.DailyStatsByDay, error) {
	return dailyStats(ctx, s.DB)
}

func (s *Storage) SetDailyStats(ctx context.Context, d models.DailyStatsByDay) error {
	return set(ctx, s.DB, BucketDailyStats, d, s.now())
}

// Achievements returns the earned achievement ids in the order they were earned.
func (s *Storage) Achievements(ctx context.Context) ([]string, error) {
	return achievementIDs(ctx, s.DB)
}

func (s *Storage) SetAchievements(ctx context.Context, ids []string) error {
	return set(ctx, s.DB, BucketAchievements, ids, s.now())
}

func history(ctx context.Context, q querier) ([]models.HistoryEntry, error) {
	var h []models.HistoryEntry
	if _, err := getInto(ctx, q, BucketHistory, &h); err != nil {
		return nil, err
	}
	return h, nil
}

func dailyStats(ctx context.Context, q querier) (models.DailyStatsByDay, error) {
	d := models.DailyStatsByDay{}
	if _, err := getInto(ctx, q, BucketDailyStats, &d); err != nil {
		return nil, err
	}
	if d == nil {
		d = models.DailyStatsByDay{}
	}
	return d, nil
}

func achievementIDs(ctx context.Context, q querier) ([]string, error) {
	var ids []string
	if _, err := getInto(ctx, q, BucketAchievements, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
