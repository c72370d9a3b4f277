package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	BucketProfile        = "user_profile"
	BucketHistory        = "workout_history"
	BucketDailyStats     = "daily_stats"
	BucketSettings       = "app_settings"
	BucketAchievements   = "achievements"
	BucketCustomWorkouts = "custom_workouts"
)

// Buckets lists every bucket the application writes.
var Buckets = []string{
	BucketProfile,
	BucketHistory,
	BucketDailyStats,
	BucketSettings,
	BucketAchievements,
	BucketCustomWorkouts,
}

// Get returns the raw JSON stored under bucket. The bool is false when the
// bucket has never been written.
func (s *Storage) Get(ctx context.Context, bucket string) (json.RawMessage, bool, error) {
	return get(ctx, s.DB, bucket)
}

// Set stores v, encoded as JSON, under bucket.
func (s *Storage) Set(ctx context.Context, bucket string, v any) error {
	return set(ctx, s.DB, bucket, v, s.now())
}

// Remove deletes the given buckets. Missing buckets are ignored.
func (s *Storage) Remove(ctx context.Context, buckets ...string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, b := range buckets {
			if _, err := tx.ExecContext(ctx, "DELETE FROM buckets WHERE name = ?", b); err != nil {
				return fmt.Errorf("failed to remove bucket %s: %w", b, err)
			}
		}
		return nil
	})
}

// List returns the names of the stored buckets in name order.
func (s *Storage) List(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT name FROM buckets ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan bucket name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func get(ctx context.Context, q querier, bucket string) (json.RawMessage, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, "SELECT value FROM buckets WHERE name = ?", bucket).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read bucket %s: %w", bucket, err)
	}
	return json.RawMessage(value), true, nil
}

// getInto decodes bucket into v, leaving v untouched when the bucket is absent.
func getInto(ctx context.Context, q querier, bucket string, v any) (bool, error) {
	raw, ok, err := get(ctx, q, bucket)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode bucket %s: %w", bucket, err)
	}
	return true, nil
}

func set(ctx context.Context, q querier, bucket string, v any, now time.Time) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode bucket %s: %w", bucket, err)
	}
	_, err = q.ExecContext(ctx,
		`INSERT INTO buckets (name, value, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		bucket, string(data), now.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write bucket %s: %w", bucket, err)
	}
	return nil
}
