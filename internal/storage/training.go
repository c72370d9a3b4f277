package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/misterclayt0n/fitpulse/internal/achievements"
	"github.com/misterclayt0n/fitpulse/internal/models"
	"github.com/misterclayt0n/fitpulse/internal/stats"
)

// Completion is what recording one finished workout changed.
type Completion struct {
	Entry         models.HistoryEntry
	Today         models.DailyStats
	TotalWorkouts int
	Streak        int
	Unlocked      []string // Newly earned, display order.
}

// newULID generates a new ULID string for t.
func newULID(t time.Time) string {
	entropy := rand.New(rand.NewSource(t.UnixNano()))
	return ulid.MustNew(ulid.Timestamp(t), ulid.Monotonic(entropy, 0)).String()
}

// CompleteWorkout records sum in the history and daily stats and merges any
// newly earned achievements, all in one transaction. lookbackDays bounds the
// streak walk (stats.DefaultLookbackDays when <= 0).
func (s *Storage) CompleteWorkout(ctx context.Context, sum models.SessionSummary, lookbackDays int) (Completion, error) {
	now := s.now()
	var c Completion

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		priorHistory, err := history(ctx, tx)
		if err != nil {
			return err
		}
		priorDaily, err := dailyStats(ctx, tx)
		if err != nil {
			return err
		}
		earned, err := achievementIDs(ctx, tx)
		if err != nil {
			return err
		}

		newHistory, newDaily := stats.RecordSession(sum, priorHistory, priorDaily, now, newULID(now), s.historyLimit)

		c.Entry = newHistory[0]
		c.Today = stats.TodayStats(newDaily, now)
		c.TotalWorkouts = totalWorkouts(newDaily)
		c.Streak = stats.ComputeStreak(newHistory, now, lookbackDays)

		unlocked := achievements.EvaluateWithStreak(c.Today, c.TotalWorkouts, c.Streak, achievements.NewSet(earned...))
		c.Unlocked = unlocked.IDs()

		if err := set(ctx, tx, BucketHistory, newHistory, now); err != nil {
			return err
		}
		if err := set(ctx, tx, BucketDailyStats, newDaily, now); err != nil {
			return err
		}
		if len(c.Unlocked) > 0 {
			if err := set(ctx, tx, BucketAchievements, achievements.Merge(earned, unlocked), now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Completion{}, fmt.Errorf("Failed to record workout: %w", err)
	}

	s.logger.Info("workout recorded",
		slog.String("id", c.Entry.ID),
		slog.String("workout", sum.Name),
		slog.Int("minutes", sum.Duration),
		slog.Int("calories", sum.CaloriesBurned),
		slog.Any("unlocked", c.Unlocked),
	)
	return c, nil
}

// totalWorkouts counts every recorded workout. Daily stats are never capped,
// unlike the history.
func totalWorkouts(daily models.DailyStatsByDay) int {
	n := 0
	for _, d := range daily {
		n += d.Workouts
	}
	return n
}
