// Package achievements decides which badges a completed workout unlocks.
package achievements

import (
	"slices"

	"github.com/misterclayt0n/fitpulse/internal/models"
)

const (
	FirstWorkout    = "first_workout"
	TenWorkouts     = "10_workouts"
	ThousandCalDay  = "1000_calories_day"
	ConsistencyWeek = "consistency_week"
	ThirtyDayStreak = "30_day_challenge"
)

const (
	caloriesPerDayGoal = 1000
	weekStreak         = 7
	monthStreak        = 30
)

type Badge struct {
	ID          string
	Title       string
	Description string
}

// badges is the closed set of known achievements in display order.
var badges = []Badge{
	{FirstWorkout, "First Workout", "Complete your first workout"},
	{TenWorkouts, "10 Workouts", "Complete 10 workouts"},
	{ThousandCalDay, "Burn 1000 Calories", "Burn 1000 calories in a single day"},
	{ConsistencyWeek, "7 Day Streak", "Workout for 7 consecutive days"},
	{ThirtyDayStreak, "30 Day Challenge", "Complete a 30-day workout streak"},
}

func Badges() []Badge {
	return slices.Clone(badges)
}

func Lookup(id string) (Badge, bool) {
	for _, b := range badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Set is a collection of earned achievement ids.
type Set map[string]struct{}

func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in badge display order, unknown ids last and sorted.
func (s Set) IDs() []string {
	out := make([]string, 0, len(s))
	for _, b := range badges {
		if s.Has(b.ID) {
			out = append(out, b.ID)
		}
	}
	var unknown []string
	for id := range s {
		if _, ok := Lookup(id); !ok {
			unknown = append(unknown, id)
		}
	}
	slices.Sort(unknown)
	return append(out, unknown...)
}

// Evaluate returns the achievements newly unlocked by the day's totals and the
// overall workout count. Ids already in earned are never returned.
func Evaluate(daily models.DailyStats, totalWorkouts int, earned Set) Set {
	return EvaluateWithStreak(daily, totalWorkouts, 0, earned)
}

// EvaluateWithStreak is Evaluate plus the streak badges.
func EvaluateWithStreak(daily models.DailyStats, totalWorkouts, streak int, earned Set) Set {
	unlocked := Set{}
	award := func(id string, ok bool) {
		if ok && !earned.Has(id) {
			unlocked[id] = struct{}{}
		}
	}

	award(FirstWorkout, totalWorkouts == 1)
	award(TenWorkouts, totalWorkouts == 10)
	award(ThousandCalDay, daily.Calories >= caloriesPerDayGoal)
	award(ConsistencyWeek, streak >= weekStreak)
	award(ThirtyDayStreak, streak >= monthStreak)
	return unlocked
}

// Merge appends the ids of unlocked missing from earned, keeping earned's order.
func Merge(earned []string, unlocked Set) []string {
	out := slices.Clone(earned)
	have := NewSet(earned...)
	for _, id := range unlocked.IDs() {
		if !have.Has(id) {
			out = append(out, id)
			have[id] = struct{}{}
		}
	}
	return out
}
