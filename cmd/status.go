package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/achievements"
	"github.com/misterclayt0n/fitpulse/internal/stats"
	"github.com/misterclayt0n/fitpulse/internal/storage"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's totals, the current streak and earned achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		history, err := st.History(ctx)
		if err != nil {
			return fmt.Errorf("failed to retrieve history: %w", err)
		}
		daily, err := st.DailyStats(ctx)
		if err != nil {
			return err
		}
		earned, err := st.Achievements(ctx)
		if err != nil {
			return err
		}

		now := time.Now()
		today := stats.TodayStats(daily, now)
		total := 0
		for _, d := range daily {
			total += d.Workouts
		}

		title := "STATUS"
		profile, err := st.Profile(ctx)
		switch {
		case err == nil && profile.Name != "":
			title = "HELLO, " + profile.Name
		case err != nil && !errors.Is(err, storage.ErrNotFound):
			return err
		}

		// Print a stylish header.
		printBoxedHeader(title)
		fmt.Println(faint("  " + now.In(utils.Loc).Format("Monday, 02 January 2006")))
		fmt.Println()

		printMetric("Workouts today", today.Workouts)
		printMetric("Calories today", fmt.Sprintf("%d kcal", today.Calories))
		printMetric("Minutes today", utils.FormatMinutes(today.Minutes))
		printMetric("Exercises today", today.Exercises)
		printMetric("Total workouts", total)
		printMetric("Day streak", fmt.Sprintf("%d days", stats.ComputeStreak(history, now, cfg.App.StreakLookbackDays)))
		fmt.Println()

		header := color.New(color.FgGreen, color.Bold).Sprintf("Achievements (%d/%d):", len(earned), len(achievements.Badges()))
		fmt.Println(header)
		have := achievements.NewSet(earned...)
		for _, b := range achievements.Badges() {
			if have.Has(b.ID) {
				fmt.Printf("  🏆 %s %s\n", color.New(color.FgMagenta, color.Bold).Sprint(b.Title), faint("- "+b.Description))
			} else {
				fmt.Printf("  🔒 %s\n", faint(b.Title+" - "+b.Description))
			}
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
