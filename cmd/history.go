package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/models"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

var (
	filterWorkout string
	filterDay     string
	historyLimit  int
)

// historyCmd shows the recorded workouts, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display workout history, optionally filtered by workout name and/or day",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		history, err := st.History(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to retrieve history: %w", err)
		}

		// Case insensitive filtering by workout name.
		if filterWorkout != "" {
			var filtered []models.HistoryEntry
			for _, h := range history {
				if strings.EqualFold(h.Name, filterWorkout) {
					filtered = append(filtered, h)
				}
			}
			history = filtered
		}

		// If filtering by day.
		if filterDay != "" {
			parsedDay, err := time.ParseInLocation(utils.DayLayout, filterDay, utils.Loc)
			if err != nil {
				parsedDay, err = time.ParseInLocation("02/01/06", filterDay, utils.Loc)
			}
			if err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}

			var filtered []models.HistoryEntry
			for _, h := range history {
				if utils.DayKey(h.Date) == utils.DayKey(parsedDay) {
					filtered = append(filtered, h)
				}
			}
			history = filtered
		}

		if len(history) == 0 {
			fmt.Println(magenta("No workouts found."))
			return nil
		}
		if historyLimit > 0 && len(history) > historyLimit {
			history = history[:historyLimit]
		}

		table := newTable(os.Stdout, "ID", "Date", "Workout", "Type", "Duration", "Calories", "Exercises")
		for _, h := range history {
			table.Append([]string{
				h.ID,
				h.Date.In(utils.Loc).Format("Mon 02 Jan 15:04"),
				h.Name,
				string(h.WorkoutType),
				utils.FormatMinutes(h.Duration),
				strconv.Itoa(h.CaloriesBurned),
				fmt.Sprintf("%d/%d", h.CompletedExercises, h.TotalExercises),
			})
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterWorkout, "workout", "w", "", "Filter by workout name (case insensitive)")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum number of entries to show (0 for all)")
}
