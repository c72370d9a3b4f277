package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/models"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

// details is a flag to enable verbose workout details.
var details bool

// calendarCmd prints the calendar grid. Days with workouts are colored by the
// type of their first workout (preset or custom).
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of workout days",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now().In(utils.Loc)
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		// Compute the first and last day of the month.
		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, utils.Loc)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		history, err := st.History(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get history: %w", err)
		}

		// Group workouts by day of this month, oldest first.
		byDay := make(map[int][]models.HistoryEntry)
		for i := len(history) - 1; i >= 0; i-- {
			h := history[i]
			local := h.Date.In(utils.Loc)
			if local.Year() != year || local.Month() != month {
				continue
			}
			byDay[local.Day()] = append(byDay[local.Day()], h)
		}

		typeColors := map[models.WorkoutType]func(a ...any) string{
			models.WorkoutPreset: color.New(color.FgGreen).SprintFunc(),
			models.WorkoutCustom: color.New(color.FgMagenta).SprintFunc(),
		}

		// Print the calendar header.
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		// Print initial empty slots.
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		// Print day numbers.
		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if entries, ok := byDay[day]; ok {
				colFunc, known := typeColors[entries[0].WorkoutType]
				if !known {
					colFunc = color.New(color.FgWhite).SprintFunc()
				}
				dayStr = colFunc(dayStr)
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n") // Extra newline after the calendar

		fmt.Println("Legend:")
		fmt.Printf("  %s: preset workout\n", typeColors[models.WorkoutPreset]("██"))
		fmt.Printf("  %s: custom workout\n", typeColors[models.WorkoutCustom]("██"))
		fmt.Printf("  %d workout days this month\n", len(byDay))

		if details {
			fmt.Println("\nWorkout Details:")
			var days []int
			for d := range byDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, utils.Loc)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, h := range byDay[day] {
					fmt.Printf("  %s at %s, %s, %d kcal\n",
						h.Name, h.Date.In(utils.Loc).Format("15:04"), utils.FormatMinutes(h.Duration), h.CaloriesBurned)
				}
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional workout details")
}
