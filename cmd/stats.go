package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/stats"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

var periodFlag string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show workout totals for the last week, month or year",
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := stats.ParsePeriod(periodFlag)
		if err != nil {
			return err
		}

		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		history, err := st.History(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to retrieve history: %w", err)
		}

		now := time.Now()
		ps := stats.ComputePeriodStats(history, period, now)

		printBoxedHeader("LAST " + strings.ToUpper(string(period)))
		fmt.Println(faint(fmt.Sprintf("  since %s", period.Since(now).In(utils.Loc).Format("02 Jan 2006"))))
		fmt.Println()
		printMetric("Workouts", ps.Workouts)
		printMetric("Total time", utils.FormatMinutes(ps.TotalTime))
		printMetric("Calories", fmt.Sprintf("%d kcal", ps.Calories))
		printMetric("Average duration", utils.FormatMinutes(ps.AvgDuration))
		if ps.HasBestDay {
			printMetric("Most active day", ps.BestDay)
		} else {
			printMetric("Most active day", "-")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&periodFlag, "period", "p", string(stats.Week), "Period: week, month or year")
}
