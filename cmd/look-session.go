package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/utils"
)

var lookSessionCmd = &cobra.Command{
	Use:   "look-session [history-id]",
	Short: "Display one recorded workout from the history by its ID (or ID prefix)",
	Args:  cobra.ExactArgs(1),
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

		want := strings.ToUpper(args[0])
		for _, h := range history {
			if !strings.HasPrefix(h.ID, want) {
				continue
			}

			fmt.Println(boldGreen(h.Name))
			fmt.Printf("  %s: %s\n", boldCyan("ID"), h.ID)
			fmt.Printf("  %s: %s\n", boldCyan("Date"), utils.FormatLocal(h.Date))
			fmt.Printf("  %s: %s (%s)\n", boldCyan("Type"), h.WorkoutType, h.Difficulty)
			fmt.Printf("  %s: %s\n", boldCyan("Duration"), utils.FormatMinutes(h.Duration))
			fmt.Printf("  %s: %d kcal\n", boldCyan("Calories"), h.CaloriesBurned)
			fmt.Printf("  %s: %d/%d completed\n", boldCyan("Exercises"), h.CompletedExercises, h.TotalExercises)
			for i, name := range h.Exercises {
				fmt.Printf("    %d. %s\n", i+1, name)
			}
			return nil
		}
		return fmt.Errorf("no workout with id %s in the history", args[0])
	},
}

func init() {
	rootCmd.AddCommand(lookSessionCmd)
}
