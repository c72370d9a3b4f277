package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/catalog"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

var limitSessions int

var showExCmd = &cobra.Command{
	Use:   "show-ex [exercise-id]",
	Short: "Display an exercise with its instructions and the recent workouts that included it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid exercise id %q", args[0])
		}
		ex, ok := catalog.LookupByID(id)
		if !ok {
			return fmt.Errorf("exercise %d not found", id)
		}

		fmt.Println(boldGreen("Exercise Information:"))
		fmt.Printf("  %s: %s\n", boldCyan("Name"), ex.Name)
		fmt.Printf("  %s: %s\n", boldCyan("Category"), ex.Category)
		fmt.Printf("  %s: %s\n", boldCyan("Muscles"), ex.Muscle)
		fmt.Printf("  %s: %s\n", boldCyan("Difficulty"), ex.Difficulty)
		fmt.Printf("  %s: %d × %s, %ds rest\n", boldCyan("Prescription"), ex.Sets, ex.Reps, ex.Rest)
		fmt.Println()

		steps, _ := catalog.Instructions(id)
		fmt.Println(boldGreen("Instructions:"))
		for i, step := range steps {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
		fmt.Println()

		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		history, err := st.History(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to retrieve history: %w", err)
		}

		fmt.Printf("%s %s:\n", boldGreen("Recent workouts with"), ex.Name)
		shown := 0
		for _, h := range history {
			if shown == limitSessions {
				break
			}
			if !slices.Contains(h.Exercises, ex.Name) {
				continue
			}
			fmt.Printf("  %s  %s (%s)\n", utils.FormatLocal(h.Date), h.Name, utils.FormatMinutes(h.Duration))
			shown++
		}
		if shown == 0 {
			fmt.Println(magenta("  No workouts found."))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showExCmd)
	showExCmd.Flags().IntVarP(&limitSessions, "limit", "l", 5, "Number of workouts to display")
}
