package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/catalog"
	"github.com/misterclayt0n/fitpulse/internal/summary"
)

var showWorkoutCmd = &cobra.Command{
	Use:   "show-workout [workout-id]",
	Short: "Display the exercises of a preset or custom workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		custom, err := st.CustomWorkouts(cmd.Context())
		if err != nil {
			return err
		}
		w, err := catalog.FindWorkout(args[0], custom)
		if err != nil {
			return err
		}

		fmt.Printf("\n%s\n", boldGreen(strings.ToUpper(w.Name)))
		fmt.Printf("%s: %s\n", boldCyan("Type"), w.Type())
		fmt.Printf("%s: %s\n", boldCyan("Difficulty"), w.Difficulty)
		if w.Duration != "" {
			fmt.Printf("%s: %s\n", boldCyan("Duration"), w.Duration)
		}
		fmt.Printf("%s: %.1f kcal/min\n\n", boldCyan("Burn rate"), summary.CaloriesPerMinute(w))

		exercises := catalog.Resolve(w)
		if len(exercises) == 0 {
			fmt.Println(red("  This workout has no known exercises."))
			return nil
		}
		for i, e := range exercises {
			fmt.Printf("  %s %s\n", boldCyan(fmt.Sprintf("%d.", i+1)), yellowBold(e.Name))
			fmt.Printf("     %d × %s, %ds rest %s\n", e.Sets, e.Reps, e.Rest, faint("("+e.Muscle+")"))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showWorkoutCmd)
}
