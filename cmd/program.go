package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/catalog"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

var createWorkoutCmd = &cobra.Command{
	Use:   "create-workout [file]",
	Short: "Create a custom workout from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := utils.ParseWorkoutFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to read workout: %w", err)
		}
		if len(catalog.Resolve(w)) == 0 {
			return fmt.Errorf("workout %q has no known exercises", w.Name)
		}

		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		saved, err := st.SaveCustomWorkout(cmd.Context(), w)
		if err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		fmt.Printf("✅ Workout '%s' created as %s\n", saved.Name, saved.ID)
		return nil
	},
}

var listWorkoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "List preset and custom workouts",
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

		table := newTable(os.Stdout, "ID", "Name", "Type", "Difficulty", "Duration", "Exercises", "Est. kcal")
		for _, w := range append(catalog.Presets(), custom...) {
			kcal := "-"
			if w.EstimatedCalories > 0 {
				kcal = strconv.Itoa(w.EstimatedCalories)
			}
			table.Append([]string{
				w.ID,
				w.Name,
				string(w.Type()),
				string(w.Difficulty),
				w.Duration,
				strconv.Itoa(len(catalog.Resolve(w))),
				kcal,
			})
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(createWorkoutCmd)
	rootCmd.AddCommand(listWorkoutsCmd)
}
