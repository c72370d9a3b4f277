package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteWorkoutCmd = &cobra.Command{
	Use:   "delete-workout [id-or-name]",
	Short: "Delete a custom workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		deleted, err := st.DeleteCustomWorkout(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("Failed to delete workout: %w", err)
		}

		fmt.Printf("✅ Workout '%s' deleted successfully\n", deleted.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteWorkoutCmd)
}
