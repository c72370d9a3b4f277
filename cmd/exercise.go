package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/catalog"
	"github.com/misterclayt0n/fitpulse/internal/models"
)

var exerciseCategory string

var listExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List the exercise catalog, optionally for one category",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories := catalog.Categories
		if exerciseCategory != "" {
			categories = []models.Category{models.Category(exerciseCategory)}
		}

		table := newTable(os.Stdout, "ID", "Name", "Category", "Sets", "Reps", "Rest", "Difficulty", "Muscles")
		n := 0
		for _, c := range categories {
			for _, e := range catalog.ByCategory(c) {
				table.Append([]string{
					strconv.Itoa(e.ID),
					e.Name,
					string(e.Category),
					strconv.Itoa(e.Sets),
					e.Reps.String(),
					fmt.Sprintf("%ds", e.Rest),
					string(e.Difficulty),
					e.Muscle,
				})
				n++
			}
		}
		if n == 0 {
			return fmt.Errorf("no exercises in category %q", exerciseCategory)
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(listExercisesCmd)
	listExercisesCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "Filter by category (strength, cardio, flexibility, hiit)")
}
