package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var assumeYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the profile, history, stats, achievements and custom workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !assumeYes {
			fmt.Print(red("This deletes all your data. Type 'yes' to continue: "))
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ClearAll(cmd.Context()); err != nil {
			return fmt.Errorf("Failed to reset data: %w", err)
		}
		fmt.Println("✅ All data deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}
