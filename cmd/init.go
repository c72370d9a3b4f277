package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/config"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			defaults := config.Default(filepath.Dir(path))
			if err := config.Save(path, &defaults); err != nil {
				return fmt.Errorf("Failed to write config: %w", err)
			}
			fmt.Printf("✅ Config written to %s\n", path)
		}

		st, err := openStorage(cmd)
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer st.Close()

		if _, err := st.Settings(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("✅ Database initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
