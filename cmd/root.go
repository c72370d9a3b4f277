package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/config"
	"github.com/misterclayt0n/fitpulse/internal/storage"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

var (
	verbose bool

	cfg    *config.Config
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

var rootCmd = &cobra.Command{
	Use:           "fitpulse",
	Short:         "Workout tracker: guided sessions, history, streaks and badges",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		// The default database lives in the config directory.
		if _, err := utils.ConfigDir(); err != nil {
			return fmt.Errorf("Failed to create config directory: %w", err)
		}

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}
		if err := utils.SetLocation(cfg.App.Timezone); err != nil {
			return err
		}
		logger.Debug("config loaded", slog.String("timezone", utils.Loc.String()))
		return nil
	},
}

// openStorage connects to the configured database.
func openStorage(cmd *cobra.Command) (*storage.Storage, error) {
	st, err := storage.Open(cmd.Context(), cfg.DB.ConnectionString,
		storage.WithLogger(logger),
		storage.WithHistoryLimit(cfg.App.HistoryLimit),
	)
	if err != nil {
		logger.Error("failed to open storage", slog.Any("error", err))
		return nil, err
	}
	return st, nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging on stderr")
}
