package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	EnvDatabaseURL = "FITPULSE_DATABASE_URL"
	EnvDevMode     = "DEV_MODE"

	devConnectionString = "file:./local.db?cache=shared&mode=rwc"
)

type Config struct {
	DB  DBConfig  `toml:"database"`
	App AppConfig `toml:"app"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type AppConfig struct {
	Timezone           string `toml:"timezone"` // IANA name, or "Local".
	StreakLookbackDays int    `toml:"streak_lookback_days"`
	HistoryLimit       int    `toml:"history_limit"`
	ReminderTime       string `toml:"reminder_time"`
	SoundEnabled       bool   `toml:"sound_enabled"`
}

// Returns the directory holding the config file and the default database.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fitpulse"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns the configuration used when no config file exists. The
// database lives next to the config file.
func Default(dir string) Config {
	return Config{
		DB: DBConfig{
			ConnectionString: "file:" + filepath.Join(dir, "fitpulse.db") + "?cache=shared&mode=rwc",
		},
		App: AppConfig{
			Timezone:           "Local",
			StreakLookbackDays: 30,
			HistoryLimit:       100,
			ReminderTime:       "09:00",
			SoundEnabled:       true,
		},
	}
}

// Reads the configuration from the config file, after loading a .env file
// from the working directory when there is one.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path on top of the defaults. A missing file
// yields the defaults. Environment overrides are applied last.
func LoadFrom(path string) (*Config, error) {
	cfg := Default(filepath.Dir(path))

	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if url := os.Getenv(EnvDatabaseURL); url != "" {
		cfg.DB.ConnectionString = url
	}
	// Check for a DEV_MODE environment variable.
	if os.Getenv(EnvDevMode) == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}

	if cfg.App.StreakLookbackDays <= 0 {
		cfg.App.StreakLookbackDays = 30
	}
	if cfg.App.HistoryLimit <= 0 {
		cfg.App.HistoryLimit = 100
	}
	return &cfg, nil
}

// Save writes cfg to path, creating its directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
