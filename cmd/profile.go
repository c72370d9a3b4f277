package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/models"
	"github.com/misterclayt0n/fitpulse/internal/storage"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

var (
	profileInput  models.Profile
	settingsInput models.Settings
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the user profile, BMI and app settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		printBoxedHeader("PROFILE")
		p, err := st.Profile(ctx)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			fmt.Println(magenta("  No profile yet. Create one with `fitpulse profile set`."))
		case err != nil:
			return err
		default:
			printMetric("Name", p.Name)
			printMetric("Age", p.Age)
			printMetric("Weight", fmt.Sprintf("%.1f kg", p.Weight))
			printMetric("Height", fmt.Sprintf("%.0f cm", p.Height))
			printMetric("Goal", p.FitnessGoal)
			printMetric("Experience", p.Experience)
			if bmi := utils.CalculateBMI(p.Weight, p.Height); bmi > 0 {
				printMetric("BMI", fmt.Sprintf("%.1f (%s)", bmi, utils.BMICategory(bmi)))
			}
			if !p.IsComplete() {
				fmt.Println(faint("  Profile incomplete."))
			}
		}
		fmt.Println()

		settings, err := st.Settings(ctx)
		if err != nil {
			return err
		}
		fmt.Println(boldGreen("Settings:"))
		printMetric("Reminder", onOff(settings.ReminderEnabled)+" at "+settings.ReminderTime)
		printMetric("Sound", onOff(settings.SoundEnabled))
		printMetric("Theme", settings.Theme)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields and settings given as flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := st.Profile(ctx)
		if errors.Is(err, storage.ErrNotFound) {
			p = &models.Profile{}
		} else if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			p.Name = profileInput.Name
		}
		if flags.Changed("age") {
			p.Age = profileInput.Age
		}
		if flags.Changed("weight") {
			p.Weight = profileInput.Weight
		}
		if flags.Changed("height") {
			p.Height = profileInput.Height
		}
		if flags.Changed("goal") {
			p.FitnessGoal = profileInput.FitnessGoal
		}
		if flags.Changed("experience") {
			p.Experience = profileInput.Experience
		}
		if err := st.SetProfile(ctx, p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		settings, err := st.Settings(ctx)
		if err != nil {
			return err
		}
		if flags.Changed("reminder") {
			settings.ReminderEnabled = settingsInput.ReminderEnabled
		}
		if flags.Changed("reminder-time") {
			settings.ReminderTime = settingsInput.ReminderTime
		}
		if flags.Changed("sound") {
			settings.SoundEnabled = settingsInput.SoundEnabled
		}
		if flags.Changed("theme") {
			settings.Theme = settingsInput.Theme
		}
		if err := st.SetSettings(ctx, settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		fmt.Println("✅ Profile updated")
		return nil
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)

	f := profileSetCmd.Flags()
	f.StringVar(&profileInput.Name, "name", "", "Your name")
	f.IntVar(&profileInput.Age, "age", 0, "Age in years")
	f.Float64Var(&profileInput.Weight, "weight", 0, "Weight in kg")
	f.Float64Var(&profileInput.Height, "height", 0, "Height in cm")
	f.StringVar(&profileInput.FitnessGoal, "goal", "", "Fitness goal (e.g. weight_loss, muscle_gain, endurance)")
	f.StringVar(&profileInput.Experience, "experience", "", "Experience level (beginner, intermediate, advanced)")
	f.BoolVar(&settingsInput.ReminderEnabled, "reminder", true, "Enable the daily reminder")
	f.StringVar(&settingsInput.ReminderTime, "reminder-time", "09:00", "Daily reminder time (HH:MM)")
	f.BoolVar(&settingsInput.SoundEnabled, "sound", true, "Enable sounds")
	f.StringVar(&settingsInput.Theme, "theme", "light", "Theme (light or dark)")
}
