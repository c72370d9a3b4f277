package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/misterclayt0n/fitpulse/internal/achievements"
	"github.com/misterclayt0n/fitpulse/internal/catalog"
	"github.com/misterclayt0n/fitpulse/internal/runner"
	"github.com/misterclayt0n/fitpulse/internal/session"
	"github.com/misterclayt0n/fitpulse/internal/storage"
	"github.com/misterclayt0n/fitpulse/internal/summary"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

var workoutID string

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Run a guided workout session",
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
		w, err := catalog.FindWorkout(workoutID, custom)
		if err != nil {
			return err
		}

		sess, err := session.New(catalog.Resolve(w))
		if errors.Is(err, session.ErrEmptyWorkout) {
			return fmt.Errorf("workout '%s' has no exercises to perform; pick another one with `fitpulse workouts`", w.Name)
		}
		if err != nil {
			return err
		}

		printBoxedHeader(w.Name)
		fmt.Println(faint("  [enter/n] done  [s] skip  [r] skip rest  [p] previous  [f] finish  [q] quit"))
		fmt.Println()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		updates := make(chan session.State)
		var out runner.Outcome

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			defer close(updates)
			var err error
			out, err = runner.Run(gctx, sess, runner.ReadActions(gctx, os.Stdin), runner.NewTicker(time.Second), runner.Options{
				Logger:  logger,
				Updates: updates,
			})
			return err
		})
		g.Go(func() error {
			r := sessionView{w: os.Stdout, bell: cfg.App.SoundEnabled}
			for state := range updates {
				r.render(state)
			}
			return nil
		})
		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		fmt.Println()

		if out.Abandoned {
			fmt.Println(red("Workout abandoned, nothing recorded."))
			return nil
		}

		sum, err := summary.Summarize(out.State, w)
		if err != nil {
			return err
		}
		// The signal context may be done by now; persistence uses the command's.
		completion, err := st.CompleteWorkout(cmd.Context(), sum, cfg.App.StreakLookbackDays)
		if err != nil {
			return err
		}

		printCompletion(completion)
		return nil
	},
}

// sessionView prints a live status line for a running session.
type sessionView struct {
	w    io.Writer
	bell bool
	last *session.State
}

func (v *sessionView) render(st session.State) {
	prev := v.last
	v.last = &st

	if prev != nil && (prev.Phase != st.Phase || prev.CurrentIndex != st.CurrentIndex) {
		fmt.Fprintln(v.w)
		if v.bell && prev.Phase == session.Resting && st.Phase == session.Active {
			fmt.Fprint(v.w, "\a")
		}
	}

	ex := st.Exercises[st.CurrentIndex]
	position := fmt.Sprintf("[%d/%d]", st.CurrentIndex+1, len(st.Exercises))

	switch st.Phase {
	case session.Resting:
		fmt.Fprintf(v.w, "\r%s %s %s  next: %s   ",
			boldCyan(position), yellowBold("Rest"), utils.FormatClock(st.RestRemainingSeconds), ex.Name)
	case session.Active:
		fmt.Fprintf(v.w, "\r%s %s  %d × %s  %s   ",
			boldCyan(position), boldGreen(ex.Name), ex.Sets, ex.Reps, faint(utils.FormatClock(st.ElapsedSeconds)))
	case session.Complete:
		fmt.Fprintf(v.w, "\r%s %s   ", boldGreen("Workout complete"), utils.FormatClock(st.ElapsedSeconds))
	}
}

func printCompletion(c storage.Completion) {
	printBoxedHeader("WORKOUT SUMMARY")
	printMetric("Workout", c.Entry.Name)
	printMetric("Duration", utils.FormatMinutes(c.Entry.Duration))
	printMetric("Calories", fmt.Sprintf("%d kcal", c.Entry.CaloriesBurned))
	printMetric("Exercises", fmt.Sprintf("%d/%d", c.Entry.CompletedExercises, c.Entry.TotalExercises))
	printMetric("Streak", fmt.Sprintf("%d days", c.Streak))
	fmt.Println()

	for _, id := range c.Unlocked {
		b, ok := achievements.Lookup(id)
		if !ok {
			continue
		}
		fmt.Printf("🏆 %s %s\n", boldGreen("Achievement unlocked:"), b.Title)
		fmt.Printf("   %s\n", faint(b.Description))
	}
}

func init() {
	// Registers the command as a subcommand of rootCmd.
	rootCmd.AddCommand(startCmd)

	// Define flags.
	startCmd.Flags().StringVarP(&workoutID, "workout", "w", "", "Workout ID (see `fitpulse workouts`)")
	startCmd.MarkFlagRequired("workout")
}
