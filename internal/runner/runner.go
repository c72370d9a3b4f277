// Package runner owns a session while it is being performed. One goroutine
// receives both the one-second ticks and the user's actions, so the session
// only ever sees serialized calls.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/misterclayt0n/fitpulse/internal/session"
)

type Action int

const (
	ActionNext Action = iota
	ActionSkip
	ActionSkipRest
	ActionPrevious
	ActionFinish
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionSkip:
		return "skip"
	case ActionSkipRest:
		return "skip-rest"
	case ActionPrevious:
		return "previous"
	case ActionFinish:
		return "finish"
	case ActionQuit:
		return "quit"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

type Options struct {
	Logger *slog.Logger
	// Updates, when set, receives a snapshot after every tick and action.
	// The loop blocks on it, so its reader must keep up.
	Updates chan<- session.State
}

// Outcome is how a run ended. Abandoned runs never completed and must not be
// summarized.
type Outcome struct {
	State     session.State
	Abandoned bool
}

// Run starts sess when needed and drives it until it completes, the user quits,
// the action channel is closed or ctx is cancelled. The ticker is stopped
// before Run returns and no tick is delivered to a completed session.
func Run(ctx context.Context, sess *session.Session, actions <-chan Action, ticker Ticker, opts Options) (Outcome, error) {
	defer ticker.Stop()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if sess.Phase() == session.NotStarted {
		if err := sess.Start(); err != nil {
			return Outcome{}, err
		}
	}

	publish := func() error {
		if opts.Updates == nil {
			return nil
		}
		select {
		case opts.Updates <- sess.Snapshot():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	abandon := func(err error) (Outcome, error) {
		ticker.Stop()
		logger.Info("session abandoned", slog.Int("elapsed_seconds", sess.ElapsedSeconds()))
		return Outcome{State: sess.Snapshot(), Abandoned: true}, err
	}

	if err := publish(); err != nil {
		return abandon(err)
	}

	for !sess.IsComplete() {
		select {
		case <-ctx.Done():
			return abandon(ctx.Err())

		case <-ticker.C():
			sess.Tick()

		case a, ok := <-actions:
			if !ok || a == ActionQuit {
				return abandon(nil)
			}
			if err := apply(sess, a); err != nil {
				if !errors.Is(err, session.ErrInvalidState) {
					return abandon(err)
				}
				logger.Debug("action ignored", slog.String("action", a.String()), slog.Any("error", err))
				continue
			}
			logger.Debug("action applied", slog.String("action", a.String()), slog.String("phase", sess.Phase().String()))
		}

		if sess.IsComplete() {
			ticker.Stop()
		}
		if err := publish(); err != nil {
			return abandon(err)
		}
	}

	logger.Info("session complete",
		slog.Int("elapsed_seconds", sess.ElapsedSeconds()),
		slog.Int("completed", sess.CompletedCount()),
		slog.Int("total", sess.Len()),
	)
	return Outcome{State: sess.Snapshot()}, nil
}

func apply(sess *session.Session, a Action) error {
	switch a {
	case ActionNext, ActionSkip:
		return sess.Advance()
	case ActionSkipRest:
		return sess.SkipRest()
	case ActionPrevious:
		return sess.GoToPrevious()
	case ActionFinish:
		return sess.Finish()
	default:
		return fmt.Errorf("unknown action %d", int(a))
	}
}
