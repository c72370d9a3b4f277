// Package session drives one workout attempt through its exercises and rest periods.
//
// A Session moves NotStarted -> Active <-> Resting -> Complete. It is driven by
// a single external one-second tick source plus user actions; it performs no
// I/O, owns no timers and is not safe for concurrent use. Callers funnel every
// call through one goroutine (see package runner).
package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/misterclayt0n/fitpulse/internal/models"
)

// DefaultRestSeconds is used when an exercise has no positive rest value.
const DefaultRestSeconds = 60

var (
	ErrEmptyWorkout = errors.New("workout has no exercises")
	ErrInvalidState = errors.New("invalid session state")
)

type Phase int

const (
	NotStarted Phase = iota
	Active
	Resting
	Complete
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case Active:
		return "active"
	case Resting:
		return "resting"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Transition is emitted to the observer on every phase change.
type Transition struct {
	From  Phase
	To    Phase
	Index int // Current exercise index after the change.
	At    time.Time
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithObserver registers fn to be called synchronously after each transition.
func WithObserver(fn func(Transition)) Option {
	return func(s *Session) { s.observer = fn }
}

type Session struct {
	exercises     []models.ExerciseDefinition
	current       int
	completed     []bool
	elapsed       int
	restRemaining int
	phase         Phase
	startedAt     time.Time
	completedAt   time.Time

	now      func() time.Time
	observer func(Transition)
}

// New builds a session in NotStarted. An empty exercise list is refused with
// ErrEmptyWorkout; there is no fallback list.
func New(exercises []models.ExerciseDefinition, opts ...Option) (*Session, error) {
	if len(exercises) == 0 {
		return nil, ErrEmptyWorkout
	}

	s := &Session{
		exercises: slices.Clone(exercises),
		completed: make([]bool, len(exercises)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) invalid(op string) error {
	return fmt.Errorf("%s while %s: %w", op, s.phase, ErrInvalidState)
}

func (s *Session) transition(to Phase) {
	from := s.phase
	s.phase = to
	if s.observer != nil {
		s.observer(Transition{From: from, To: to, Index: s.current, At: s.now()})
	}
}

func (s *Session) Start() error {
	if s.phase != NotStarted {
		return s.invalid("start")
	}
	s.startedAt = s.now()
	s.transition(Active)
	return nil
}

// Tick accounts for one elapsed whole second. Elapsed time only grows while
// Active; while Resting the rest countdown drains instead. Ticks delivered in
// NotStarted or Complete are ignored.
func (s *Session) Tick() {
	switch s.phase {
	case Active:
		s.elapsed++
	case Resting:
		s.restRemaining--
		if s.restRemaining <= 0 {
			s.endRest()
		}
	}
}

func (s *Session) endRest() {
	s.restRemaining = 0
	s.transition(Active)
}

// Advance marks the current exercise done (completing and skipping are the
// same action). On the last exercise the session completes without a rest;
// otherwise a rest period starts and the index moves to the next exercise.
func (s *Session) Advance() error {
	if s.phase != Active {
		return s.invalid("advance")
	}

	s.completed[s.current] = true

	if s.current == len(s.exercises)-1 {
		s.complete()
		return nil
	}

	rest := s.exercises[s.current].Rest
	if rest <= 0 {
		rest = DefaultRestSeconds
	}
	s.restRemaining = rest
	s.current++
	s.transition(Resting)
	return nil
}

func (s *Session) SkipRest() error {
	if s.phase != Resting {
		return s.invalid("skip rest")
	}
	s.endRest()
	return nil
}

// GoToPrevious steps back one exercise. Completion marks are kept.
func (s *Session) GoToPrevious() error {
	if s.phase != Active || s.current == 0 {
		return s.invalid("go to previous")
	}
	s.current--
	return nil
}

// Finish ends the session early from Active or Resting.
func (s *Session) Finish() error {
	if s.phase != Active && s.phase != Resting {
		return s.invalid("finish")
	}
	s.complete()
	return nil
}

func (s *Session) complete() {
	s.restRemaining = 0
	s.completedAt = s.now()
	s.transition(Complete)
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) IsResting() bool { return s.phase == Resting }
func (s *Session) IsComplete() bool { return s.phase == Complete }
func (s *Session) CurrentIndex() int { return s.current }
func (s *Session) ElapsedSeconds() int { return s.elapsed }
func (s *Session) RestRemainingSeconds() int { return s.restRemaining }
func (s *Session) Len() int { return len(s.exercises) }

func (s *Session) Current() models.ExerciseDefinition {
	return s.exercises[s.current]
}

func (s *Session) IsCompleted(i int) bool {
	return i >= 0 && i < len(s.completed) && s.completed[i]
}

func (s *Session) CompletedCount() int {
	n := 0
	for _, c := range s.completed {
		if c {
			n++
		}
	}
	return n
}

// Progress is the position of the current exercise as a fraction of the workout.
func (s *Session) Progress() float64 {
	return float64(s.current+1) / float64(len(s.exercises))
}

// State is an immutable copy of a session at one point in time.
type State struct {
	Exercises            []models.ExerciseDefinition
	CurrentIndex         int
	CompletedIndices     []int // Ascending.
	ElapsedSeconds       int
	RestRemainingSeconds int
	Phase                Phase
	StartedAt            time.Time
	CompletedAt          time.Time
}

func (s *Session) Snapshot() State {
	var done []int
	for i, c := range s.completed {
		if c {
			done = append(done, i)
		}
	}
	return State{
		Exercises:            slices.Clone(s.exercises),
		CurrentIndex:         s.current,
		CompletedIndices:     done,
		ElapsedSeconds:       s.elapsed,
		RestRemainingSeconds: s.restRemaining,
		Phase:                s.phase,
		StartedAt:            s.startedAt,
		CompletedAt:          s.completedAt,
	}
}
