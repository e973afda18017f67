package player

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fitflow/internal/catalog"
)

const (
	// RestDuration is the rest countdown between exercises, in seconds
	RestDuration = 15

	// TickInterval is how often an unpaused countdown is decremented
	TickInterval = time.Second
)

// ErrEmptyWorkout is returned when starting a workout with no exercises
var ErrEmptyWorkout = errors.New("workout has no exercises")

// Phase is the tag of the playback state
type Phase int

const (
	PhaseExercising Phase = iota
	PhaseResting
)

func (p Phase) String() string {
	if p == PhaseResting {
		return "resting"
	}
	return "exercising"
}

// State is Exercising(Index) or Resting(Index). A rest always follows the
// exercise at the same index.
type State struct {
	Phase Phase
	Index int
}

// Exercising builds the exercise state for index i
func Exercising(i int) State { return State{Phase: PhaseExercising, Index: i} }

// Resting builds the rest state after exercise i
func Resting(i int) State { return State{Phase: PhaseResting, Index: i} }

// Status is the lifecycle of a session
type Status int

const (
	StatusActive Status = iota
	StatusDone          // completed naturally, calories credited
	StatusExited        // abandoned by the user, nothing credited
)

// Session plays one workout. It is not safe for concurrent use; all calls
// are expected to come from a single event loop.
//
// Ticks are tagged: every transition, pause or exit bumps the tag, so a
// tick scheduled before the change is ignored when it arrives. Callers
// schedule at most one tick per tag while Armed reports true.
type Session struct {
	ID uuid.UUID

	// OnTransition, when set, is called after every state change
	OnTransition func(from, to State)

	workout    *catalog.Workout
	onComplete func(calories int)

	state     State
	paused    bool
	remaining int
	tag       int
	status    Status
}

// Start creates a session at Exercising(0), paused. onComplete is invoked
// exactly once with the workout's calorie total when the last rest ends.
func Start(w *catalog.Workout, onComplete func(calories int)) (*Session, error) {
	if w == nil || len(w.Exercises) == 0 {
		return nil, ErrEmptyWorkout
	}
	s := &Session{
		ID:         uuid.New(),
		workout:    w,
		onComplete: onComplete,
	}
	s.enter(Exercising(0))
	return s, nil
}

// enter is the single place where index and phase change. It applies the
// initialization rule for the new state and cancels any pending tick.
func (s *Session) enter(next State) {
	prev := s.state
	s.state = next

	switch {
	case next.Phase == PhaseResting:
		s.remaining = RestDuration
	case s.workout.Exercises[next.Index].Type == catalog.Timed:
		s.remaining = s.workout.Exercises[next.Index].Duration
	default:
		s.remaining = 0
	}
	s.paused = true
	s.tag++

	if s.OnTransition != nil {
		s.OnTransition(prev, next)
	}
}

// Advance moves exercise -> rest, or rest -> next exercise. Advancing out
// of the last rest completes the session.
func (s *Session) Advance() {
	if s.status != StatusActive {
		return
	}

	if s.state.Phase == PhaseExercising {
		s.enter(Resting(s.state.Index))
		return
	}

	if next := s.state.Index + 1; next < len(s.workout.Exercises) {
		s.enter(Exercising(next))
		return
	}
	s.complete()
}

// SkipForward is the user's "next"/"done" action
func (s *Session) SkipForward() {
	s.Advance()
}

// SkipBack leaves a rest for the exercise it follows, otherwise steps to
// the previous exercise. It does nothing on the first exercise.
func (s *Session) SkipBack() {
	if s.status != StatusActive {
		return
	}

	switch {
	case s.state.Phase == PhaseResting:
		s.enter(Exercising(s.state.Index))
	case s.state.Index > 0:
		s.enter(Exercising(s.state.Index - 1))
	}
}

// Pause stops the countdown and invalidates any pending tick
func (s *Session) Pause() {
	if s.status != StatusActive || s.paused {
		return
	}
	s.paused = true
	s.tag++
}

// Resume restarts the countdown
func (s *Session) Resume() {
	if s.status != StatusActive {
		return
	}
	s.paused = false
}

// TogglePause flips between paused and running
func (s *Session) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// Tick handles one elapsed second for the given tag. Stale tags and ticks
// while paused or at zero are ignored. It reports whether the tick was
// applied.
func (s *Session) Tick(tag int) bool {
	if !s.Armed() || tag != s.tag {
		return false
	}

	s.remaining--
	if s.remaining == 0 && s.autoAdvances() {
		s.Advance()
	}
	return true
}

// autoAdvances reports whether reaching zero moves the session on.
// Rep exercises wait for the user.
func (s *Session) autoAdvances() bool {
	if s.state.Phase == PhaseResting {
		return true
	}
	return s.currentExercise().Type == catalog.Timed
}

// Exit abandons the session without crediting any calories
func (s *Session) Exit() {
	if s.status != StatusActive {
		return
	}
	s.status = StatusExited
	s.paused = true
	s.tag++
}

func (s *Session) complete() {
	s.status = StatusDone
	s.paused = true
	s.tag++
	if s.onComplete != nil {
		s.onComplete(s.workout.TotalCalories)
	}
}

// Armed reports whether a tick should be scheduled for the current tag
func (s *Session) Armed() bool {
	return s.status == StatusActive && !s.paused && s.remaining > 0
}

// Tag identifies the currently valid tick
func (s *Session) Tag() int { return s.tag }

// State returns the current phase and index
func (s *Session) State() State { return s.state }

// Paused reports whether the countdown is stopped
func (s *Session) Paused() bool { return s.paused }

// Remaining is the countdown value in seconds
func (s *Session) Remaining() int { return s.remaining }

// Status returns the lifecycle status
func (s *Session) Status() Status { return s.status }

// Finished reports whether the session completed or was exited
func (s *Session) Finished() bool { return s.status != StatusActive }

// Workout returns the workout being played
func (s *Session) Workout() *catalog.Workout { return s.workout }

func (s *Session) currentExercise() catalog.Exercise {
	return s.workout.Exercises[s.state.Index]
}
