package player

import (
	"fmt"

	"fitflow/internal/catalog"
)

// Snapshot is the read-only view of a session for rendering
type Snapshot struct {
	WorkoutTitle string
	Title        string
	Instruction  string
	Countdown    *int // nil when no countdown applies (rep exercises)
	Phase        Phase
	Index        int
	Total        int
	Paused       bool
	Status       Status

	// ProgressPercent counts exercises started before the current one, so
	// it stays below 100 while a session is active.
	ProgressPercent float64

	// NextLabel names the forward action: "Done" for rep exercises
	NextLabel string

	// CanGoBack is false on the first exercise
	CanGoBack bool
}

// Snapshot recomputes the display state after any transition
func (s *Session) Snapshot() Snapshot {
	exercises := s.workout.Exercises
	snap := Snapshot{
		WorkoutTitle:    s.workout.Title,
		Phase:           s.state.Phase,
		Index:           s.state.Index,
		Total:           len(exercises),
		Paused:          s.paused,
		Status:          s.status,
		ProgressPercent: 100 * float64(s.state.Index) / float64(len(exercises)),
		NextLabel:       "Next",
		CanGoBack:       s.state.Phase == PhaseResting || s.state.Index > 0,
	}

	remaining := s.remaining

	if s.state.Phase == PhaseResting {
		snap.Title = "REST"
		if next := s.state.Index + 1; next < len(exercises) {
			snap.Instruction = "Next: " + exercises[next].Name
		} else {
			snap.Instruction = "Next: Workout Complete!"
		}
		snap.Countdown = &remaining
		return snap
	}

	ex := s.currentExercise()
	snap.Title = ex.Name
	if ex.Type == catalog.Reps {
		snap.Instruction = fmt.Sprintf("%d Reps", ex.Duration)
		snap.NextLabel = "Done"
	} else {
		snap.Instruction = "Get Ready!"
		snap.Countdown = &remaining
	}
	return snap
}
