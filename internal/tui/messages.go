package tui

import (
	"fitflow/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
)

// StartWorkoutMsg asks the app to open the player for a workout
type StartWorkoutMsg struct {
	Workout *catalog.Workout
}

// OnboardedMsg is sent when the user confirms level and goal
type OnboardedMsg struct {
	Level catalog.FitnessLevel
	Goal  catalog.FitnessGoal
}

// WorkoutFinishedMsg is sent when the player closes. Completed is false
// when the user exited early, in which case nothing is credited.
type WorkoutFinishedMsg struct {
	Workout   *catalog.Workout
	Calories  int
	Completed bool
}

// startWorkout returns a command that opens the player
func startWorkout(w *catalog.Workout) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		return StartWorkoutMsg{Workout: w}
	}
}
