package service

import (
	"fitflow/internal/analysis"
	"fitflow/internal/catalog"
	"fitflow/internal/store"
)

// QueryService provides read-only queries for the TUI. Profile-derived
// queries take a snapshot from Tracker.Snapshot so they can run inside a
// command.
type QueryService struct {
	store *store.DB
}

// NewQueryService creates a new query service
func NewQueryService(store *store.DB) *QueryService {
	return &QueryService{store: store}
}

// WorkoutCard is a workout with the details shown in lists
type WorkoutCard struct {
	Workout      *catalog.Workout
	Exercises    int
	MuscleGroups []string
}

func newWorkoutCard(w *catalog.Workout) WorkoutCard {
	return WorkoutCard{
		Workout:      w,
		Exercises:    len(w.Exercises),
		MuscleGroups: analysis.TopMuscleGroups(w, WorkoutCardMuscleGroups),
	}
}

// GetFocusWorkouts returns the focus area workouts as cards
func (q *QueryService) GetFocusWorkouts() []WorkoutCard {
	workouts := catalog.FocusWorkouts()
	cards := make([]WorkoutCard, len(workouts))
	for i, w := range workouts {
		cards[i] = newWorkoutCard(w)
	}
	return cards
}

// GetRecentTips returns the latest coach exchanges, newest first
func (q *QueryService) GetRecentTips() ([]store.TipExchange, error) {
	return q.store.RecentTips(RecentTipsLimit)
}
