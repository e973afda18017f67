package catalog

import (
	"fmt"
	"strings"
)

// FitnessLevel is the closed set of experience levels a plan is authored for
type FitnessLevel int

const (
	Beginner FitnessLevel = iota
	Intermediate
	Advanced
)

// Levels returns every fitness level in display order
func Levels() []FitnessLevel {
	return []FitnessLevel{Beginner, Intermediate, Advanced}
}

func (l FitnessLevel) String() string {
	switch l {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	}
	return fmt.Sprintf("FitnessLevel(%d)", int(l))
}

// ParseFitnessLevel converts a display name (case-insensitive) to a FitnessLevel
func ParseFitnessLevel(s string) (FitnessLevel, error) {
	for _, l := range Levels() {
		if strings.EqualFold(l.String(), strings.TrimSpace(s)) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown fitness level %q", s)
}

// FitnessGoal is what the user wants to get out of the plan
type FitnessGoal int

const (
	WeightLoss FitnessGoal = iota
	MuscleGain
	FullBody
)

// Goals returns every goal in display order
func Goals() []FitnessGoal {
	return []FitnessGoal{WeightLoss, MuscleGain, FullBody}
}

func (g FitnessGoal) String() string {
	switch g {
	case WeightLoss:
		return "Weight Loss"
	case MuscleGain:
		return "Muscle Gain"
	case FullBody:
		return "Full Body Fitness"
	}
	return fmt.Sprintf("FitnessGoal(%d)", int(g))
}

// ExerciseType determines how an exercise is measured
type ExerciseType int

const (
	Reps  ExerciseType = iota // Duration is a rep count
	Timed                     // Duration is seconds
)

func (t ExerciseType) String() string {
	if t == Timed {
		return "timed"
	}
	return "reps"
}

// Exercise is a single movement in a workout
type Exercise struct {
	Name         string
	Type         ExerciseType
	Duration     int // seconds for Timed, reps for Reps
	Calories     int // per-set estimate
	MuscleGroups []string
}

// WithDuration returns a copy of the exercise with a different duration
func (e Exercise) WithDuration(d int) Exercise {
	e.Duration = d
	return e
}

// SetsPerExercise is the number of sets the calorie estimate assumes
const SetsPerExercise = 2

// Workout is an ordered list of exercises; order is execution order
type Workout struct {
	Title         string
	Exercises     []Exercise
	TotalCalories int
	Level         *FitnessLevel // nil for focus-area workouts
}

// NewWorkout builds a workout and precomputes its calorie total
func NewWorkout(title string, level *FitnessLevel, exercises ...Exercise) *Workout {
	total := 0
	for _, ex := range exercises {
		total += ex.Calories * SetsPerExercise
	}
	return &Workout{
		Title:         title,
		Exercises:     exercises,
		TotalCalories: total,
		Level:         level,
	}
}

// Retitled returns a new workout sharing the exercises under another title
func (w *Workout) Retitled(title string) *Workout {
	return &Workout{
		Title:         title,
		Exercises:     w.Exercises,
		TotalCalories: w.TotalCalories,
		Level:         w.Level,
	}
}

// DailyWorkout is one day of a weekly plan. Exactly one of Workout != nil
// and IsRestDay holds; use TrainingDay and RestDay to build it.
type DailyWorkout struct {
	Day       int // 1-7
	Workout   *Workout
	IsRestDay bool
}

// TrainingDay schedules a workout on the given day
func TrainingDay(day int, w *Workout) DailyWorkout {
	return DailyWorkout{Day: day, Workout: w}
}

// RestDay schedules recovery on the given day
func RestDay(day int) DailyWorkout {
	return DailyWorkout{Day: day, IsRestDay: true}
}

// WeeklyPlan is one week of a four-week plan
type WeeklyPlan struct {
	Week          int // 1-based
	DailyWorkouts []DailyWorkout
	TotalCalories int
}

// Authored reports whether the week's days have been written yet
func (w WeeklyPlan) Authored() bool {
	return len(w.DailyWorkouts) > 0
}

// WorkoutDays counts the non-rest days of the week
func (w WeeklyPlan) WorkoutDays() int {
	n := 0
	for _, d := range w.DailyWorkouts {
		if !d.IsRestDay {
			n++
		}
	}
	return n
}

// FirstWorkout returns the first scheduled (non-rest) workout, or nil
func (w WeeklyPlan) FirstWorkout() *Workout {
	for _, d := range w.DailyWorkouts {
		if !d.IsRestDay && d.Workout != nil {
			return d.Workout
		}
	}
	return nil
}
