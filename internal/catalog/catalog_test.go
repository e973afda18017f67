package catalog

import (
	"testing"
)

func TestNewWorkoutTotalCalories(t *testing.T) {
	w := NewWorkout("Test", nil,
		Exercise{Name: "A", Type: Reps, Duration: 10, Calories: 5},
		Exercise{Name: "B", Type: Timed, Duration: 30, Calories: 10},
	)
	if w.TotalCalories != 30 {
		t.Errorf("TotalCalories = %d, want 30", w.TotalCalories)
	}
	if w.Level != nil {
		t.Errorf("Level = %v, want nil", *w.Level)
	}
}

func TestWorkoutTotals(t *testing.T) {
	tests := []struct {
		level FitnessLevel
		title string
		want  int
	}{
		{Beginner, "Full Body Basics", 56},
		{Beginner, "Core & Legs", 54},
		{Intermediate, "Full Body Power", 90},
		{Advanced, "Explosive Power", 126},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			var found *Workout
			for _, d := range PlanFor(tt.level)[0].DailyWorkouts {
				if d.Workout != nil && d.Workout.Title == tt.title {
					found = d.Workout
					break
				}
			}
			if found == nil {
				t.Fatalf("workout %q not found in week 1", tt.title)
			}
			if found.TotalCalories != tt.want {
				t.Errorf("TotalCalories = %d, want %d", found.TotalCalories, tt.want)
			}
			if found.Level == nil || *found.Level != tt.level {
				t.Errorf("Level = %v, want %v", found.Level, tt.level)
			}
		})
	}
}

func TestDailyWorkoutInvariant(t *testing.T) {
	for _, level := range Levels() {
		for _, week := range PlanFor(level) {
			for _, d := range week.DailyWorkouts {
				hasWorkout := d.Workout != nil
				if hasWorkout == d.IsRestDay {
					t.Errorf("%v week %d day %d: workout present=%v, rest=%v",
						level, week.Week, d.Day, hasWorkout, d.IsRestDay)
				}
				if d.Day < 1 || d.Day > 7 {
					t.Errorf("%v week %d: day %d out of range", level, week.Week, d.Day)
				}
			}
			if week.Authored() && len(week.DailyWorkouts) != 7 {
				t.Errorf("%v week %d has %d days, want 7", level, week.Week, len(week.DailyWorkouts))
			}
		}
	}
}

func TestPlanShape(t *testing.T) {
	beginner := PlanFor(Beginner)
	if len(beginner) != 4 {
		t.Fatalf("beginner weeks = %d, want 4", len(beginner))
	}
	if !beginner[1].Authored() || beginner[2].Authored() {
		t.Error("beginner week 2 should be authored, week 3 should not")
	}
	if beginner[1].TotalCalories != 2207 {
		t.Errorf("week 2 TotalCalories = %d, want 2207", beginner[1].TotalCalories)
	}
	if got := beginner[0].WorkoutDays(); got != 5 {
		t.Errorf("WorkoutDays = %d, want 5", got)
	}

	// Week 2 reuses the week 1 exercises under a new title
	w1 := beginner[0].DailyWorkouts[0].Workout
	w2 := beginner[1].DailyWorkouts[0].Workout
	if w2.Title != "W2: Full Body Basics+" {
		t.Errorf("week 2 title = %q", w2.Title)
	}
	if w1.TotalCalories != w2.TotalCalories || len(w1.Exercises) != len(w2.Exercises) {
		t.Error("retitled workout should keep exercises and calories")
	}

	// Repeated days reference the same workout rather than a copy
	if beginner[0].DailyWorkouts[0].Workout != beginner[0].DailyWorkouts[3].Workout {
		t.Error("day 1 and day 4 should share the same workout")
	}
}

func TestNextWorkoutAndQuickStart(t *testing.T) {
	if got := NextWorkout(Advanced); got == nil || got.Title != "Explosive Power" {
		t.Errorf("NextWorkout(Advanced) = %v, want Explosive Power", got)
	}
	if got := QuickStart(); got == nil || got.Title != "Full Body Burn" {
		t.Errorf("QuickStart() = %v, want Full Body Burn", got)
	}
	if n := len(FocusWorkouts()); n != 6 {
		t.Errorf("FocusWorkouts() = %d workouts, want 6", n)
	}
}

func TestIntermediateOverrides(t *testing.T) {
	coreCrusher := PlanFor(Intermediate)[0].DailyWorkouts[1].Workout
	plank := coreCrusher.Exercises[2]
	if plank.Name != "Plank" || plank.Duration != 90 {
		t.Errorf("Core Crusher plank = %+v, want 90s plank", plank)
	}
	// The shared intermediate plank keeps its own duration
	if intermediateExercises["plank"].Duration != 60 {
		t.Errorf("intermediate plank duration = %d, want 60", intermediateExercises["plank"].Duration)
	}
}

func TestParseFitnessLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    FitnessLevel
		wantErr bool
	}{
		{"Beginner", Beginner, false},
		{"advanced", Advanced, false},
		{" Intermediate ", Intermediate, false},
		{"elite", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFitnessLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFitnessLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFitnessLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
