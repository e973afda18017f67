package catalog

// Exercise sets per level. Higher levels inherit the lower set and
// override the entries that get harder.
var (
	beginnerExercises = map[string]Exercise{
		"jumpingJacks": {Name: "Jumping Jacks", Type: Timed, Duration: 30, Calories: 10, MuscleGroups: []string{"Full Body"}},
		"pushUps":      {Name: "Push Ups (Knees)", Type: Reps, Duration: 10, Calories: 5, MuscleGroups: []string{"Chest", "Arms"}},
		"squats":       {Name: "Squats", Type: Reps, Duration: 15, Calories: 8, MuscleGroups: []string{"Legs"}},
		"plank":        {Name: "Plank", Type: Timed, Duration: 30, Calories: 5, MuscleGroups: []string{"Abs"}},
		"lunges":       {Name: "Lunges", Type: Reps, Duration: 12, Calories: 7, MuscleGroups: []string{"Legs"}},
		"highKnees":    {Name: "High Knees", Type: Timed, Duration: 30, Calories: 9, MuscleGroups: []string{"Legs", "Full Body"}},
		"crunches":     {Name: "Crunches", Type: Reps, Duration: 20, Calories: 6, MuscleGroups: []string{"Abs"}},
	}

	intermediateExercises = extend(beginnerExercises, map[string]Exercise{
		"pushUps":    {Name: "Push Ups", Type: Reps, Duration: 15, Calories: 8, MuscleGroups: []string{"Chest", "Arms"}},
		"burpees":    {Name: "Burpees", Type: Reps, Duration: 10, Calories: 15, MuscleGroups: []string{"Full Body"}},
		"plank":      {Name: "Plank", Type: Timed, Duration: 60, Calories: 10, MuscleGroups: []string{"Abs"}},
		"jumpSquats": {Name: "Jump Squats", Type: Reps, Duration: 15, Calories: 12, MuscleGroups: []string{"Legs"}},
	})

	advancedExercises = extend(intermediateExercises, map[string]Exercise{
		"burpees":          {Name: "Burpees", Type: Reps, Duration: 15, Calories: 20, MuscleGroups: []string{"Full Body"}},
		"pistolSquats":     {Name: "Pistol Squats", Type: Reps, Duration: 10, Calories: 15, MuscleGroups: []string{"Legs"}},
		"pullUps":          {Name: "Pull Ups (if bar available)", Type: Reps, Duration: 8, Calories: 12, MuscleGroups: []string{"Back", "Arms"}},
		"handstandPushups": {Name: "Handstand Pushups (Wall)", Type: Reps, Duration: 5, Calories: 18, MuscleGroups: []string{"Arms", "Shoulders"}},
	})
)

func extend(base, overrides map[string]Exercise) map[string]Exercise {
	out := make(map[string]Exercise, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

func levelPtr(l FitnessLevel) *FitnessLevel {
	return &l
}

// plans is built once at init and never mutated afterwards
var plans = buildPlans()

func buildPlans() map[FitnessLevel][]WeeklyPlan {
	b, i, a := beginnerExercises, intermediateExercises, advancedExercises

	beginner := levelPtr(Beginner)
	bDay1 := NewWorkout("Full Body Basics", beginner, b["jumpingJacks"], b["squats"], b["pushUps"], b["plank"])
	bDay2 := NewWorkout("Core & Legs", beginner, b["highKnees"], b["lunges"], b["crunches"], b["plank"])
	bDay3 := NewWorkout("Full Body Blast", beginner, b["jumpingJacks"], b["squats"], b["pushUps"], b["lunges"])

	bW2Day1 := bDay1.Retitled("W2: Full Body Basics+")
	bW2Day2 := bDay2.Retitled("W2: Core & Legs+")
	bW2Day3 := bDay3.Retitled("W2: Full Body Blast+")

	intermediate := levelPtr(Intermediate)
	iDay1 := NewWorkout("Full Body Power", intermediate, i["burpees"], i["jumpSquats"], i["pushUps"], i["plank"])
	iDay2 := NewWorkout("Core Crusher", intermediate, i["crunches"], i["highKnees"], i["plank"].WithDuration(90), i["burpees"])
	iDay3 := NewWorkout("Legs & Arms", intermediate, i["jumpSquats"], i["lunges"], i["pushUps"],
		Exercise{Name: "Diamond Pushups", Type: Reps, Duration: 10, Calories: 9, MuscleGroups: []string{"Arms", "Chest"}})

	advanced := levelPtr(Advanced)
	aDay1 := NewWorkout("Explosive Power", advanced, a["burpees"], a["pistolSquats"], a["handstandPushups"], a["plank"].WithDuration(120))
	aDay2 := NewWorkout("Advanced Core", advanced,
		Exercise{Name: "V-Ups", Type: Reps, Duration: 20, Calories: 15, MuscleGroups: []string{"Abs"}},
		Exercise{Name: "Hanging Leg Raises", Type: Reps, Duration: 15, Calories: 18, MuscleGroups: []string{"Abs"}},
		a["burpees"])
	aDay3 := NewWorkout("Strength & Endurance", advanced, a["pullUps"], a["pistolSquats"], a["handstandPushups"], a["jumpSquats"])

	return map[FitnessLevel][]WeeklyPlan{
		Beginner: {
			{Week: 1, TotalCalories: 1780, DailyWorkouts: []DailyWorkout{
				TrainingDay(1, bDay1),
				TrainingDay(2, bDay2),
				RestDay(3),
				TrainingDay(4, bDay1),
				TrainingDay(5, bDay3),
				RestDay(6),
				TrainingDay(7, bDay2),
			}},
			{Week: 2, TotalCalories: 2207, DailyWorkouts: []DailyWorkout{
				TrainingDay(1, bW2Day1),
				TrainingDay(2, bW2Day2),
				RestDay(3),
				TrainingDay(4, bW2Day1),
				TrainingDay(5, bW2Day3),
				RestDay(6),
				TrainingDay(7, bW2Day2),
			}},
			// Weeks 3 and 4 are not authored yet; only their totals are known
			{Week: 3, TotalCalories: 2860},
			{Week: 4, TotalCalories: 3470},
		},
		Intermediate: {
			{Week: 1, TotalCalories: 2500, DailyWorkouts: []DailyWorkout{
				TrainingDay(1, iDay1),
				TrainingDay(2, iDay2),
				RestDay(3),
				TrainingDay(4, iDay3),
				TrainingDay(5, iDay1),
				RestDay(6),
				TrainingDay(7, iDay2),
			}},
		},
		Advanced: {
			{Week: 1, TotalCalories: 3500, DailyWorkouts: []DailyWorkout{
				TrainingDay(1, aDay1),
				TrainingDay(2, aDay2),
				RestDay(3),
				TrainingDay(4, aDay3),
				TrainingDay(5, aDay1),
				TrainingDay(6, aDay2),
				RestDay(7),
			}},
		},
	}
}

// PlanFor returns the four-week plan for a level. The returned slice must
// be treated as read-only.
func PlanFor(level FitnessLevel) []WeeklyPlan {
	return plans[level]
}

var focusWorkouts = []*Workout{
	NewWorkout("Full Body Burn", nil,
		beginnerExercises["jumpingJacks"], beginnerExercises["squats"], beginnerExercises["pushUps"],
		beginnerExercises["plank"], beginnerExercises["lunges"]),
	NewWorkout("Abs Annihilator", nil,
		beginnerExercises["crunches"],
		Exercise{Name: "Leg Raises", Type: Reps, Duration: 20, Calories: 7, MuscleGroups: []string{"Abs"}},
		beginnerExercises["plank"],
		Exercise{Name: "Russian Twists", Type: Reps, Duration: 20, Calories: 8, MuscleGroups: []string{"Abs"}}),
	NewWorkout("Chest Pump", nil,
		beginnerExercises["pushUps"],
		Exercise{Name: "Wide Pushups", Type: Reps, Duration: 15, Calories: 6, MuscleGroups: []string{"Chest"}},
		Exercise{Name: "Incline Pushups", Type: Reps, Duration: 15, Calories: 5, MuscleGroups: []string{"Chest"}}),
	NewWorkout("Arm Builder", nil,
		Exercise{Name: "Diamond Pushups", Type: Reps, Duration: 10, Calories: 9, MuscleGroups: []string{"Arms", "Chest"}},
		Exercise{Name: "Arm Circles", Type: Timed, Duration: 60, Calories: 4, MuscleGroups: []string{"Arms"}},
		Exercise{Name: "Tricep Dips (Chair)", Type: Reps, Duration: 15, Calories: 7, MuscleGroups: []string{"Arms"}}),
	NewWorkout("Leg Day", nil,
		beginnerExercises["squats"], beginnerExercises["lunges"],
		Exercise{Name: "Glute Bridges", Type: Reps, Duration: 20, Calories: 6, MuscleGroups: []string{"Legs"}},
		Exercise{Name: "Calf Raises", Type: Reps, Duration: 25, Calories: 4, MuscleGroups: []string{"Legs"}}),
	NewWorkout("Back Strength", nil,
		Exercise{Name: "Supermans", Type: Reps, Duration: 15, Calories: 6, MuscleGroups: []string{"Back"}},
		Exercise{Name: "Bird Dog", Type: Reps, Duration: 12, Calories: 5, MuscleGroups: []string{"Back", "Abs"}},
		Exercise{Name: "Good Mornings (Bodyweight)", Type: Reps, Duration: 15, Calories: 5, MuscleGroups: []string{"Back", "Legs"}}),
}

// FocusWorkouts returns the targeted muscle-group routines
func FocusWorkouts() []*Workout {
	return focusWorkouts
}

// NextWorkout is the first non-rest workout of week 1 for the level
func NextWorkout(level FitnessLevel) *Workout {
	weeks := PlanFor(level)
	if len(weeks) == 0 {
		return nil
	}
	return weeks[0].FirstWorkout()
}

// QuickStart is the workout offered on the dashboard for a fast session
func QuickStart() *Workout {
	if len(focusWorkouts) == 0 {
		return nil
	}
	return focusWorkouts[0]
}
