package service

import (
	"errors"
	"testing"
	"time"

	"fitflow/internal/analysis"
	"fitflow/internal/catalog"
)

func TestQueriesRequireOnboarding(t *testing.T) {
	tr, db := newTestTracker(t)
	q := NewQueryService(db)

	if _, err := q.GetDashboardData(tr.Snapshot(), time.Now()); !errors.Is(err, ErrNotOnboarded) {
		t.Errorf("GetDashboardData() error = %v", err)
	}
	if _, err := q.GetProgressData(tr.Snapshot()); !errors.Is(err, ErrNotOnboarded) {
		t.Errorf("GetProgressData() error = %v", err)
	}
	if _, err := q.GetPlan(tr.Snapshot()); !errors.Is(err, ErrNotOnboarded) {
		t.Errorf("GetPlan() error = %v", err)
	}
}

func TestGetDashboardData(t *testing.T) {
	tr, db := newTestTracker(t)
	q := NewQueryService(db)
	tr.Onboard(catalog.Beginner, catalog.WeightLoss)

	now := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
	w := catalog.NextWorkout(catalog.Beginner)
	if err := tr.CompleteWorkout(w, w.TotalCalories, now.Add(-time.Hour)); err != nil {
		t.Fatal(err)
	}

	data, err := q.GetDashboardData(tr.Snapshot(), now)
	if err != nil {
		t.Fatalf("GetDashboardData() error = %v", err)
	}

	if data.Totals != (analysis.Totals{TotalCalories: 56, TotalWorkouts: 1}) {
		t.Errorf("Totals = %+v", data.Totals)
	}
	if data.Next == nil || data.Next.Workout.Title != "Full Body Basics" {
		t.Errorf("Next = %+v, want Full Body Basics", data.Next)
	}
	if data.QuickStart == nil || data.QuickStart.Workout != catalog.FocusWorkouts()[0] {
		t.Errorf("QuickStart = %+v, want first focus workout", data.QuickStart)
	}
	if len(data.Next.MuscleGroups) == 0 || len(data.Next.MuscleGroups) > WorkoutCardMuscleGroups {
		t.Errorf("Next.MuscleGroups = %v", data.Next.MuscleGroups)
	}

	if len(data.RecentCompletions) != 1 {
		t.Errorf("RecentCompletions = %d, want 1", len(data.RecentCompletions))
	}
	if len(data.DailyCalories) != CalorieChartDays || len(data.DailyLabels) != CalorieChartDays {
		t.Fatalf("chart lengths = %d/%d", len(data.DailyCalories), len(data.DailyLabels))
	}
	if data.DailyCalories[CalorieChartDays-1] != 56 {
		t.Errorf("today's calories = %v, want 56", data.DailyCalories[CalorieChartDays-1])
	}
	if data.DailyLabels[CalorieChartDays-1] != "Sun" {
		t.Errorf("today's label = %q, want Sun", data.DailyLabels[CalorieChartDays-1])
	}
}

func TestGetProgressData(t *testing.T) {
	tr, db := newTestTracker(t)
	q := NewQueryService(db)
	tr.Onboard(catalog.Beginner, catalog.WeightLoss)
	tr.UpdateHeight("175")

	t.Run("no weight yet", func(t *testing.T) {
		data, err := q.GetProgressData(tr.Snapshot())
		if err != nil {
			t.Fatal(err)
		}
		if data.HasWeight || data.BMI.Known() || data.HasChange {
			t.Errorf("empty progress = %+v", data)
		}
		if data.BMI.Category != analysis.CategoryUnknown {
			t.Errorf("Category = %q, want N/A", data.BMI.Category)
		}
	})

	t.Run("with history", func(t *testing.T) {
		day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		tr.LogWeight("72", day)
		tr.LogWeight("70", day.AddDate(0, 0, 7))

		data, err := q.GetProgressData(tr.Snapshot())
		if err != nil {
			t.Fatal(err)
		}
		if !data.HasWeight || data.CurrentWeight != 70 {
			t.Errorf("CurrentWeight = %v", data.CurrentWeight)
		}
		if data.BMI.BMI != 22.9 || data.BMI.Category != analysis.CategoryHealthy {
			t.Errorf("BMI = %+v, want 22.9 Healthy", data.BMI)
		}
		if !data.HasChange || data.WeightChange != -2 {
			t.Errorf("WeightChange = %v, want -2", data.WeightChange)
		}
		if len(data.WeightSeries) != 2 || data.WeightSeries[0].Label != "Mar 1" {
			t.Errorf("WeightSeries = %+v", data.WeightSeries)
		}
	})
}

func TestQueriesReadSnapshot(t *testing.T) {
	tr, db := newTestTracker(t)
	q := NewQueryService(db)
	tr.Onboard(catalog.Beginner, catalog.WeightLoss)

	snap := tr.Snapshot()
	if snap == tr.Profile() {
		t.Fatal("Snapshot() returned the live profile")
	}

	tr.LogWeight("80", time.Now())
	tr.UpdateHeight("190")
	w := catalog.QuickStart()
	if err := tr.CompleteWorkout(w, w.TotalCalories, time.Now()); err != nil {
		t.Fatal(err)
	}

	data, err := q.GetProgressData(snap)
	if err != nil {
		t.Fatal(err)
	}
	if data.HasWeight || data.Height != 180 || data.Totals.TotalWorkouts != 0 {
		t.Errorf("progress from snapshot saw later changes: %+v", data)
	}

	dash, err := q.GetDashboardData(snap, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if dash.Totals.TotalWorkouts != 0 {
		t.Errorf("dashboard totals = %+v, want the snapshot's", dash.Totals)
	}
	if len(dash.RecentCompletions) != 1 {
		t.Errorf("RecentCompletions = %d, want 1 from the journal", len(dash.RecentCompletions))
	}
}

func TestGetPlan(t *testing.T) {
	tr, db := newTestTracker(t)
	q := NewQueryService(db)
	tr.Onboard(catalog.Beginner, catalog.FullBody)

	weeks, err := q.GetPlan(tr.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	if len(weeks) != 4 {
		t.Fatalf("len = %d, want 4 weeks", len(weeks))
	}
	if !weeks[0].Summary.Authored || weeks[0].Summary.WorkoutDays != 5 || weeks[0].Summary.RestDays != 2 {
		t.Errorf("week 1 summary = %+v", weeks[0].Summary)
	}
	if weeks[2].Summary.Authored {
		t.Error("week 3 should not be authored yet")
	}
}

func TestGetFocusWorkouts(t *testing.T) {
	_, db := newTestTracker(t)
	q := NewQueryService(db)

	cards := q.GetFocusWorkouts()
	if len(cards) != len(catalog.FocusWorkouts()) {
		t.Fatalf("len = %d", len(cards))
	}
	for _, c := range cards {
		if c.Exercises != len(c.Workout.Exercises) {
			t.Errorf("%s: Exercises = %d", c.Workout.Title, c.Exercises)
		}
	}
}
