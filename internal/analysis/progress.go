package analysis

import (
	"time"

	"fitflow/internal/catalog"
	"fitflow/internal/profile"
)

// ChartDateLayout is the short month/day label used on charts ("Jan 2")
const ChartDateLayout = "Jan 2"

// WeightPoint is a weight entry prepared for charting
type WeightPoint struct {
	Label  string
	Weight float64
}

// FormatWeightSeries converts stored entries to chart points, preserving order
func FormatWeightSeries(entries []profile.WeightEntry) []WeightPoint {
	points := make([]WeightPoint, 0, len(entries))
	for _, e := range entries {
		label := e.Date
		if d, err := time.Parse(profile.DateLayout, e.Date); err == nil {
			label = d.Format(ChartDateLayout)
		}
		points = append(points, WeightPoint{Label: label, Weight: e.Weight})
	}
	return points
}

// Weights extracts the y values of a series
func Weights(points []WeightPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Weight
	}
	return out
}

// WeightChange returns last minus first weight.
// ok is false with fewer than two entries.
func WeightChange(entries []profile.WeightEntry) (delta float64, ok bool) {
	if len(entries) < 2 {
		return 0, false
	}
	return entries[len(entries)-1].Weight - entries[0].Weight, true
}

// Totals are the running accumulators shown on the dashboard
type Totals struct {
	TotalCalories int
	TotalWorkouts int
}

// AggregateTotals passes the running totals through unchanged; they are
// accumulators, not derived from history.
func AggregateTotals(p profile.Progress) Totals {
	return Totals{
		TotalCalories: p.CaloriesBurned,
		TotalWorkouts: p.WorkoutsCompleted,
	}
}

// WeekSummary describes one week of a plan
type WeekSummary struct {
	Week          int
	TotalCalories int
	WorkoutDays   int
	RestDays      int
	MuscleGroups  []string
	Authored      bool
}

// SummarizeWeek counts workout and rest days and collects muscle groups
func SummarizeWeek(w catalog.WeeklyPlan) WeekSummary {
	s := WeekSummary{
		Week:          w.Week,
		TotalCalories: w.TotalCalories,
		Authored:      w.Authored(),
	}

	seen := make(map[string]bool)
	for _, d := range w.DailyWorkouts {
		if d.IsRestDay || d.Workout == nil {
			s.RestDays++
			continue
		}
		s.WorkoutDays++
		for _, g := range TopMuscleGroups(d.Workout, 0) {
			if !seen[g] {
				seen[g] = true
				s.MuscleGroups = append(s.MuscleGroups, g)
			}
		}
	}
	return s
}

// TopMuscleGroups returns the first n distinct muscle groups in exercise
// order. n <= 0 returns all of them.
func TopMuscleGroups(w *catalog.Workout, n int) []string {
	if w == nil {
		return nil
	}
	var groups []string
	seen := make(map[string]bool)
	for _, ex := range w.Exercises {
		for _, g := range ex.MuscleGroups {
			if seen[g] {
				continue
			}
			seen[g] = true
			groups = append(groups, g)
			if n > 0 && len(groups) == n {
				return groups
			}
		}
	}
	return groups
}
