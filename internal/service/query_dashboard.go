package service

import (
	"time"

	"fitflow/internal/analysis"
	"fitflow/internal/catalog"
	"fitflow/internal/profile"
	"fitflow/internal/store"
)

// DashboardData contains all data needed for the dashboard
type DashboardData struct {
	Level catalog.FitnessLevel
	Goal  catalog.FitnessGoal

	Totals analysis.Totals

	// Next is the first training day of week 1; nil if the level has none
	Next       *WorkoutCard
	QuickStart *WorkoutCard

	RecentCompletions []store.Completion

	// For the calorie chart, oldest day first
	DailyCalories []float64
	DailyLabels   []string
}

// GetDashboardData fetches all data needed for the dashboard from a
// profile snapshot and the journal
func (q *QueryService) GetDashboardData(p *profile.UserProfile, now time.Time) (*DashboardData, error) {
	if p == nil {
		return nil, ErrNotOnboarded
	}

	data := &DashboardData{
		Level:  p.Level,
		Goal:   p.Goal,
		Totals: analysis.AggregateTotals(p.Progress),
	}

	if w := catalog.NextWorkout(p.Level); w != nil {
		card := newWorkoutCard(w)
		data.Next = &card
	}
	if w := catalog.QuickStart(); w != nil {
		card := newWorkoutCard(w)
		data.QuickStart = &card
	}

	recent, err := q.store.RecentCompletions(RecentCompletionsLimit)
	if err != nil {
		return nil, err
	}
	data.RecentCompletions = recent

	days, err := q.store.DailyCalories(CalorieChartDays, now)
	if err != nil {
		return nil, err
	}
	data.DailyCalories, data.DailyLabels = buildCalorieChart(days)

	return data, nil
}

// buildCalorieChart splits the daily series into chart values and labels
func buildCalorieChart(days []store.DayCalories) ([]float64, []string) {
	values := make([]float64, len(days))
	labels := make([]string, len(days))
	for i, d := range days {
		values[i] = float64(d.Calories)
		labels[i] = d.Date.Format("Mon")
	}
	return values, labels
}
