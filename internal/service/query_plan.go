package service

import (
	"fitflow/internal/analysis"
	"fitflow/internal/catalog"
	"fitflow/internal/profile"
)

// PlanWeek is one week of the user's plan with its summary
type PlanWeek struct {
	Plan    catalog.WeeklyPlan
	Summary analysis.WeekSummary
}

// GetPlan returns the weeks for the user's level. Weeks that haven't been
// written yet are included with Summary.Authored false.
func (q *QueryService) GetPlan(p *profile.UserProfile) ([]PlanWeek, error) {
	if p == nil {
		return nil, ErrNotOnboarded
	}

	plans := catalog.PlanFor(p.Level)
	weeks := make([]PlanWeek, len(plans))
	for i, plan := range plans {
		weeks[i] = PlanWeek{
			Plan:    plan,
			Summary: analysis.SummarizeWeek(plan),
		}
	}
	return weeks, nil
}
