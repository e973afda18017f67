package service

import (
	"fitflow/internal/analysis"
	"fitflow/internal/profile"
)

// ProgressData contains everything shown on the progress screen
type ProgressData struct {
	Height float64
	BMI    analysis.BMIResult

	CurrentWeight float64
	HasWeight     bool

	WeightSeries []analysis.WeightPoint
	WeightChange float64
	HasChange    bool

	Totals analysis.Totals

	HasBeforePhoto bool
	HasAfterPhoto  bool
}

// GetProgressData derives the progress screen from a profile snapshot
func (q *QueryService) GetProgressData(p *profile.UserProfile) (*ProgressData, error) {
	if p == nil {
		return nil, ErrNotOnboarded
	}

	history := p.Progress.WeightHistory
	data := &ProgressData{
		Height:       p.Height,
		BMI:          analysis.CurrentBMI(history, p.Height),
		WeightSeries: analysis.FormatWeightSeries(history),
		Totals:       analysis.AggregateTotals(p.Progress),
	}
	data.CurrentWeight, data.HasWeight = p.LatestWeight()
	data.WeightChange, data.HasChange = analysis.WeightChange(history)

	_, data.HasBeforePhoto = p.Photo(profile.SlotBefore)
	_, data.HasAfterPhoto = p.Photo(profile.SlotAfter)

	return data, nil
}
