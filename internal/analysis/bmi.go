package analysis

import (
	"math"

	"fitflow/internal/profile"
)

// BMI category labels
const (
	CategoryUnknown     = "N/A"
	CategoryUnderweight = "Underweight"
	CategoryHealthy     = "Healthy"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// BMIResult is a body mass index with its category
type BMIResult struct {
	BMI      float64 // rounded to 1 decimal, 0 when unknown
	Category string
}

// Known reports whether the result carries a real value
func (r BMIResult) Known() bool {
	return r.Category != CategoryUnknown
}

// ComputeBMI calculates body mass index from weight and height
// BMI = kg / m^2, rounded to one decimal
// Returns {0, "N/A"} when either input is zero or unset.
func ComputeBMI(weightKg, heightCm float64) BMIResult {
	if weightKg <= 0 || heightCm <= 0 {
		return BMIResult{BMI: 0, Category: CategoryUnknown}
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	// Evaluated in order; later matches override the default
	category := CategoryHealthy
	if bmi < 18.5 {
		category = CategoryUnderweight
	}
	if bmi >= 25 && bmi < 30 {
		category = CategoryOverweight
	}
	if bmi >= 30 {
		category = CategoryObese
	}

	return BMIResult{
		BMI:      math.Round(bmi*10) / 10,
		Category: category,
	}
}

// CurrentBMI uses the most recently appended weight entry
func CurrentBMI(history []profile.WeightEntry, heightCm float64) BMIResult {
	if len(history) == 0 {
		return BMIResult{BMI: 0, Category: CategoryUnknown}
	}
	return ComputeBMI(history[len(history)-1].Weight, heightCm)
}
