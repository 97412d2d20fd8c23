// Package features holds the pure derived-attribute calculations shared by the
// prediction and patient services. Nothing here is cached: every caller
// recomputes from the base fields so the two can never disagree.
package features

import "math"

const (
	AgeGroupYoung      = "young"
	AgeGroupAdult      = "adult"
	AgeGroupMiddleAged = "middle_aged"
	AgeGroupSenior     = "senior"

	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"

	VerdictUnderweight = "Underweight"
	VerdictNormal      = "Normal"
	VerdictObese       = "Obese"
)

// Decimal places used when rounding BMI on each path.
const (
	PatientBMIPrecision    = 2
	PredictionBMIPrecision = 4
)

// BMI returns weight / height² without rounding.
func BMI(weight, height float64) float64 {
	return weight / (height * height)
}

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// AgeGroup buckets an age in years.
func AgeGroup(age int) string {
	switch {
	case age < 25:
		return AgeGroupYoung
	case age < 45:
		return AgeGroupAdult
	case age < 60:
		return AgeGroupMiddleAged
	default:
		return AgeGroupSenior
	}
}

// LifestyleRisk combines smoking status and BMI into a risk bucket.
func LifestyleRisk(smoker bool, bmi float64) string {
	switch {
	case smoker && bmi > 30:
		return RiskHigh
	case smoker || bmi > 27:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Verdict classifies a patient BMI.
func Verdict(bmi float64) string {
	switch {
	case bmi < 18.5:
		return VerdictUnderweight
	case bmi < 30:
		return VerdictNormal
	default:
		return VerdictObese
	}
}
