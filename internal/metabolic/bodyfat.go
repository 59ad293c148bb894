package metabolic

import (
	"math"

	"github.com/fitai/plancheck/internal/profile"
)

// BodyFatConfidence grades how trustworthy the resolved body-fat figure is.
type BodyFatConfidence string

const (
	BodyFatConfidenceHigh   BodyFatConfidence = "high"
	BodyFatConfidenceMedium BodyFatConfidence = "medium"
	BodyFatConfidenceLow    BodyFatConfidence = "low"
)

// BodyFatSource names where the resolved figure came from.
type BodyFatSource string

const (
	BodyFatSourceUser BodyFatSource = "user_input"
	BodyFatSourceAI   BodyFatSource = "ai_estimate"
	BodyFatSourceBMI  BodyFatSource = "bmi_estimate"
)

// BodyFatResult is the resolved body-fat percentage with its provenance.
type BodyFatResult struct {
	Percentage float64
	Confidence BodyFatConfidence
	Source     BodyFatSource
}

// aiConfidenceThreshold is the minimum AI confidence score (0-100) before
// the AI estimate outranks the BMI fallback.
const aiConfidenceThreshold = 70

// ResolveBodyFat applies the body-fat priority chain: a user-entered value
// always wins, then a confident AI estimate, then the Deurenberg BMI
// estimate. Non-user sources carry reduced confidence.
func ResolveBodyFat(userInput, aiEstimate, aiConfidence *float64, bmi float64, gender profile.Gender, age int) BodyFatResult {
	if userInput != nil {
		return BodyFatResult{Percentage: *userInput, Confidence: BodyFatConfidenceHigh, Source: BodyFatSourceUser}
	}
	if aiEstimate != nil && aiConfidence != nil && *aiConfidence > aiConfidenceThreshold {
		return BodyFatResult{Percentage: *aiEstimate, Confidence: BodyFatConfidenceMedium, Source: BodyFatSourceAI}
	}
	return BodyFatResult{Percentage: BodyFatFromBMI(bmi, gender, age), Confidence: BodyFatConfidenceLow, Source: BodyFatSourceBMI}
}

// BodyFatFromBMI estimates body fat via the Deurenberg equation,
// 1.20*BMI + 0.23*age - c with the gender constant, rounded to an integer.
func BodyFatFromBMI(bmi float64, gender profile.Gender, age int) float64 {
	var c float64
	switch gender {
	case profile.GenderMale:
		c = 16.2
	case profile.GenderFemale:
		c = 5.4
	default:
		c = 10.8
	}
	return math.Round(1.20*bmi + 0.23*float64(age) - c)
}
