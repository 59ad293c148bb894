// plancheck - Plan Validation & Metabolic Calculation Engine
// Source: https://github.com/fitai/plancheck

// Package metabolic is a pure function library for metabolic arithmetic:
// BMR, TDEE, exercise calorie burn, body-fat resolution and the small
// derived quantities the validation engine consumes. The package holds no
// state beyond read-only constant tables and is safe for concurrent use.
package metabolic

import (
	"math"

	"github.com/fitai/plancheck/internal/profile"
)

// occupationMultipliers maps occupation to the base TDEE multiplier.
var occupationMultipliers = map[profile.Occupation]float64{
	profile.OccupationDeskJob:        1.25,
	profile.OccupationLightActive:    1.35,
	profile.OccupationModerateActive: 1.45,
	profile.OccupationHeavyLabor:     1.60,
	profile.OccupationVeryActive:     1.70,
}

// BMR computes basal metabolic rate via Mifflin-St Jeor:
// 10*weight + 6.25*height - 5*age + s, with s = +5 (male), -161 (female),
// -78 (other: the mean of the two sex offsets).
func BMR(weightKG, heightCM float64, age int, gender profile.Gender) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	switch gender {
	case profile.GenderMale:
		return base + 5
	case profile.GenderFemale:
		return base - 161
	default:
		return base - 78
	}
}

// BMI is weight over squared height in metres.
func BMI(weightKG, heightCM float64) float64 {
	m := heightCM / 100
	return weightKG / (m * m)
}

// BaseTDEE scales BMR by the occupation multiplier. Exercise burn is added
// separately on top; occupation covers only non-training daily activity.
func BaseTDEE(bmr float64, occ profile.Occupation) float64 {
	mult, ok := occupationMultipliers[occ]
	if !ok {
		// occupations already passed the profile.Validate contract
		panic("metabolic: unknown occupation " + string(occ))
	}
	return bmr * mult
}

// AgeAdjustedTDEE applies the decade-bracket metabolic slowdown, with an
// extra menopause factor for females aged 45-55 multiplied on top.
func AgeAdjustedTDEE(tdee float64, age int, gender profile.Gender) float64 {
	factor := 1.0
	switch {
	case age >= 60:
		factor = 0.85
	case age >= 50:
		factor = 0.90
	case age >= 40:
		factor = 0.95
	case age >= 30:
		factor = 0.98
	}
	if gender == profile.GenderFemale && age >= 45 && age <= 55 {
		factor *= 0.95
	}
	return tdee * factor
}

// SleepAdjustedTimeline stretches an estimated timeline by 20% per hour of
// sleep under seven. Sleeping seven or more hours leaves it unchanged.
func SleepAdjustedTimeline(timelineWeeks, sleepHours float64) float64 {
	return timelineWeeks * (1 + 0.20*math.Max(0, 7-sleepHours))
}

// Trimester calorie additions and the flat breastfeeding addition; the two
// stack.
const (
	trimester2Calories    = 340
	trimester3Calories    = 450
	breastfeedingCalories = 500
)

// PregnancyCalories adds the pregnancy energy costs; trimester 1 adds nothing.
func PregnancyCalories(tdee float64, pregnant bool, trimester int, breastfeeding bool) float64 {
	if pregnant {
		switch trimester {
		case 2:
			tdee += trimester2Calories
		case 3:
			tdee += trimester3Calories
		}
	}
	if breastfeeding {
		tdee += breastfeedingCalories
	}
	return tdee
}

// WaterIntakeML is the daily water recommendation: 35 ml per kg.
func WaterIntakeML(weightKG float64) float64 {
	return weightKG * 35
}

// FiberGrams is the daily fiber recommendation: 14 g per 1000 kcal.
func FiberGrams(calories float64) float64 {
	return calories / 1000 * 14
}
