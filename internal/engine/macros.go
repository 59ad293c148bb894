package engine

import (
	"math"

	"github.com/fitai/plancheck/internal/profile"
)

// Protein in g per kg of body weight, keyed by effective goal.
const (
	proteinCutting     = 2.2
	proteinRecomp      = 2.4
	proteinMaintenance = 1.6
	proteinBulking     = 1.8
	proteinWeightGain  = 1.6
)

// Carb share of the calories left after protein, by training volume.
const (
	carbShareHighVolume     = 0.50 // advanced and 4+ sessions
	carbShareModerateVolume = 0.45 // 3+ sessions
	carbShareLowVolume      = 0.40
)

// kcal per gram of each macro.
const kcalPerGramProtein, kcalPerGramCarbs, kcalPerGramFat = 4, 4, 9

// macros is the gram split before rounding.
type macros struct {
	proteinG float64
	carbsG   float64
	fatG     float64
}

// proteinPerKG resolves the protein factor. An explicit recomposition goal
// outranks the weight direction; a muscle-gain goal makes a surplus a bulk.
func proteinPerKG(ev *evaluation) float64 {
	switch {
	case ev.workout.HasGoal(profile.GoalRecomposition):
		return proteinRecomp
	case ev.isWeightLoss:
		return proteinCutting
	case ev.isWeightGain && ev.workout.HasGoal(profile.GoalMuscleGain):
		return proteinBulking
	case ev.isWeightGain:
		return proteinWeightGain
	default:
		return proteinMaintenance
	}
}

// carbShare picks the carb fraction of post-protein calories.
func carbShare(ev *evaluation) float64 {
	switch {
	case ev.workout.Intensity == profile.IntensityAdvanced && ev.workout.FrequencyPerWeek >= 4:
		return carbShareHighVolume
	case ev.workout.FrequencyPerWeek >= 3:
		return carbShareModerateVolume
	default:
		return carbShareLowVolume
	}
}

// computeMacros splits target calories into grams: protein is fixed per kg
// first, carbs take their share of the remainder and fat absorbs the rest.
func computeMacros(ev *evaluation) macros {
	proteinG := proteinPerKG(ev) * ev.body.CurrentWeightKG
	remaining := math.Max(0, ev.targetCalories-proteinG*kcalPerGramProtein)
	share := carbShare(ev)
	return macros{
		proteinG: proteinG,
		carbsG:   remaining * share / kcalPerGramCarbs,
		fatG:     remaining * (1 - share) / kcalPerGramFat,
	}
}
