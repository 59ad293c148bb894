package metabolic

import "github.com/fitai/plancheck/internal/profile"

// habitWeight pairs a habit flag accessor with its score contribution.
// Good habits carry positive weights, bad habits negative ones.
type habitWeight struct {
	set    func(profile.Habits) bool
	weight int
}

// readinessBase is the score with no habit flags set.
const readinessBase = 50

// habitWeights order does not change the score; it keeps the table diffable.
var habitWeights = []habitWeight{
	{func(h profile.Habits) bool { return h.DrinksEnoughWater }, 10},
	{func(h profile.Habits) bool { return h.ControlsPortionSize }, 10},
	{func(h profile.Habits) bool { return h.LimitsSugaryDrinks }, 8},
	{func(h profile.Habits) bool { return h.EatsRegularMeals }, 8},
	{func(h profile.Habits) bool { return h.EatsFruitsVegetables }, 8},
	{func(h profile.Habits) bool { return h.LimitsRefinedSugar }, 8},
	{func(h profile.Habits) bool { return h.AvoidsLateNightEats }, 6},
	{func(h profile.Habits) bool { return h.ReadsNutritionLabels }, 6},
	{func(h profile.Habits) bool { return h.IncludesHealthyFats }, 6},
	{func(h profile.Habits) bool { return h.TakesSupplements }, 4},
	{func(h profile.Habits) bool { return h.DrinksCoffee }, -2},
	{func(h profile.Habits) bool { return h.DrinksAlcohol }, -8},
	{func(h profile.Habits) bool { return h.EatsProcessedFood }, -10},
	{func(h profile.Habits) bool { return h.SmokesTobacco }, -10},
}

// DietReadinessScore is a 0-100 readiness measure: a weighted sum of the
// lifestyle habit flags on a base of 50, clamped to the scale.
func DietReadinessScore(h profile.Habits) int {
	score := readinessBase
	for _, hw := range habitWeights {
		if hw.set(h) {
			score += hw.weight
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
