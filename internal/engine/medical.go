package engine

import "math"

// Safety rails for medical overrides: the TDEE factor never moves more than
// 15% off baseline and carbs never drop below 70% of the pre-medical split.
const (
	tdeeAdjustmentLimit = 0.15
	carbFloorFraction   = 0.70
)

const (
	hypothyroidFactor  = 0.90
	hyperthyroidFactor = 1.15
	insulinCarbFactor  = 0.75
)

// applyMedicalAdjustments layers condition-driven overrides onto the
// computed tdee/target/macros. Within each category only the
// highest-priority condition applies; categories compose. Thyroid factors
// scale tdee and target together, then macros are recomputed. Hypothyroid
// outranks hyperthyroid when both are present.
func applyMedicalAdjustments(ev *evaluation, m *macros) *Adjustments {
	adj := &Adjustments{}
	conditions := ev.body.MedicalConditions
	if len(conditions) == 0 {
		return adj
	}

	factor := 1.0
	switch {
	case isHypothyroid(conditions):
		factor = hypothyroidFactor
		adj.MedicalNotes = append(adj.MedicalNotes, "Daily energy expenditure reduced 10% for hypothyroidism.")
	case hasCondition(conditions, "hyperthyroid", "graves"):
		factor = hyperthyroidFactor
		adj.MedicalNotes = append(adj.MedicalNotes, "Daily energy expenditure increased 15% for hyperthyroidism.")
	}
	factor = math.Max(1-tdeeAdjustmentLimit, math.Min(1+tdeeAdjustmentLimit, factor))

	if factor != 1.0 {
		ev.tdee *= factor
		ev.targetCalories *= factor
		if ev.isWeightLoss {
			// re-apply the blocking floors, checked pre-adjustment
			floor := math.Max(ev.bmr, absoluteMinimums[ev.personal.Gender])
			if ev.targetCalories < floor {
				ev.targetCalories = floor
			}
		}
		*m = computeMacros(ev)
	}

	if hasCondition(conditions, "pcos", "diabetes", "insulin resistance", "prediabetes") {
		baseline := m.carbsG
		reduced := math.Max(baseline*insulinCarbFactor, baseline*carbFloorFraction)
		freedCalories := (baseline - reduced) * kcalPerGramCarbs
		m.carbsG = reduced
		m.fatG += freedCalories / kcalPerGramFat
		adj.MedicalNotes = append(adj.MedicalNotes, "Carbohydrates reduced 25% for insulin resistance; the calories moved to fats.")
	}

	if hasCondition(conditions, "heart", "hypertension", "high blood pressure", "cholesterol", "cardio") {
		adj.MedicalNotes = append(adj.MedicalNotes, "Cardiovascular condition on file: no calorie change applied; obtain physician clearance before high-intensity training.")
	}

	return adj
}

// isHypothyroid matches hypothyroidism including a bare "thyroid" entry,
// without catching "hyperthyroid".
func isHypothyroid(conditions []string) bool {
	if hasCondition(conditions, "hypothyroid", "hashimoto") {
		return true
	}
	for _, c := range conditions {
		if hasCondition([]string{c}, "thyroid") && !hasCondition([]string{c}, "hyper") {
			return true
		}
	}
	return false
}
