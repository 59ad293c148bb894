package engine

import (
	"fmt"
	"math"

	"github.com/fitai/plancheck/internal/profile"
)

// Deficit caps as a fraction of TDEE. High stress or any medical condition
// tightens the default; the two share the same floor and never stack.
// deficitRoundingSlack absorbs the whole-calorie rounding of a capped
// target wherever the realized deficit is compared against a cap threshold
// (refeed eligibility, the medical-deficit advisory).
const (
	defaultDeficitCap    = 0.20
	reducedDeficitCap    = 0.15
	deficitRoundingSlack = 0.0005
)

// applyDeficitLimit caps the weight-loss deficit at the allowed fraction
// of TDEE. Stress is checked before medical conditions, so when both apply
// the recorded reason is stress. Capped calories are floored at BMR; when
// the cap bites, the weekly rate is recomputed and an advisory is queued.
func applyDeficitLimit(ev *evaluation, dailyDeficit float64) {
	limit := defaultDeficitCap
	reason := ""
	if ev.body.Stress() == profile.StressHigh {
		limit = reducedDeficitCap
		reason = "high stress level"
	} else if len(ev.body.MedicalConditions) > 0 {
		limit = reducedDeficitCap
		reason = "medical conditions on file"
	}

	if dailyDeficit/ev.tdee <= limit {
		return
	}

	adjusted := math.Round(ev.tdee * (1 - limit))
	if adjusted < ev.bmr {
		adjusted = ev.bmr
	}

	ev.targetCalories = adjusted
	ev.weeklyRate = (ev.tdee - adjusted) * 7 / kcalPerKG
	ev.deficitLimited = true
	ev.deficitLimitReason = reason

	msg := fmt.Sprintf(
		"Your requested pace needs a deficit above %.0f%% of your daily burn, which is unsafe. Calories were raised to %.0f and the expected pace is now %.2f kg/week.",
		limit*100, adjusted, round2(ev.weeklyRate))
	if reason != "" {
		msg += " The cap was tightened due to " + reason + "."
	}
	f := warning(CodeDeficitLimited, msg,
		"Extend your timeline to reach the original target weight at this safer pace.")
	f.Impact = round2((ev.requiredWeeklyRate - ev.weeklyRate) / ev.requiredWeeklyRate * 100)
	ev.pending = append(ev.pending, *f)
}
