package engine

import (
	"fmt"
	"strings"

	"github.com/fitai/plancheck/internal/metabolic"
	"github.com/fitai/plancheck/internal/profile"
)

// lowSleepHours is the advisory sleep threshold; it also feeds the
// compound risk tally.
const lowSleepHours = 7.0

// metabolismMedications are fragments of medication names known to shift
// energy expenditure or appetite.
var metabolismMedications = []string{
	"levothyroxine", "insulin", "metformin", "prednisone", "corticosteroid",
	"beta blocker", "metoprolol", "propranolol", "olanzapine", "quetiapine",
}

// warningChecks run in this fixed order once every blocking rule has
// cleared; each check is independent.
var warningChecks = []func(ev *evaluation) *Finding{
	warnAggressiveTimeline, warnVeryAggressiveTimeline, warnLowSleep,
	warnElderly, warnTeenAthlete, warnNoExercise, warnHighTrainingVolume,
	warnMenopause, warnMedicalAggressiveDeficit, warnRecompProgress,
	warnAlcohol, warnTobacco, warnHeartCondition, warnGoalInterference,
	warnObesityRate, warnEquipmentGoalMismatch, warnLimitationIntensity,
	warnDietReadiness, warnVeganProteinConflict, warnMedicationInteraction,
	warnExcessiveLeanGain, warnCompoundRiskFactors, warnOccupationMismatch,
}

func runWarningChecks(ev *evaluation) []Finding {
	var warnings []Finding
	for _, check := range warningChecks {
		if f := check(ev); f != nil {
			warnings = append(warnings, *f)
		}
	}
	return warnings
}

// hasCondition reports whether any entry contains one of the fragments
// (case-insensitive).
func hasCondition(conditions []string, fragments ...string) bool {
	for _, c := range conditions {
		lc := strings.ToLower(c)
		for _, frag := range fragments {
			if strings.Contains(lc, frag) {
				return true
			}
		}
	}
	return false
}

// Pacing bands: above 0.75% of body weight per week is aggressive, above
// 1% very aggressive. 1.5% and up is blocked outright.
func warnAggressiveTimeline(ev *evaluation) *Finding {
	bw := ev.body.CurrentWeightKG
	if !ev.isWeightLoss || ev.requiredWeeklyRate <= bw*aggressiveRateFraction || ev.requiredWeeklyRate > bw*0.01 {
		return nil
	}
	return warning(CodeAggressiveTimeline,
		fmt.Sprintf("Losing %.2f kg/week is an aggressive pace; expect hunger and fatigue.", ev.requiredWeeklyRate),
		"Prioritize protein and resistance training to protect muscle.")
}

func warnVeryAggressiveTimeline(ev *evaluation) *Finding {
	bw := ev.body.CurrentWeightKG
	if !ev.isWeightLoss || ev.requiredWeeklyRate <= bw*0.01 || ev.requiredWeeklyRate > bw*extremeRateFraction {
		return nil
	}
	return warning(CodeVeryAggressiveTimeline,
		fmt.Sprintf("Losing %.2f kg/week exceeds 1%% of your body weight per week; muscle loss and rebound are likely.", ev.requiredWeeklyRate),
		"Consider extending your timeline by a few weeks.")
}

func warnLowSleep(ev *evaluation) *Finding {
	if ev.sleepHours >= lowSleepHours {
		return nil
	}
	f := warning(CodeLowSleepQuality,
		fmt.Sprintf("You sleep %.1f hours; short sleep slows fat loss and recovery.", ev.sleepHours),
		"Aim for 7-9 hours; progress runs roughly 10% slower per hour short.")
	f.Impact = round2(10 * (lowSleepHours - ev.sleepHours))
	return f
}

func warnElderly(ev *evaluation) *Finding {
	if ev.personal.Age < 75 {
		return nil
	}
	return warning(CodeElderlyPlanCaution, "At 75+, weight changes need closer supervision and a slower ramp-up.",
		"Review this plan with your physician.")
}

// Minors training 6+ days a week on a deficit risk RED-S.
func warnTeenAthlete(ev *evaluation) *Finding {
	if ev.personal.Age > 17 || !ev.isWeightLoss || ev.workout.FrequencyPerWeek < 6 {
		return nil
	}
	return warning(CodeTeenAthleteRestriction,
		"High training volume plus a calorie deficit during adolescence can impair growth.",
		"Keep the deficit mild and check in regularly with a physician or dietitian.")
}

func warnNoExercise(ev *evaluation) *Finding {
	if !ev.isWeightLoss || ev.workout.FrequencyPerWeek > 0 || ev.requiredWeeklyRate > ev.body.CurrentWeightKG*aggressiveRateFraction {
		return nil
	}
	return warning(CodeNoExercisePlan, "Your plan has no scheduled exercise; weight loss will rely entirely on diet.",
		"Even two short strength sessions per week markedly improve body composition.")
}

func warnHighTrainingVolume(ev *evaluation) *Finding {
	if ev.workout.WeeklyTrainingHours() <= 12 || ev.workout.Intensity != profile.IntensityAdvanced {
		return nil
	}
	return warning(CodeHighTrainingVolume,
		fmt.Sprintf("%.1f hours/week at advanced intensity is a heavy load.", ev.workout.WeeklyTrainingHours()),
		"Schedule a deload week every 4-6 weeks.")
}

func warnMenopause(ev *evaluation) *Finding {
	if ev.personal.Gender != profile.GenderFemale || ev.personal.Age < 45 || ev.personal.Age > 55 {
		return nil
	}
	return warning(CodeMenopauseImpact,
		"Hormonal changes between 45 and 55 typically slow metabolism; your targets already include this adjustment.",
		"Strength training and adequate protein counteract the shift effectively.")
}

// warnMedicalAggressiveDeficit fires when a medical condition rides the
// steepest allowed deficit. The capped target was rounded to whole
// calories, so the comparison carries the refeed scheduler's rounding
// slack: a plan pinned at 15% must not dodge the advisory because the
// rounding landed a fraction under.
func warnMedicalAggressiveDeficit(ev *evaluation) *Finding {
	if len(ev.body.MedicalConditions) == 0 || ev.deficitPercent() < reducedDeficitCap-deficitRoundingSlack {
		return nil
	}
	return warning(CodeMedicalAggressiveDef, "You are combining a medical condition with the steepest allowed deficit.",
		"Check in with your doctor more frequently while on this plan.")
}

func warnRecompProgress(ev *evaluation) *Finding {
	if !ev.workout.HasGoal(profile.GoalRecomposition) || ev.workout.ExperienceYears < 2 {
		return nil
	}
	return warning(CodeRecompSlowProgress, "Body recomposition progresses slowly for trained individuals.",
		"Consider dedicated cutting and building phases for faster results.")
}

func warnAlcohol(ev *evaluation) *Finding {
	if !ev.diet.Habits.DrinksAlcohol {
		return nil
	}
	return warning(CodeAlcoholImpact, "Regular alcohol adds empty calories and blunts muscle recovery.",
		"Budget drinks into your calorie target and keep training days dry.")
}

func warnTobacco(ev *evaluation) *Finding {
	if !ev.diet.Habits.SmokesTobacco {
		return nil
	}
	return warning(CodeTobaccoImpact, "Tobacco use reduces cardiovascular capacity and recovery quality.",
		"Quitting will improve training results more than any diet change.")
}

func warnHeartCondition(ev *evaluation) *Finding {
	if !hasCondition(ev.body.MedicalConditions, "heart", "hypertension", "high blood pressure", "cardio") {
		return nil
	}
	return warning(CodeHeartConditionClearance, "A cardiovascular condition is on file.",
		"Obtain physician clearance before starting, especially for high-intensity work.")
}

func warnGoalInterference(ev *evaluation) *Finding {
	if !ev.workout.HasGoal(profile.GoalMuscleGain) || !ev.workout.HasGoal(profile.GoalEndurance) {
		return nil
	}
	return warning(CodeGoalInterference,
		"Muscle gain and endurance training partially interfere; progress on both will be slower.",
		"Separate hard cardio and lifting by at least six hours, or periodize by block.")
}

func warnObesityRate(ev *evaluation) *Finding {
	if !ev.isWeightLoss || ev.bmi < 35 {
		return nil
	}
	return warning(CodeObesityRateGuidance,
		"At a BMI of 35 or more, a faster initial rate (up to 1% of body weight per week) is acceptable.",
		"Re-evaluate the pace after the first 5-10% of body weight is lost.")
}

func warnEquipmentGoalMismatch(ev *evaluation) *Finding {
	if !ev.workout.HasGoal(profile.GoalMuscleGain) || len(ev.workout.WorkoutTypes) == 0 {
		return nil
	}
	for _, t := range ev.workout.WorkoutTypes {
		switch t {
		case "strength", "hiit", "sports":
			return nil
		}
	}
	return warning(CodeEquipmentGoalMismatch,
		"Your goal is muscle gain but no selected workout type provides progressive resistance.",
		"Add strength training to your workout types.")
}

func warnLimitationIntensity(ev *evaluation) *Finding {
	if len(ev.body.PhysicalLimitations) == 0 || ev.workout.Intensity != profile.IntensityAdvanced {
		return nil
	}
	return warning(CodeLimitationIntensity, "Advanced intensity with physical limitations on file raises injury risk.",
		"Start at intermediate intensity and progress only when pain-free.")
}

func warnDietReadiness(ev *evaluation) *Finding {
	score := metabolic.DietReadinessScore(ev.diet.Habits)
	if score >= 40 {
		return nil
	}
	f := warning(CodeLowDietReadiness,
		fmt.Sprintf("Your diet readiness score is %d/100; current habits will make this plan hard to sustain.", score),
		"Build one habit at a time, starting with regular meals and water intake.")
	f.Impact = float64(40 - score)
	return f
}

func warnVeganProteinConflict(ev *evaluation) *Finding {
	if ev.diet.DietType != "vegan" {
		return nil
	}
	for _, a := range ev.diet.Allergies {
		la := strings.ToLower(a)
		if strings.Contains(la, "soy") || strings.Contains(la, "legume") ||
			strings.Contains(la, "nut") || strings.Contains(la, "pea") {
			return warning(CodeVeganProteinConflict,
				"A vegan diet combined with your allergies removes most concentrated protein sources.",
				"Plan protein around grains, seeds and tolerated alternatives.")
		}
	}
	return nil
}

func warnMedicationInteraction(ev *evaluation) *Finding {
	for _, med := range ev.body.Medications {
		if hasCondition([]string{med}, metabolismMedications...) {
			return warning(CodeMedicationInteraction,
				fmt.Sprintf("%s can shift energy expenditure or appetite; calorie targets may need adjustment.", med),
				"Track weekly weight trends and adjust with your prescriber if progress stalls.")
		}
	}
	return nil
}

func warnExcessiveLeanGain(ev *evaluation) *Finding {
	// Muscle accrues at roughly 0.5% of body weight per week at best.
	if !ev.isWeightGain || ev.requiredWeeklyRate <= ev.body.CurrentWeightKG*0.005 {
		return nil
	}
	return warning(CodeExcessiveLeanGain,
		fmt.Sprintf("Gaining %.2f kg/week outpaces muscle growth; the excess is stored as fat.", ev.requiredWeeklyRate),
		"Slow the gain to 0.25-0.5% of body weight per week for a leaner bulk.")
}

func warnCompoundRiskFactors(ev *evaluation) *Finding {
	count := 0
	if ev.sleepHours < lowSleepHours {
		count++
	}
	if ev.diet.Habits.SmokesTobacco {
		count++
	}
	if ev.diet.Habits.DrinksAlcohol {
		count++
	}
	if count < 2 {
		return nil
	}
	f := warning(CodeCompoundRiskFactors,
		"Several recovery-impairing factors are stacked (short sleep, tobacco or alcohol).",
		"Fixing sleep first gives the largest single improvement.")
	f.Impact = float64(count * 10)
	return f
}

func warnOccupationMismatch(ev *evaluation) *Finding {
	if metabolic.ActivityMatchesOccupation(ev.personal.Occupation, ev.workout.ActivityLevel) {
		return nil
	}
	return warning(CodeOccupationMismatch,
		"Heavy-labor occupations imply at least an active day; your declared activity level looks inconsistent.",
		"Double-check the activity level so calorie targets are not underestimated.")
}
