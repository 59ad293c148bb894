package engine

import (
	"fmt"

	"github.com/fitai/plancheck/internal/profile"
)

// Absolute daily calorie minimums below which a plan is never allowed.
// Gender is a validated closed set, so direct lookups are safe.
var absoluteMinimums = map[profile.Gender]float64{
	profile.GenderMale: 1500, profile.GenderFemale: 1200, profile.GenderOther: 1350,
}

// Essential body-fat floors: cutting at or below these is physiologically
// dangerous.
var essentialBodyFatFloors = map[profile.Gender]float64{
	profile.GenderMale: 5, profile.GenderFemale: 12, profile.GenderOther: 8.5,
}

const (
	// Rate thresholds as fractions of current body weight per week.
	extremeRateFraction    = 0.015  // blocked outright
	aggressiveRateFraction = 0.0075 // compounding factor in several rules

	targetBMIUnderweight = 17.5

	// Weekly training-hour ceilings.
	maxWeeklyTrainingHours           = 15.0
	maxWeeklyTrainingHoursVeryActive = 20.0
)

// blockingRule is one safety check. weightLossOnly rules are skipped on
// maintenance and gain plans. Every applicable rule runs and every failure
// is collected.
type blockingRule struct {
	weightLossOnly bool
	check          func(ev *evaluation) *Finding
}

// blockingRules run in this fixed order; it affects only error ordering.
var blockingRules = []blockingRule{
	{weightLossOnly: true, check: checkEssentialBodyFat},
	{weightLossOnly: true, check: checkTargetBMIUnderweight},
	{weightLossOnly: true, check: checkBelowBMR},
	{weightLossOnly: true, check: checkBelowAbsoluteMinimum},
	{weightLossOnly: true, check: checkExtremelyUnrealistic},
	{weightLossOnly: true, check: checkInsufficientExercise},
	{check: checkUnsafePregnancy},
	{check: checkConflictingGoals},
	{check: checkNoMealsEnabled},
	{check: checkSevereSleepDeprivation},
	{check: checkExcessiveTrainingVolume},
}

func runBlockingChecks(ev *evaluation) []Finding {
	var errors []Finding
	for _, rule := range blockingRules {
		if rule.weightLossOnly && !ev.isWeightLoss {
			continue
		}
		if f := rule.check(ev); f != nil {
			errors = append(errors, *f)
		}
	}
	return errors
}

func checkEssentialBodyFat(ev *evaluation) *Finding {
	floor := essentialBodyFatFloors[ev.personal.Gender]
	if ev.bodyFat.Percentage > floor {
		return nil
	}
	f := blocked(CodeAtEssentialBodyFat,
		fmt.Sprintf("Your body fat (%.0f%%) is at or below the essential level of %.0f%%; further fat loss is unsafe.", ev.bodyFat.Percentage, floor),
		"Switch to a maintenance or muscle-gain goal.")
	f.Risks = []string{"hormonal disruption", "organ stress", "loss of bone density"}
	return f
}

func checkTargetBMIUnderweight(ev *evaluation) *Finding {
	targetBMI := ev.body.TargetWeightKG / ((ev.body.HeightCM / 100) * (ev.body.HeightCM / 100))
	if targetBMI >= targetBMIUnderweight {
		return nil
	}
	return blocked(CodeTargetBMIUnderweight,
		fmt.Sprintf("Your target weight puts your BMI at %.1f, below the underweight threshold of %.1f.", targetBMI, targetBMIUnderweight),
		"Raise your target weight to keep BMI at 18.5 or above.")
}

func checkBelowBMR(ev *evaluation) *Finding {
	if ev.targetCalories >= ev.bmr {
		return nil
	}
	f := blocked(CodeBelowBMR,
		fmt.Sprintf("The plan needs %.0f calories/day, below your basal metabolic rate of %.0f.", ev.targetCalories, ev.bmr),
		"Extend your timeline so daily calories stay at or above BMR.")
	f.Risks = []string{"metabolic slowdown", "muscle loss"}
	return f
}

func checkBelowAbsoluteMinimum(ev *evaluation) *Finding {
	minimum := absoluteMinimums[ev.personal.Gender]
	if ev.targetCalories >= minimum {
		return nil
	}
	return blocked(CodeBelowAbsoluteMinimum,
		fmt.Sprintf("The plan needs %.0f calories/day, below the absolute minimum of %.0f.", ev.targetCalories, minimum),
		"Extend your timeline or reduce the amount of weight to lose.")
}

func checkExtremelyUnrealistic(ev *evaluation) *Finding {
	if ev.requiredWeeklyRate <= ev.body.CurrentWeightKG*extremeRateFraction {
		return nil
	}
	return blocked(CodeExtremelyUnrealistic,
		fmt.Sprintf("Losing %.2f kg/week is over 1.5%% of your body weight per week, which is not sustainable.", ev.requiredWeeklyRate),
		fmt.Sprintf("Plan for at most %.2f kg/week.", ev.body.CurrentWeightKG*extremeRateFraction))
}

func checkInsufficientExercise(ev *evaluation) *Finding {
	if ev.workout.FrequencyPerWeek >= 2 || ev.targetCalories >= ev.bmr ||
		ev.requiredWeeklyRate <= ev.body.CurrentWeightKG*aggressiveRateFraction {
		return nil
	}
	return blocked(CodeInsufficientExercise,
		"This pace without regular training forces calories below your BMR; diet alone cannot close the gap safely.",
		"Train at least 2-3 times per week, or extend your timeline.")
}

func checkUnsafePregnancy(ev *evaluation) *Finding {
	if (!ev.body.PregnancyStatus && !ev.body.BreastfeedingStatus) || ev.targetCalories >= ev.tdee {
		return nil
	}
	f := blocked(CodeUnsafePregnancy,
		"Calorie deficits during pregnancy or breastfeeding are unsafe for you and your child.",
		"Switch to a maintenance plan and discuss goals with your obstetrician.")
	f.Risks = []string{"nutrient deficiency for the child", "reduced milk supply"}
	return f
}

func checkConflictingGoals(ev *evaluation) *Finding {
	if !ev.workout.HasGoal(profile.GoalWeightLoss) || !ev.workout.HasGoal(profile.GoalWeightGain) {
		return nil
	}
	return blocked(CodeConflictingGoals, "Your goals include both weight loss and weight gain; a plan cannot aim at both.",
		"Keep one weight-direction goal and remove the other.")
}

func checkNoMealsEnabled(ev *evaluation) *Finding {
	if ev.diet.MealsEnabled() > 0 {
		return nil
	}
	return blocked(CodeNoMealsEnabled, "All meal slots are disabled; there is nowhere to schedule your calories.",
		"Enable at least one of breakfast, lunch, dinner or snacks.")
}

func checkSevereSleepDeprivation(ev *evaluation) *Finding {
	if ev.sleepHours >= 5 || ev.requiredWeeklyRate <= ev.body.CurrentWeightKG*aggressiveRateFraction {
		return nil
	}
	f := blocked(CodeSevereSleepDeprivation,
		fmt.Sprintf("You sleep %.1f hours; combining severe sleep deprivation with an aggressive rate is unsafe.", ev.sleepHours),
		"Increase sleep to at least 7 hours, or choose a gentler pace.")
	f.Risks = []string{"impaired recovery", "elevated cortisol", "strong hunger rebound"}
	return f
}

func checkExcessiveTrainingVolume(ev *evaluation) *Finding {
	ceiling := maxWeeklyTrainingHours
	if ev.personal.Occupation == profile.OccupationVeryActive {
		ceiling = maxWeeklyTrainingHoursVeryActive
	}
	hours := ev.workout.WeeklyTrainingHours()
	if hours <= ceiling {
		return nil
	}
	f := blocked(CodeExcessiveTrainingVolume,
		fmt.Sprintf("Planned training volume is %.1f hours/week, above the %.0f-hour safety ceiling.", hours, ceiling),
		"Reduce session length or weekly frequency.")
	f.Risks = []string{"overtraining syndrome", "injury"}
	return f
}
