package engine

import (
	"math"

	"github.com/fitai/plancheck/internal/metabolic"
	"github.com/fitai/plancheck/internal/profile"
)

// kcalPerKG is the energy content of one kilogram of body fat.
const kcalPerKG = 7700

// evaluation is the working state threaded through the rule tables; it
// lives for one ValidatePlan call and is never shared.
type evaluation struct {
	personal *profile.PersonalInfo
	diet     *profile.DietPreferences
	body     *profile.BodyAnalysis
	workout  *profile.WorkoutPreferences

	bmr        float64
	bmi        float64
	bodyFat    metabolic.BodyFatResult
	sleepHours float64
	tdee       float64

	isWeightLoss bool
	isWeightGain bool

	// requiredWeeklyRate is the rate the user's timeline asks for;
	// weeklyRate is the realized rate after deficit limiting.
	requiredWeeklyRate float64
	weeklyRate         float64
	targetCalories     float64
	deficitLimited     bool
	deficitLimitReason string

	// queued during metric computation, flushed once blocking checks clear
	pending []Finding
}

// deficitPercent is the realized deficit as a fraction of TDEE. Zero for
// maintenance and gain plans.
func (ev *evaluation) deficitPercent() float64 {
	if !ev.isWeightLoss || ev.tdee <= 0 {
		return 0
	}
	return (ev.tdee - ev.targetCalories) / ev.tdee
}

// ValidatePlan runs the full evaluation: derived metrics, deficit
// limiting, blocking safety checks, advisory checks, macros, medical
// overrides and refeed scheduling. Inputs must have passed profile.Validate.
func ValidatePlan(personal *profile.PersonalInfo, diet *profile.DietPreferences, body *profile.BodyAnalysis, workout *profile.WorkoutPreferences) Results {
	ev := &evaluation{personal: personal, diet: diet, body: body, workout: workout}

	ev.computeMetrics()
	ev.computeTarget()

	errors := runBlockingChecks(ev)

	// advisories are withheld on blocked plans
	var warnings []Finding
	if len(errors) == 0 {
		warnings = append(warnings, ev.pending...)
		warnings = append(warnings, runWarningChecks(ev)...)
	}

	m := computeMacros(ev)
	adj := applyMedicalAdjustments(ev, &m)
	scheduleRefeeds(ev, adj)

	return assembleResults(ev, m, adj, errors, warnings)
}

// computeMetrics fills BMR, BMI, body fat, sleep hours and TDEE on ev.
func (ev *evaluation) computeMetrics() {
	ev.bmr = metabolic.BMR(ev.body.CurrentWeightKG, ev.body.HeightCM, ev.personal.Age, ev.personal.Gender)
	ev.bmi = metabolic.BMI(ev.body.CurrentWeightKG, ev.body.HeightCM)

	ev.bodyFat = metabolic.ResolveBodyFat(
		ev.body.BodyFatPercentage, ev.body.AIEstimatedBodyFat, ev.body.AIConfidenceScore,
		ev.bmi, ev.personal.Gender, ev.personal.Age,
	)
	switch ev.bodyFat.Source {
	case metabolic.BodyFatSourceAI:
		ev.pending = append(ev.pending, *warning(CodeBodyFatAIEstimate,
			"Body fat was taken from the AI photo estimate; accuracy is moderate.",
			"Enter a measured body fat percentage for more precise targets."))
	case metabolic.BodyFatSourceBMI:
		ev.pending = append(ev.pending, *warning(CodeBodyFatBMIFallback,
			"Body fat was estimated from BMI, which is the least precise method.",
			"Enter a measured body fat percentage for more precise targets."))
	}

	sleep, err := profile.SleepHours(ev.personal.WakeTime, ev.personal.SleepTime)
	if err != nil {
		// times already passed the hhmm contract
		panic("engine: " + err.Error())
	}
	ev.sleepHours = sleep

	tdee := metabolic.BaseTDEE(ev.bmr, ev.personal.Occupation)
	tdee += float64(metabolic.DailyExerciseBurn(
		ev.workout.FrequencyPerWeek, ev.workout.TimePreferenceMinutes,
		ev.workout.Intensity, ev.body.CurrentWeightKG, ev.workout.WorkoutTypes,
	))
	tdee = metabolic.AgeAdjustedTDEE(tdee, ev.personal.Age, ev.personal.Gender)
	tdee = metabolic.PregnancyCalories(tdee, ev.body.PregnancyStatus, ev.body.PregnancyTrimester, ev.body.BreastfeedingStatus)
	ev.tdee = tdee
}

// computeTarget determines the goal direction and target calories,
// applying the deficit safety cap on weight-loss plans.
func (ev *evaluation) computeTarget() {
	current, target := ev.body.CurrentWeightKG, ev.body.TargetWeightKG
	ev.isWeightLoss = current > target
	ev.isWeightGain = current < target

	if !ev.isWeightLoss && !ev.isWeightGain {
		ev.targetCalories = ev.tdee
		return
	}

	ev.requiredWeeklyRate = math.Abs(target-current) / float64(ev.body.TargetTimelineWeeks)
	ev.weeklyRate = ev.requiredWeeklyRate
	dailyGap := ev.requiredWeeklyRate * kcalPerKG / 7

	if ev.isWeightGain {
		ev.targetCalories = ev.tdee + dailyGap
		return
	}
	ev.targetCalories = ev.tdee - dailyGap
	applyDeficitLimit(ev, dailyGap)
}

// assembleResults rounds the metrics and packages the outcome.
func assembleResults(ev *evaluation, m macros, adj *Adjustments, errors, warnings []Finding) Results {
	metrics := CalculatedMetrics{
		BMR:            int(math.Round(ev.bmr)),
		TDEE:           int(math.Round(ev.tdee)),
		TargetCalories: int(math.Round(ev.targetCalories)),
		WeeklyRateKG:   round2(ev.weeklyRate),
		ProteinG:       int(math.Round(m.proteinG)),
		CarbsG:         int(math.Round(m.carbsG)),
		FatG:           int(math.Round(m.fatG)),
		TimelineWeeks:  ev.body.TargetTimelineWeeks,
		EstimatedTimelineWeeks: round1(metabolic.SleepAdjustedTimeline(
			float64(ev.body.TargetTimelineWeeks), ev.sleepHours)),
		WaterIntakeML: int(math.Round(metabolic.WaterIntakeML(ev.body.CurrentWeightKG))),
		FiberG:        int(math.Round(metabolic.FiberGrams(ev.targetCalories))),
	}

	if adj != nil && adj.Refeed == nil && adj.DietBreakWeek == 0 && len(adj.MedicalNotes) == 0 {
		adj = nil
	}

	return Results{
		HasErrors:   len(errors) > 0,
		HasWarnings: len(warnings) > 0,
		CanProceed:  len(errors) == 0,
		Errors:      errors,
		Warnings:    warnings,
		Metrics:     metrics,
		Adjustments: adj,
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
