// plancheck - Plan Validation & Metabolic Calculation Engine
// Source: https://github.com/fitai/plancheck

// Package engine evaluates a user's plan inputs against the safety rule
// set and computes the calorie and macro targets downstream plan
// generation consumes. The engine is stateless: each ValidatePlan call is
// an independent, deterministic computation over its four input records.
package engine

import "fmt"

// Status classifies a finding.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusBlocked
)

func (s Status) String() string {
	if s < StatusOK || s > StatusBlocked {
		return "Unknown"
	}
	return [...]string{"OK", "WARNING", "BLOCKED"}[s]
}

// MarshalJSON renders the status name so consumers never see raw ordinals.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// Code is a stable machine-readable finding identifier; UI copy keys off
// these and they never change meaning once shipped.
type Code string

// Blocking codes. A plan with any of these cannot proceed.
const (
	CodeAtEssentialBodyFat      Code = "AT_ESSENTIAL_BODY_FAT"
	CodeTargetBMIUnderweight    Code = "TARGET_BMI_UNDERWEIGHT"
	CodeBelowBMR                Code = "BELOW_BMR"
	CodeBelowAbsoluteMinimum    Code = "BELOW_ABSOLUTE_MINIMUM"
	CodeExtremelyUnrealistic    Code = "EXTREMELY_UNREALISTIC"
	CodeInsufficientExercise    Code = "INSUFFICIENT_EXERCISE"
	CodeUnsafePregnancy         Code = "UNSAFE_PREGNANCY_BREASTFEEDING"
	CodeConflictingGoals        Code = "CONFLICTING_GOALS"
	CodeNoMealsEnabled          Code = "NO_MEALS_ENABLED"
	CodeSevereSleepDeprivation  Code = "SEVERE_SLEEP_DEPRIVATION"
	CodeExcessiveTrainingVolume Code = "EXCESSIVE_TRAINING_VOLUME"
)

// Advisory codes. These never block a plan.
const (
	CodeDeficitLimited          Code = "DEFICIT_LIMITED_FOR_SAFETY"
	CodeBodyFatAIEstimate       Code = "BODY_FAT_AI_ESTIMATE"
	CodeBodyFatBMIFallback      Code = "BODY_FAT_BMI_FALLBACK"
	CodeAggressiveTimeline      Code = "AGGRESSIVE_TIMELINE"
	CodeVeryAggressiveTimeline  Code = "VERY_AGGRESSIVE_TIMELINE"
	CodeLowSleepQuality         Code = "LOW_SLEEP_QUALITY"
	CodeElderlyPlanCaution      Code = "ELDERLY_PLAN_CAUTION"
	CodeTeenAthleteRestriction  Code = "TEEN_ATHLETE_RESTRICTION"
	CodeNoExercisePlan          Code = "NO_EXERCISE_PLAN"
	CodeHighTrainingVolume      Code = "HIGH_TRAINING_VOLUME"
	CodeMenopauseImpact         Code = "MENOPAUSE_METABOLIC_IMPACT"
	CodeMedicalAggressiveDef    Code = "MEDICAL_AGGRESSIVE_DEFICIT"
	CodeRecompSlowProgress      Code = "RECOMP_SLOW_PROGRESS"
	CodeAlcoholImpact           Code = "ALCOHOL_IMPACT"
	CodeTobaccoImpact           Code = "TOBACCO_IMPACT"
	CodeHeartConditionClearance Code = "HEART_CONDITION_CLEARANCE"
	CodeGoalInterference        Code = "GOAL_INTERFERENCE"
	CodeObesityRateGuidance     Code = "OBESITY_RATE_GUIDANCE"
	CodeEquipmentGoalMismatch   Code = "EQUIPMENT_GOAL_MISMATCH"
	CodeLimitationIntensity     Code = "LIMITATION_INTENSITY_CONFLICT"
	CodeLowDietReadiness        Code = "LOW_DIET_READINESS"
	CodeVeganProteinConflict    Code = "VEGAN_PROTEIN_CONFLICT"
	CodeMedicationInteraction   Code = "MEDICATION_METABOLISM_INTERACTION"
	CodeExcessiveLeanGain       Code = "EXCESSIVE_LEAN_GAIN_RATE"
	CodeCompoundRiskFactors     Code = "COMPOUND_RISK_FACTORS"
	CodeOccupationMismatch      Code = "OCCUPATION_ACTIVITY_MISMATCH"
)

// Finding is a single rule outcome; advisories carry CanProceed = true.
type Finding struct {
	Code            Code     `json:"code"`
	Status          Status   `json:"status"`
	Message         string   `json:"message"`
	Impact          float64  `json:"impact,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Risks           []string `json:"risks,omitempty"`
	CanProceed      bool     `json:"can_proceed"`
}

// blocked builds a blocking finding.
func blocked(code Code, message string, recommendations ...string) *Finding {
	return &Finding{Code: code, Status: StatusBlocked, Message: message, Recommendations: recommendations}
}

// warning builds an advisory finding.
func warning(code Code, message string, recommendations ...string) *Finding {
	return &Finding{Code: code, Status: StatusWarning, Message: message, Recommendations: recommendations, CanProceed: true}
}

// Results is the aggregate outcome of one plan evaluation; nothing mutates
// it after ValidatePlan returns.
type Results struct {
	HasErrors   bool              `json:"has_errors"`
	HasWarnings bool              `json:"has_warnings"`
	CanProceed  bool              `json:"can_proceed"`
	Errors      []Finding         `json:"errors"`
	Warnings    []Finding         `json:"warnings"`
	Metrics     CalculatedMetrics `json:"calculated_metrics"`
	Adjustments *Adjustments      `json:"adjustments,omitempty"`
}
