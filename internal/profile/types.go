// plancheck - Plan Validation & Metabolic Calculation Engine
// Source: https://github.com/fitai/plancheck

// Package profile defines the four input records the validation engine
// consumes (personal, diet, body, workout) and enforces the caller contract
// on them. Records are immutable value types supplied per evaluation; the
// engine never mutates or persists them.
package profile

// Gender is the closed set of gender values the metabolic formulas accept.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Occupation drives the base TDEE multiplier.
type Occupation string

const (
	OccupationDeskJob        Occupation = "desk_job"
	OccupationLightActive    Occupation = "light_active"
	OccupationModerateActive Occupation = "moderate_active"
	OccupationHeavyLabor     Occupation = "heavy_labor"
	OccupationVeryActive     Occupation = "very_active"
)

// Intensity is a workout intensity tier.
type Intensity string

const (
	IntensityBeginner     Intensity = "beginner"
	IntensityIntermediate Intensity = "intermediate"
	IntensityAdvanced     Intensity = "advanced"
)

// StressLevel caps how aggressive a calorie deficit may be.
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
)

// ActivityLevel is the user's self-declared overall activity, distinct from
// Occupation: occupation describes the job, activity level the whole day.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal tags accepted in WorkoutPreferences.PrimaryGoals.
const (
	GoalWeightLoss     = "weight_loss"
	GoalWeightGain     = "weight_gain"
	GoalMuscleGain     = "muscle_gain"
	GoalEndurance      = "endurance"
	GoalRecomposition  = "body_recomposition"
	GoalStrength       = "strength"
	GoalGeneralFitness = "general_fitness"
	GoalFlexibility    = "flexibility"
)

// PersonalInfo carries demographic fields. Country and State are display
// only and never feed a calculation.
type PersonalInfo struct {
	Age        int        `json:"age" koanf:"age" validate:"required,min=13,max=120"`
	Gender     Gender     `json:"gender" koanf:"gender" validate:"required,oneof=male female other"`
	Country    string     `json:"country,omitempty" koanf:"country"`
	State      string     `json:"state,omitempty" koanf:"state"`
	WakeTime   string     `json:"wake_time" koanf:"wake_time" validate:"required,hhmm"`
	SleepTime  string     `json:"sleep_time" koanf:"sleep_time" validate:"required,hhmm"`
	Occupation Occupation `json:"occupation_type" koanf:"occupation_type" validate:"required,oneof=desk_job light_active moderate_active heavy_labor very_active"`
}

// Habits are the lifestyle flags behind the 0-100 diet readiness score.
// Good habits raise the score, bad habits lower it.
type Habits struct {
	DrinksEnoughWater    bool `json:"drinks_enough_water" koanf:"drinks_enough_water"`
	LimitsSugaryDrinks   bool `json:"limits_sugary_drinks" koanf:"limits_sugary_drinks"`
	EatsRegularMeals     bool `json:"eats_regular_meals" koanf:"eats_regular_meals"`
	AvoidsLateNightEats  bool `json:"avoids_late_night_eating" koanf:"avoids_late_night_eating"`
	ControlsPortionSize  bool `json:"controls_portion_size" koanf:"controls_portion_size"`
	ReadsNutritionLabels bool `json:"reads_nutrition_labels" koanf:"reads_nutrition_labels"`
	EatsProcessedFood    bool `json:"eats_processed_food" koanf:"eats_processed_food"`
	EatsFruitsVegetables bool `json:"eats_5_servings_fruits_veggies" koanf:"eats_5_servings_fruits_veggies"`
	LimitsRefinedSugar   bool `json:"limits_refined_sugar" koanf:"limits_refined_sugar"`
	IncludesHealthyFats  bool `json:"includes_healthy_fats" koanf:"includes_healthy_fats"`
	DrinksAlcohol        bool `json:"drinks_alcohol" koanf:"drinks_alcohol"`
	SmokesTobacco        bool `json:"smokes_tobacco" koanf:"smokes_tobacco"`
	DrinksCoffee         bool `json:"drinks_coffee" koanf:"drinks_coffee"`
	TakesSupplements     bool `json:"takes_supplements" koanf:"takes_supplements"`
}

// DietPreferences carries diet type, exclusions, which meals the plan may
// schedule, and the lifestyle habit flags.
type DietPreferences struct {
	DietType         string   `json:"diet_type" koanf:"diet_type" validate:"required,oneof=balanced vegetarian vegan pescatarian keto paleo mediterranean low_carb"`
	Allergies        []string `json:"allergies,omitempty" koanf:"allergies" validate:"dive,min=1"`
	Restrictions     []string `json:"restrictions,omitempty" koanf:"restrictions" validate:"dive,min=1"`
	BreakfastEnabled bool     `json:"breakfast_enabled" koanf:"breakfast_enabled"`
	LunchEnabled     bool     `json:"lunch_enabled" koanf:"lunch_enabled"`
	DinnerEnabled    bool     `json:"dinner_enabled" koanf:"dinner_enabled"`
	SnacksEnabled    bool     `json:"snacks_enabled" koanf:"snacks_enabled"`
	Habits           Habits   `json:"habits" koanf:"habits"`
}

// MealsEnabled reports how many of the four meal slots are switched on.
func (d *DietPreferences) MealsEnabled() int {
	n := 0
	for _, on := range []bool{d.BreakfastEnabled, d.LunchEnabled, d.DinnerEnabled, d.SnacksEnabled} {
		if on {
			n++
		}
	}
	return n
}

// BodyAnalysis carries measurements, goal weight/timeline and health flags.
// BodyFatPercentage, AIEstimatedBodyFat and AIConfidenceScore are optional;
// nil means "not provided", never zero.
type BodyAnalysis struct {
	HeightCM            float64     `json:"height_cm" koanf:"height_cm" validate:"required,gt=0"`
	CurrentWeightKG     float64     `json:"current_weight_kg" koanf:"current_weight_kg" validate:"required,gt=0"`
	TargetWeightKG      float64     `json:"target_weight_kg" koanf:"target_weight_kg" validate:"required,gt=0"`
	TargetTimelineWeeks int         `json:"target_timeline_weeks" koanf:"target_timeline_weeks" validate:"required,min=1"`
	BodyFatPercentage   *float64    `json:"body_fat_percentage,omitempty" koanf:"body_fat_percentage" validate:"omitempty,gt=0,lt=75"`
	AIEstimatedBodyFat  *float64    `json:"ai_estimated_body_fat,omitempty" koanf:"ai_estimated_body_fat" validate:"omitempty,gt=0,lt=75"`
	AIConfidenceScore   *float64    `json:"ai_confidence_score,omitempty" koanf:"ai_confidence_score" validate:"omitempty,min=0,max=100"`
	MedicalConditions   []string    `json:"medical_conditions,omitempty" koanf:"medical_conditions" validate:"dive,min=1"`
	Medications         []string    `json:"medications,omitempty" koanf:"medications" validate:"dive,min=1"`
	PhysicalLimitations []string    `json:"physical_limitations,omitempty" koanf:"physical_limitations" validate:"dive,min=1"`
	PregnancyStatus     bool        `json:"pregnancy_status" koanf:"pregnancy_status"`
	PregnancyTrimester  int         `json:"pregnancy_trimester,omitempty" koanf:"pregnancy_trimester" validate:"omitempty,min=1,max=3"`
	BreastfeedingStatus bool        `json:"breastfeeding_status" koanf:"breastfeeding_status"`
	StressLevel         StressLevel `json:"stress_level,omitempty" koanf:"stress_level" validate:"omitempty,oneof=low moderate high"`
}

// Stress returns the stress level, defaulting to moderate when unset.
func (b *BodyAnalysis) Stress() StressLevel {
	if b.StressLevel == "" {
		return StressModerate
	}
	return b.StressLevel
}

// WorkoutPreferences carries training frequency, intensity and goals.
// MaxPushups and RunTimeMinutes are optional fitness-test inputs feeding
// the recommended-intensity calculation.
type WorkoutPreferences struct {
	FrequencyPerWeek      int           `json:"workout_frequency_per_week" koanf:"workout_frequency_per_week" validate:"min=0,max=7"`
	TimePreferenceMinutes float64       `json:"time_preference_minutes" koanf:"time_preference_minutes" validate:"min=0,max=300"`
	Intensity             Intensity     `json:"intensity" koanf:"intensity" validate:"required,oneof=beginner intermediate advanced"`
	WorkoutTypes          []string      `json:"workout_types,omitempty" koanf:"workout_types" validate:"dive,oneof=strength cardio hiit yoga pilates sports walking swimming cycling"`
	PrimaryGoals          []string      `json:"primary_goals,omitempty" koanf:"primary_goals" validate:"dive,oneof=weight_loss weight_gain muscle_gain endurance body_recomposition strength general_fitness flexibility"`
	ActivityLevel         ActivityLevel `json:"activity_level" koanf:"activity_level" validate:"required,oneof=sedentary light moderate active very_active"`
	ExperienceYears       float64       `json:"experience_years" koanf:"experience_years" validate:"min=0,max=80"`
	MaxPushups            *float64      `json:"max_pushups,omitempty" koanf:"max_pushups" validate:"omitempty,min=0,max=200"`
	RunTimeMinutes        *float64      `json:"run_time_minutes,omitempty" koanf:"run_time_minutes" validate:"omitempty,gt=0,max=60"`
}

// HasGoal reports whether tag is present in PrimaryGoals.
func (w *WorkoutPreferences) HasGoal(tag string) bool {
	for _, g := range w.PrimaryGoals {
		if g == tag {
			return true
		}
	}
	return false
}

// WeeklyTrainingHours is frequency x session length in hours.
func (w *WorkoutPreferences) WeeklyTrainingHours() float64 {
	return float64(w.FrequencyPerWeek) * w.TimePreferenceMinutes / 60
}

// Profile bundles the four records as they appear in a profile file.
type Profile struct {
	Personal PersonalInfo       `json:"personal_info" koanf:"personal_info"`
	Diet     DietPreferences    `json:"diet_preferences" koanf:"diet_preferences"`
	Body     BodyAnalysis       `json:"body_analysis" koanf:"body_analysis"`
	Workout  WorkoutPreferences `json:"workout_preferences" koanf:"workout_preferences"`
}
