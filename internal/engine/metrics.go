package engine

// CalculatedMetrics are the rounded calorie/macro figures downstream plan
// generation consumes; calories and grams are whole numbers.
type CalculatedMetrics struct {
	BMR                    int     `json:"bmr"`
	TDEE                   int     `json:"tdee"`
	TargetCalories         int     `json:"target_calories"`
	WeeklyRateKG           float64 `json:"weekly_rate_kg"`
	ProteinG               int     `json:"protein_g"`
	CarbsG                 int     `json:"carbs_g"`
	FatG                   int     `json:"fat_g"`
	TimelineWeeks          int     `json:"timeline_weeks"`
	EstimatedTimelineWeeks float64 `json:"estimated_timeline_weeks"`
	WaterIntakeML          int     `json:"water_intake_ml"`
	FiberG                 int     `json:"fiber_g"`
}

// RefeedSchedule describes planned refeed days during a long deficit.
type RefeedSchedule struct {
	Interval       string `json:"interval"` // currently always "weekly"
	RefeedCalories int    `json:"refeed_calories"`
	StartWeek      int    `json:"start_week"`
}

// Adjustments carries the layers applied on top of the base calculation:
// refeed/diet-break scheduling and medical notes.
type Adjustments struct {
	Refeed        *RefeedSchedule `json:"refeed,omitempty"`
	DietBreakWeek int             `json:"diet_break_week,omitempty"` // 0 = none
	MedicalNotes  []string        `json:"medical_notes,omitempty"`
}
