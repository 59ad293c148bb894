package engine

import (
	"github.com/fitai/plancheck/internal/profile"
)

func fptr(v float64) *float64 { return &v }

// baseInputs is a healthy 30-year-old male at maintenance: 80kg/175cm,
// desk job, 8h sleep, 3x60min intermediate strength sessions, measured
// body fat. Tests mutate copies to build scenarios.
//
// Derived values for assertions:
//
//	BMR  = 10*80 + 6.25*175 - 5*30 + 5 = 1748.75
//	base TDEE = 1748.75 * 1.25 = 2185.9375
//	session burn = 5.0 MET * 80 * 1h = 400; daily = round(3*400/7) = 171
//	TDEE = (2185.9375 + 171) * 0.98 = 2309.79875
func baseInputs() (profile.PersonalInfo, profile.DietPreferences, profile.BodyAnalysis, profile.WorkoutPreferences) {
	personal := profile.PersonalInfo{
		Age:        30,
		Gender:     profile.GenderMale,
		WakeTime:   "07:00",
		SleepTime:  "23:00",
		Occupation: profile.OccupationDeskJob,
	}
	diet := profile.DietPreferences{
		DietType:         "balanced",
		BreakfastEnabled: true,
		LunchEnabled:     true,
		DinnerEnabled:    true,
		Habits: profile.Habits{
			DrinksEnoughWater:    true,
			EatsRegularMeals:     true,
			ControlsPortionSize:  true,
			EatsFruitsVegetables: true,
		},
	}
	body := profile.BodyAnalysis{
		HeightCM:            175,
		CurrentWeightKG:     80,
		TargetWeightKG:      80,
		TargetTimelineWeeks: 12,
		BodyFatPercentage:   fptr(20),
	}
	workout := profile.WorkoutPreferences{
		FrequencyPerWeek:      3,
		TimePreferenceMinutes: 60,
		Intensity:             profile.IntensityIntermediate,
		WorkoutTypes:          []string{"strength"},
		PrimaryGoals:          []string{profile.GoalGeneralFitness},
		ActivityLevel:         profile.ActivityModerate,
		ExperienceYears:       2,
	}
	return personal, diet, body, workout
}

// codes extracts the finding codes in order.
func codes(findings []Finding) []Code {
	out := make([]Code, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Code)
	}
	return out
}

// hasCode reports whether a finding with the given code is present.
func hasCode(findings []Finding, code Code) bool {
	for _, f := range findings {
		if f.Code == code {
			return true
		}
	}
	return false
}
