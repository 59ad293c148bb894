package metabolic

import (
	"math"

	"github.com/fitai/plancheck/internal/profile"
)

// metTable maps workout type x intensity to MET values, exhaustive over
// the types the profile contract accepts.
var metTable = map[string]map[profile.Intensity]float64{
	"strength": {profile.IntensityBeginner: 3.5, profile.IntensityIntermediate: 5.0, profile.IntensityAdvanced: 6.0},
	"cardio":   {profile.IntensityBeginner: 5.0, profile.IntensityIntermediate: 7.0, profile.IntensityAdvanced: 9.0},
	"hiit":     {profile.IntensityBeginner: 6.0, profile.IntensityIntermediate: 8.0, profile.IntensityAdvanced: 10.0},
	"yoga":     {profile.IntensityBeginner: 2.5, profile.IntensityIntermediate: 3.0, profile.IntensityAdvanced: 4.0},
	"pilates":  {profile.IntensityBeginner: 3.0, profile.IntensityIntermediate: 3.5, profile.IntensityAdvanced: 4.5},
	"sports":   {profile.IntensityBeginner: 4.5, profile.IntensityIntermediate: 6.0, profile.IntensityAdvanced: 8.0},
	"walking":  {profile.IntensityBeginner: 3.0, profile.IntensityIntermediate: 3.5, profile.IntensityAdvanced: 4.5},
	"swimming": {profile.IntensityBeginner: 5.0, profile.IntensityIntermediate: 7.0, profile.IntensityAdvanced: 9.8},
	"cycling":  {profile.IntensityBeginner: 4.0, profile.IntensityIntermediate: 6.8, profile.IntensityAdvanced: 8.5},
}

// defaultMET covers a session with no declared workout types.
const defaultMET = 4.0

// sessionMET is the mean MET across the selected workout types; unknown
// types fall back to defaultMET instead of skewing to zero.
func sessionMET(intensity profile.Intensity, types []string) float64 {
	if len(types) == 0 {
		return defaultMET
	}
	sum := 0.0
	for _, t := range types {
		if byIntensity, ok := metTable[t]; ok {
			sum += byIntensity[intensity]
		} else {
			sum += defaultMET
		}
	}
	return sum / float64(len(types))
}

// SessionBurn estimates calories burned in one workout session:
// MET * weightKG * hours, rounded to the nearest integer.
func SessionBurn(durationMin float64, intensity profile.Intensity, weightKG float64, types []string) int {
	met := sessionMET(intensity, types)
	return int(math.Round(met * weightKG * durationMin / 60))
}

// DailyExerciseBurn averages the weekly training burn over seven days.
func DailyExerciseBurn(freq int, durationMin float64, intensity profile.Intensity, weightKG float64, types []string) int {
	session := SessionBurn(durationMin, intensity, weightKG, types)
	return int(math.Round(float64(freq*session) / 7))
}
