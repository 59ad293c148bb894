package metabolic

import "github.com/fitai/plancheck/internal/profile"

// activityRank orders activity levels for threshold comparisons.
var activityRank = map[profile.ActivityLevel]int{
	profile.ActivitySedentary:  0,
	profile.ActivityLight:      1,
	profile.ActivityModerate:   2,
	profile.ActivityActive:     3,
	profile.ActivityVeryActive: 4,
}

// ActivityMatchesOccupation reports whether the declared activity level is
// consistent with the occupation. Heavy labor implies at least an "active"
// day regardless of training; every other occupation accepts any level.
func ActivityMatchesOccupation(occ profile.Occupation, level profile.ActivityLevel) bool {
	if occ != profile.OccupationHeavyLabor {
		return true
	}
	return activityRank[level] >= activityRank[profile.ActivityActive]
}

// fitnessThresholds are the 1-3-years-experience test cutoffs before age
// adjustment. Pushups: more is better. Run minutes: fewer is better.
type fitnessThresholds struct {
	pushupsAdvanced     float64
	pushupsIntermediate float64
	runAdvanced         float64
	runIntermediate     float64
}

var fitnessTestTable = map[profile.Gender]fitnessThresholds{
	profile.GenderMale:   {pushupsAdvanced: 30, pushupsIntermediate: 15, runAdvanced: 10, runIntermediate: 13},
	profile.GenderFemale: {pushupsAdvanced: 20, pushupsIntermediate: 10, runAdvanced: 12, runIntermediate: 15},
	profile.GenderOther:  {pushupsAdvanced: 25, pushupsIntermediate: 12, runAdvanced: 11, runIntermediate: 14},
}

// RecommendedIntensity derives a training intensity tier. Three or more
// years of experience is advanced, under one year beginner. In between,
// both fitness tests must clear a tier's age-adjusted thresholds to earn
// it; missing test data yields intermediate.
func RecommendedIntensity(experienceYears float64, pushups, runMinutes *float64, age int, gender profile.Gender) profile.Intensity {
	if experienceYears >= 3 {
		return profile.IntensityAdvanced
	}
	if experienceYears < 1 {
		return profile.IntensityBeginner
	}
	if pushups == nil || runMinutes == nil {
		return profile.IntensityIntermediate
	}

	th, ok := fitnessTestTable[gender]
	if !ok {
		th = fitnessTestTable[profile.GenderOther]
	}

	// each decade past 30 relaxes pushups by 10% and the run by a minute
	var decades float64
	if age > 30 {
		decades = float64(age-30) / 10
	}
	pushupScale := 1 - 0.10*decades
	runSlack := decades

	switch {
	case *pushups >= th.pushupsAdvanced*pushupScale && *runMinutes <= th.runAdvanced+runSlack:
		return profile.IntensityAdvanced
	case *pushups >= th.pushupsIntermediate*pushupScale && *runMinutes <= th.runIntermediate+runSlack:
		return profile.IntensityIntermediate
	default:
		return profile.IntensityBeginner
	}
}
