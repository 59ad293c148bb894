package metabolic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fitai/plancheck/internal/profile"
)

// TestSessionBurn verifies MET arithmetic against hand-computed values:
// burn = MET * weightKG * hours, rounded.
func TestSessionBurn(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		duration  float64
		intensity profile.Intensity
		weight    float64
		types     []string
		want      int
	}{
		// strength/intermediate MET 5.0: 5.0 * 80 * 1h = 400
		"strength intermediate hour": {duration: 60, intensity: profile.IntensityIntermediate, weight: 80, types: []string{"strength"}, want: 400},
		// cardio/advanced MET 9.0: 9.0 * 70 * 0.5h = 315
		"cardio advanced half hour": {duration: 30, intensity: profile.IntensityAdvanced, weight: 70, types: []string{"cardio"}, want: 315},
		// yoga/beginner MET 2.5: 2.5 * 60 * 0.75h = 112.5 -> 113
		"yoga beginner rounds up": {duration: 45, intensity: profile.IntensityBeginner, weight: 60, types: []string{"yoga"}, want: 113},
		// mean of strength (5.0) and cardio (7.0) at intermediate = 6.0: 6.0 * 80 * 1h = 480
		"mixed types use mean MET": {duration: 60, intensity: profile.IntensityIntermediate, weight: 80, types: []string{"strength", "cardio"}, want: 480},
		// no types falls back to the default MET 4.0: 4.0 * 80 * 1h = 320
		"no types default MET": {duration: 60, intensity: profile.IntensityIntermediate, weight: 80, types: nil, want: 320},
		"zero duration":        {duration: 0, intensity: profile.IntensityIntermediate, weight: 80, types: []string{"strength"}, want: 0},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SessionBurn(tt.duration, tt.intensity, tt.weight, tt.types))
		})
	}
}

// TestMETTableExhaustive ensures every accepted workout type has a MET
// value for every intensity tier, so no pair silently maps to zero.
func TestMETTableExhaustive(t *testing.T) {
	t.Parallel()

	intensities := []profile.Intensity{profile.IntensityBeginner, profile.IntensityIntermediate, profile.IntensityAdvanced}
	for typ, byIntensity := range metTable {
		for _, in := range intensities {
			met, ok := byIntensity[in]
			assert.True(t, ok, "missing MET for %s/%s", typ, in)
			assert.Greater(t, met, 0.0, "non-positive MET for %s/%s", typ, in)
		}
	}
}

// TestMETTableMonotonic: within a type, higher intensity never burns less.
func TestMETTableMonotonic(t *testing.T) {
	t.Parallel()

	for typ, byIntensity := range metTable {
		beginner := byIntensity[profile.IntensityBeginner]
		intermediate := byIntensity[profile.IntensityIntermediate]
		advanced := byIntensity[profile.IntensityAdvanced]
		assert.LessOrEqual(t, beginner, intermediate, "type %s", typ)
		assert.LessOrEqual(t, intermediate, advanced, "type %s", typ)
	}
}

// TestDailyExerciseBurn: weekly burn averaged over seven days.
// 3 sessions of 400 = 1200/week -> 171.43 -> 171/day.
func TestDailyExerciseBurn(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		freq int
		want int
	}{
		"zero frequency": {freq: 0, want: 0},
		"three sessions": {freq: 3, want: 171},
		"four sessions":  {freq: 4, want: 229},
		"daily training": {freq: 7, want: 400},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := DailyExerciseBurn(tt.freq, 60, profile.IntensityIntermediate, 80, []string{"strength"})
			assert.Equal(t, tt.want, got)
		})
	}
}
