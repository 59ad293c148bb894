package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitai/plancheck/internal/profile"
)

// medicalEval builds a weight-loss evaluation at TDEE 2500 / target 2100
// for override tests.
func medicalEval(conditions []string) *evaluation {
	return &evaluation{
		personal: &profile.PersonalInfo{Gender: profile.GenderMale},
		body: &profile.BodyAnalysis{
			CurrentWeightKG:   80,
			MedicalConditions: conditions,
		},
		workout:        &profile.WorkoutPreferences{Intensity: profile.IntensityIntermediate, FrequencyPerWeek: 3},
		bmr:            1700,
		tdee:           2500,
		isWeightLoss:   true,
		targetCalories: 2100,
	}
}

func TestApplyMedicalAdjustments_NoConditions(t *testing.T) {
	t.Parallel()

	ev := medicalEval(nil)
	m := computeMacros(ev)
	before := m

	adj := applyMedicalAdjustments(ev, &m)
	require.NotNil(t, adj)
	assert.Empty(t, adj.MedicalNotes)
	assert.Equal(t, before, m)
	assert.Equal(t, 2500.0, ev.tdee)
}

// TestApplyMedicalAdjustments_Hypothyroid scales TDEE and target by 0.90
// together, preserving the deficit fraction, and recomputes macros.
func TestApplyMedicalAdjustments_Hypothyroid(t *testing.T) {
	t.Parallel()

	ev := medicalEval([]string{"Hashimoto's thyroiditis"})
	m := computeMacros(ev)

	adj := applyMedicalAdjustments(ev, &m)

	assert.InDelta(t, 2250, ev.tdee, 0.001)
	assert.InDelta(t, 1890, ev.targetCalories, 0.001)
	// macros recomputed from the new target: protein unchanged,
	// remaining 1890-704=1186 at 45% carbs
	assert.InDelta(t, 176.0, m.proteinG, 0.001)
	assert.InDelta(t, 133.425, m.carbsG, 0.001)

	require.Len(t, adj.MedicalNotes, 1)
	assert.Contains(t, adj.MedicalNotes[0], "reduced 10%")
}

// TestApplyMedicalAdjustments_HypothyroidRefloorsTarget: scaling down must
// not push a cleared weight-loss plan under the BMR/minimum floors that
// the blocking checks verified pre-adjustment.
func TestApplyMedicalAdjustments_HypothyroidRefloorsTarget(t *testing.T) {
	t.Parallel()

	ev := medicalEval([]string{"hypothyroidism"})
	ev.targetCalories = 1750 // 0.90x would give 1575, under BMR 1700
	m := computeMacros(ev)

	applyMedicalAdjustments(ev, &m)
	assert.Equal(t, 1700.0, ev.targetCalories)
}

func TestApplyMedicalAdjustments_BareThyroidMatches(t *testing.T) {
	t.Parallel()

	ev := medicalEval([]string{"thyroid condition"})
	m := computeMacros(ev)

	adj := applyMedicalAdjustments(ev, &m)
	require.Len(t, adj.MedicalNotes, 1)
	assert.Contains(t, adj.MedicalNotes[0], "hypothyroidism")
	assert.InDelta(t, 2250, ev.tdee, 0.001)
}

func TestApplyMedicalAdjustments_InsulinResistanceShiftsCarbs(t *testing.T) {
	t.Parallel()

	ev := medicalEval([]string{"type 2 diabetes"})
	m := computeMacros(ev)
	baselineCarbs := m.carbsG
	baselineFat := m.fatG

	adj := applyMedicalAdjustments(ev, &m)

	assert.InDelta(t, baselineCarbs*0.75, m.carbsG, 0.001)
	freed := (baselineCarbs - m.carbsG) * 4
	assert.InDelta(t, baselineFat+freed/9, m.fatG, 0.001)
	// TDEE untouched: diabetes has no thyroid factor.
	assert.Equal(t, 2500.0, ev.tdee)

	require.Len(t, adj.MedicalNotes, 1)
	assert.Contains(t, adj.MedicalNotes[0], "insulin resistance")
}

// TestApplyMedicalAdjustments_Compose stacks a thyroid category with an
// insulin category: the factor applies first, then the carb shift runs on
// the recomputed macros.
func TestApplyMedicalAdjustments_Compose(t *testing.T) {
	t.Parallel()

	ev := medicalEval([]string{"hypothyroidism", "PCOS", "hypertension"})
	m := computeMacros(ev)

	adj := applyMedicalAdjustments(ev, &m)

	assert.InDelta(t, 2250, ev.tdee, 0.001)
	require.Len(t, adj.MedicalNotes, 3)
	assert.Contains(t, adj.MedicalNotes[0], "hypothyroidism")
	assert.Contains(t, adj.MedicalNotes[1], "insulin resistance")
	assert.Contains(t, adj.MedicalNotes[2], "Cardiovascular")
}

func TestIsHypothyroid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		conditions []string
		want       bool
	}{
		"hypothyroidism":   {[]string{"hypothyroidism"}, true},
		"hashimoto":        {[]string{"Hashimoto's disease"}, true},
		"bare thyroid":     {[]string{"thyroid issues"}, true},
		"hyperthyroidism":  {[]string{"hyperthyroidism"}, false},
		"graves":           {[]string{"Graves' disease"}, false},
		"unrelated":        {[]string{"asthma"}, false},
		"hypo beats hyper": {[]string{"hyperthyroidism", "hypothyroidism"}, true},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, isHypothyroid(tc.conditions))
		})
	}
}
