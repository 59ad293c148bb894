package cli

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/fitai/plancheck/internal/engine"
)

func init() {
	// Stable output for string assertions.
	color.NoColor = true
}

func okResults() engine.Results {
	return engine.Results{
		CanProceed: true,
		Metrics: engine.CalculatedMetrics{
			BMR:                    1749,
			TDEE:                   2310,
			TargetCalories:         2310,
			ProteinG:               128,
			CarbsG:                 202,
			FatG:                   110,
			TimelineWeeks:          12,
			EstimatedTimelineWeeks: 12,
			WaterIntakeML:          2800,
			FiberG:                 32,
		},
	}
}

func TestRenderResults_Proceeding(t *testing.T) {
	r := okResults()
	out := renderResults(&r)

	assert.Contains(t, out, "✓ Plan can proceed")
	assert.Contains(t, out, "BMR 1749 kcal   TDEE 2310 kcal   Target 2310 kcal")
	assert.Contains(t, out, "Protein 128g   Carbs 202g   Fat 110g")
	assert.Contains(t, out, "Water 2800 ml/day   Fiber 32 g/day")
	assert.NotContains(t, out, "Adjustments:")
	assert.NotContains(t, out, "est.")
}

func TestRenderResults_Blocked(t *testing.T) {
	r := okResults()
	r.CanProceed = false
	r.HasErrors = true
	r.Errors = []engine.Finding{
		{
			Code:            engine.CodeBelowBMR,
			Status:          engine.StatusBlocked,
			Message:         "The plan needs 1400 calories/day, below your basal metabolic rate of 1700.",
			Recommendations: []string{"Extend your timeline so daily calories stay at or above BMR."},
		},
	}

	out := renderResults(&r)
	assert.Contains(t, out, "✗ Plan blocked (1 finding(s))")
	assert.Contains(t, out, "BLOCKED BELOW_BMR")
	assert.Contains(t, out, "→ Extend your timeline")
}

func TestRenderResults_WarningsAndAdjustments(t *testing.T) {
	r := okResults()
	r.HasWarnings = true
	r.Warnings = []engine.Finding{
		{
			Code:       engine.CodeDeficitLimited,
			Status:     engine.StatusWarning,
			Message:    "Calories were raised for safety.",
			Impact:     31.11,
			CanProceed: true,
		},
	}
	r.Adjustments = &engine.Adjustments{
		Refeed:        &engine.RefeedSchedule{Interval: "weekly", RefeedCalories: 2367, StartWeek: 1},
		DietBreakWeek: 8,
		MedicalNotes:  []string{"Daily energy expenditure reduced 10% for hypothyroidism."},
	}

	out := renderResults(&r)
	assert.Contains(t, out, "WARNING DEFICIT_LIMITED_FOR_SAFETY")
	assert.Contains(t, out, "impact: 31%")
	assert.Contains(t, out, "Refeed: weekly day at 2367 kcal starting week 1")
	assert.Contains(t, out, "Diet break: week 8 at maintenance")
	assert.Contains(t, out, "Note: Daily energy expenditure reduced 10% for hypothyroidism.")
}

func TestRenderResults_SleepEstimateShown(t *testing.T) {
	r := okResults()
	r.Metrics.EstimatedTimelineWeeks = 13.4

	out := renderResults(&r)
	assert.Contains(t, out, "(est. 13.4 weeks at current sleep)")
}
