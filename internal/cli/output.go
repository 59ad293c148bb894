package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/fitai/plancheck/internal/engine"
)

var (
	blockedColor = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	okColor      = color.New(color.FgGreen, color.Bold)
	dimColor     = color.New(color.Faint)
)

// renderResults formats a validation outcome for terminal display.
func renderResults(r *engine.Results) string {
	var sb strings.Builder

	if r.CanProceed {
		sb.WriteString(okColor.Sprint("✓ Plan can proceed"))
	} else {
		sb.WriteString(blockedColor.Sprintf("✗ Plan blocked (%d finding(s))", len(r.Errors)))
	}
	sb.WriteString("\n\n")

	for _, f := range r.Errors {
		sb.WriteString(blockedColor.Sprintf("  BLOCKED %s\n", f.Code))
		writeFindingBody(&sb, f)
	}
	for _, f := range r.Warnings {
		sb.WriteString(warningColor.Sprintf("  WARNING %s\n", f.Code))
		writeFindingBody(&sb, f)
	}

	sb.WriteString("Targets:\n")
	m := r.Metrics
	fmt.Fprintf(&sb, "  BMR %d kcal   TDEE %d kcal   Target %d kcal\n", m.BMR, m.TDEE, m.TargetCalories)
	fmt.Fprintf(&sb, "  Protein %dg   Carbs %dg   Fat %dg\n", m.ProteinG, m.CarbsG, m.FatG)
	fmt.Fprintf(&sb, "  Rate %.2f kg/week over %d weeks", m.WeeklyRateKG, m.TimelineWeeks)
	if m.EstimatedTimelineWeeks > float64(m.TimelineWeeks) {
		fmt.Fprintf(&sb, " (est. %.1f weeks at current sleep)", m.EstimatedTimelineWeeks)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  Water %d ml/day   Fiber %d g/day\n", m.WaterIntakeML, m.FiberG)

	if r.Adjustments != nil {
		sb.WriteString(renderAdjustments(r.Adjustments))
	}
	return sb.String()
}

// writeFindingBody prints the message and remediation lines for a finding.
func writeFindingBody(sb *strings.Builder, f engine.Finding) {
	fmt.Fprintf(sb, "    %s\n", f.Message)
	if f.Impact > 0 {
		sb.WriteString(dimColor.Sprintf("    impact: %.0f%%\n", f.Impact))
	}
	for _, rec := range f.Recommendations {
		sb.WriteString(dimColor.Sprintf("    → %s\n", rec))
	}
	sb.WriteString("\n")
}

// renderAdjustments prints refeed scheduling and medical notes.
func renderAdjustments(adj *engine.Adjustments) string {
	var sb strings.Builder
	sb.WriteString("Adjustments:\n")
	if adj.Refeed != nil {
		fmt.Fprintf(&sb, "  Refeed: %s day at %d kcal starting week %d\n",
			adj.Refeed.Interval, adj.Refeed.RefeedCalories, adj.Refeed.StartWeek)
	}
	if adj.DietBreakWeek > 0 {
		fmt.Fprintf(&sb, "  Diet break: week %d at maintenance\n", adj.DietBreakWeek)
	}
	for _, note := range adj.MedicalNotes {
		fmt.Fprintf(&sb, "  Note: %s\n", note)
	}
	return sb.String()
}
