package engine

import "math"

// Long, steep deficits get scheduled relief against metabolic adaptation.
const (
	refeedMinWeeks    = 12
	refeedMinDeficit  = 0.20
	dietBreakMinWeeks = 16
)

// scheduleRefeeds attaches a weekly refeed day at maintenance calories
// and/or a diet-break week at the timeline midpoint to long loss plans.
func scheduleRefeeds(ev *evaluation, adj *Adjustments) {
	if !ev.isWeightLoss {
		return
	}
	weeks := ev.body.TargetTimelineWeeks

	if weeks >= refeedMinWeeks && ev.deficitPercent() >= refeedMinDeficit-deficitRoundingSlack {
		adj.Refeed = &RefeedSchedule{
			Interval:       "weekly",
			RefeedCalories: int(math.Round(ev.tdee)),
			StartWeek:      1,
		}
	}

	if weeks >= dietBreakMinWeeks {
		adj.DietBreakWeek = weeks / 2
	}
}
