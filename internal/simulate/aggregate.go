package simulate

import "commodity-forecast/internal/model"

// Summary is the scenario-level digest of one run.
type Summary struct {
	Scenario           string
	LastHistoricalYear int

	FirstProjectedPrice float64
	LastProjectedPrice  float64

	FirstProjectedBalance float64
	LastProjectedBalance  float64
}

// Result is the terminal artifact of a run: the combined timeline plus
// the summary. Immutable once built; the caller owns it.
type Result struct {
	Timeline []model.TimelineEntry
	Summary  Summary
}

// BuildResult concatenates the historical rows (demand and balance
// recomputed with the same formula the projection uses) with the
// projected rows into one chronologically ordered timeline. Rates are
// not recomputed here; this is pure aggregation.
func BuildResult(series model.HistoricalSeries, projected []model.ProjectionYear, scenario model.PolicyScenario) *Result {
	timeline := make([]model.TimelineEntry, 0, len(series)+len(projected))

	for _, r := range series {
		demand := r.Demand()
		timeline = append(timeline, model.TimelineEntry{
			Kind: model.KindHistorical,
			ProjectionYear: model.ProjectionYear{
				Year:           r.Year,
				Supply:         r.Production,
				Demand:         demand,
				SurplusDeficit: r.Production - demand,
				Price:          r.Price,
			},
		})
	}
	for _, p := range projected {
		timeline = append(timeline, model.TimelineEntry{Kind: model.KindProjected, ProjectionYear: p})
	}

	summary := Summary{
		Scenario:           scenario.Label(),
		LastHistoricalYear: series.Last().Year,
	}
	if len(projected) > 0 {
		summary.FirstProjectedPrice = projected[0].Price
		summary.LastProjectedPrice = projected[len(projected)-1].Price
		summary.FirstProjectedBalance = projected[0].SurplusDeficit
		summary.LastProjectedBalance = projected[len(projected)-1].SurplusDeficit
	}

	return &Result{Timeline: timeline, Summary: summary}
}

// Projected returns only the simulated rows of the timeline.
func (r *Result) Projected() []model.TimelineEntry {
	out := make([]model.TimelineEntry, 0, len(r.Timeline))
	for _, e := range r.Timeline {
		if e.Kind == model.KindProjected {
			out = append(out, e)
		}
	}
	return out
}
