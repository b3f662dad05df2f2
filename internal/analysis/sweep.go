package analysis

import (
	"sort"

	"commodity-forecast/internal/model"
	"commodity-forecast/internal/simulate"
)

// NamedScenario pairs a policy scenario with a display name for sweeps.
type NamedScenario struct {
	Name     string
	Scenario model.PolicyScenario
}

// Sweep runs the engine once per scenario over the same series and
// returns outcomes ranked descending by final surplus/deficit balance
// (the scenario that leaves the market best supplied wins). Scenarios
// that fail to simulate are skipped.
func Sweep(engine *simulate.Engine, series model.HistoricalSeries, scenarios []NamedScenario) []ScenarioOutcome {
	out := make([]ScenarioOutcome, 0, len(scenarios))
	for _, ns := range scenarios {
		result, err := engine.Run(series, ns.Scenario)
		if err != nil {
			continue
		}
		out = append(out, ComputeOutcome(ns.Name, result))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FinalBalance > out[j].FinalBalance
	})
	return out
}
