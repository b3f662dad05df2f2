package model

import "fmt"

// PolicyScenario is an analyst-chosen intervention: multiplicative
// offsets applied to the baseline production and consumption growth
// rates. +0.10 means "10% faster growth than the historical trend".
// Values are fractions, not percents; conversion from form/CLI percent
// inputs happens at the boundary.
//
// No bounds are enforced. Adjustments far outside [-1, +inf) produce
// non-physical trajectories, which the engine reports as-is.
type PolicyScenario struct {
	ProductionAdjustment  float64
	ConsumptionAdjustment float64
}

// Label is the human-readable restatement of the two policy levers
// used in summaries, e.g. "Production policy: +10% | Consumption policy: -5%".
func (s PolicyScenario) Label() string {
	return fmt.Sprintf("Production policy: %+.0f%% | Consumption policy: %+.0f%%",
		s.ProductionAdjustment*100, s.ConsumptionAdjustment*100)
}

// GrowthRates are per-period compound rates, constant across the
// projection horizon.
type GrowthRates struct {
	Production           float64
	Population           float64
	ConsumptionPerCapita float64
}

// Adjust applies a policy scenario to the baseline rates.
// Scaling is multiplicative, so a zero baseline rate stays zero under
// any policy (policy cannot create growth from nothing). Population is
// policy-invariant: the modeled levers act on production and
// consumption only.
func (r GrowthRates) Adjust(s PolicyScenario) GrowthRates {
	return GrowthRates{
		Production:           r.Production * (1 + s.ProductionAdjustment),
		Population:           r.Population,
		ConsumptionPerCapita: r.ConsumptionPerCapita * (1 + s.ConsumptionAdjustment),
	}
}
