package analysis

import (
	"math"

	"commodity-forecast/internal/simulate"
)

// ScenarioOutcome is a scenario-level summary you can use for ranking.
// It looks only at the projected window; historical rows are identical
// across scenarios and would wash out any comparison.
type ScenarioOutcome struct {
	Name     string
	Scenario string

	FirstYear int
	LastYear  int

	FinalPrice     float64
	PriceChangePct float64

	FinalBalance float64
	MinBalance   float64
	DeficitYears int

	MinPrice  float64
	MaxPrice  float64
	MeanPrice float64
}

// ComputeOutcome digests one run's projected trajectory.
// PriceChangePct is measured from the first projected year's price, or
// 0 when that price is 0.
func ComputeOutcome(name string, result *simulate.Result) ScenarioOutcome {
	o := ScenarioOutcome{Name: name, Scenario: result.Summary.Scenario}

	projected := result.Projected()
	if len(projected) == 0 {
		return o
	}
	o.FirstYear = projected[0].Year
	o.LastYear = projected[len(projected)-1].Year

	sum := 0.0
	minPrice := math.Inf(1)
	maxPrice := math.Inf(-1)
	minBalance := math.Inf(1)
	for _, e := range projected {
		sum += e.Price
		if e.Price < minPrice {
			minPrice = e.Price
		}
		if e.Price > maxPrice {
			maxPrice = e.Price
		}
		if e.SurplusDeficit < minBalance {
			minBalance = e.SurplusDeficit
		}
		if e.SurplusDeficit < 0 {
			o.DeficitYears++
		}
	}
	o.MinPrice = minPrice
	o.MaxPrice = maxPrice
	o.MeanPrice = sum / float64(len(projected))
	o.MinBalance = minBalance

	last := projected[len(projected)-1]
	o.FinalPrice = last.Price
	o.FinalBalance = last.SurplusDeficit

	first := projected[0]
	if first.Price != 0 {
		o.PriceChangePct = (last.Price - first.Price) / first.Price * 100
	}
	return o
}
