package simulate

import (
	"math"

	"commodity-forecast/internal/model"
)

// EstimateRates computes the compound per-period growth rate of each
// tracked quantity from the first and last observations of the series.
//
// rate = (last/first)^(1/n) - 1, n = elapsed years between the first
// and last observation.
//
// A first value of exactly 0 yields fallbackRate instead of dividing by
// zero; this is a fixed policy choice, not a derived value. Series
// whose endpoints flip sign are not guarded and produce NaN, same as
// any other CAGR over sign-changing data.
func EstimateRates(series model.HistoricalSeries, fallbackRate float64) (model.GrowthRates, error) {
	n := series.Periods()
	if n < 1 {
		return model.GrowthRates{}, &InsufficientHistoryError{Records: len(series)}
	}
	first, last := series.First(), series.Last()
	return model.GrowthRates{
		Production:           cagr(first.Production, last.Production, n, fallbackRate),
		Population:           cagr(first.Population, last.Population, n, fallbackRate),
		ConsumptionPerCapita: cagr(first.ConsumptionPerCapita, last.ConsumptionPerCapita, n, fallbackRate),
	}, nil
}

func cagr(first, last float64, periods int, fallback float64) float64 {
	if first == 0 {
		return fallback
	}
	return math.Pow(last/first, 1/float64(periods)) - 1
}
