package model

import (
	"fmt"
	"math"
)

// HistoricalRecord is one observed year of the market.
// Units:
// - Production: thousand tons (same unit as projected supply/demand)
// - ConsumptionPerCapita: kg per person per year
// - Population: thousands of people
// - Price: currency per kg
type HistoricalRecord struct {
	Year                 int
	Production           float64
	ConsumptionPerCapita float64
	Population           float64
	Price                float64
}

// Demand is the total market demand implied by this record.
// Population is recorded in thousands; the /1000 rescales the
// per-capita product back to the same unit as Production.
func (r HistoricalRecord) Demand() float64 {
	return TotalDemand(r.ConsumptionPerCapita, r.Population)
}

// TotalDemand converts per-capita consumption and a population in
// thousands into total demand in the supply unit.
func TotalDemand(consumptionPerCapita, populationThousands float64) float64 {
	return consumptionPerCapita * populationThousands / 1000
}

// HistoricalSeries is a chronologically ordered run of records with
// unique years. The ingestion layer is responsible for coercion,
// ordering and de-duplication; Validate re-checks the invariants the
// engine depends on.
type HistoricalSeries []HistoricalRecord

func (s HistoricalSeries) Validate() error {
	for i, r := range s {
		for name, v := range map[string]float64{
			"production":             r.Production,
			"consumption_per_capita": r.ConsumptionPerCapita,
			"population":             r.Population,
			"price":                  r.Price,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("record %d (year %d): %s is not finite", i, r.Year, name)
			}
		}
		if i > 0 && r.Year <= s[i-1].Year {
			return fmt.Errorf("record %d: year %d not strictly increasing after %d", i, r.Year, s[i-1].Year)
		}
	}
	return nil
}

func (s HistoricalSeries) First() HistoricalRecord { return s[0] }
func (s HistoricalSeries) Last() HistoricalRecord  { return s[len(s)-1] }

// Periods is the number of compounding periods spanned by the series:
// the elapsed years between the first and last observation. For
// consecutive annual data this equals count-1; sparse series compound
// across the calendar gap.
func (s HistoricalSeries) Periods() int {
	if len(s) == 0 {
		return 0
	}
	return s.Last().Year - s.First().Year
}
