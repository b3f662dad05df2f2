package simulate

import (
	"errors"
	"fmt"

	"commodity-forecast/internal/model"
)

// Params defines the fixed knobs of the projection recurrence.
// Units:
// - Horizon: simulated years beyond the last historical year
// - PriceElasticity: price correction per unit of surplus/deficit
//   fraction (0.5 = price moves half the imbalance percentage)
// - ZeroStartFallbackRate: growth rate substituted when a series
//   starts at exactly 0
type Params struct {
	Horizon               int
	PriceElasticity       float64
	ZeroStartFallbackRate float64
}

const (
	DefaultHorizon               = 5
	DefaultPriceElasticity       = 0.5
	DefaultZeroStartFallbackRate = 0.05
)

func DefaultParams() Params {
	return Params{
		Horizon:               DefaultHorizon,
		PriceElasticity:       DefaultPriceElasticity,
		ZeroStartFallbackRate: DefaultZeroStartFallbackRate,
	}
}

func (p Params) Validate() error {
	if p.Horizon < 1 {
		return errors.New("Horizon must be >= 1")
	}
	if p.PriceElasticity < 0 {
		return errors.New("PriceElasticity must be >= 0")
	}
	return nil
}

type Engine struct {
	params Params
}

func New(params Params) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	return &Engine{params: params}, nil
}

// Run executes the full simulation for one series and one scenario:
// rate estimation, policy adjustment, the projection fold, and
// aggregation into a combined timeline. The engine holds no state
// between runs; concurrent runs on independent inputs are safe.
func (e *Engine) Run(series model.HistoricalSeries, scenario model.PolicyScenario) (*Result, error) {
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("invalid series: %w", err)
	}

	baseline, err := EstimateRates(series, e.params.ZeroStartFallbackRate)
	if err != nil {
		return nil, err
	}
	rates := baseline.Adjust(scenario)

	projected := e.Project(series.Last(), rates)
	return BuildResult(series, projected, scenario), nil
}

// Project advances the market one simulated year at a time, carrying
// (supply, population, consumption per capita, price) forward from the
// seed record. Each year depends only on the previous year's state, so
// the loop is a strict sequential fold. The simulation always runs
// exactly Horizon steps; divergent or negative trajectories under
// extreme rates are reported, not clipped.
func (e *Engine) Project(seed model.HistoricalRecord, rates model.GrowthRates) []model.ProjectionYear {
	supply := seed.Production
	population := seed.Population
	consPerCapita := seed.ConsumptionPerCapita
	price := seed.Price

	out := make([]model.ProjectionYear, 0, e.params.Horizon)
	for t := 1; t <= e.params.Horizon; t++ {
		supply *= 1 + rates.Production
		population *= 1 + rates.Population
		consPerCapita *= 1 + rates.ConsumptionPerCapita

		demand := model.TotalDemand(consPerCapita, population)
		balance := supply - demand

		// Price feedback: a deficit raises price, a surplus lowers it,
		// scaled by the imbalance as a fraction of supply.
		// Zero supply has no meaningful fraction; with any demand it is
		// a full deficit, so the fraction is clamped to -1. A dead
		// market (both zero) holds price flat.
		var fraction float64
		switch {
		case supply != 0:
			fraction = balance / supply
		case demand > 0:
			fraction = -1
		}
		price *= 1 - e.params.PriceElasticity*fraction

		out = append(out, model.ProjectionYear{
			Year:           seed.Year + t,
			Supply:         supply,
			Demand:         demand,
			SurplusDeficit: balance,
			Price:          price,
		})
	}
	return out
}
