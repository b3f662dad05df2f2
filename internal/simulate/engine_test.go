package simulate

import (
	"testing"

	"commodity-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func growingSeries() model.HistoricalSeries {
	return model.HistoricalSeries{
		{Year: 2018, Production: 3200, ConsumptionPerCapita: 11.5, Population: 264000, Price: 32000},
		{Year: 2020, Production: 3280, ConsumptionPerCapita: 11.6, Population: 269600, Price: 34800},
		{Year: 2023, Production: 3690, ConsumptionPerCapita: 13.0, Population: 277500, Price: 38400},
	}
}

func TestNew_RejectsInvalidParams(t *testing.T) {
	_, err := New(Params{Horizon: 0, PriceElasticity: 0.5})
	require.Error(t, err)

	_, err = New(Params{Horizon: 5, PriceElasticity: -1})
	require.Error(t, err)
}

func TestRun_Deterministic(t *testing.T) {
	engine, err := New(DefaultParams())
	require.NoError(t, err)

	scenario := model.PolicyScenario{ProductionAdjustment: 0.1, ConsumptionAdjustment: -0.05}
	a, err := engine.Run(growingSeries(), scenario)
	require.NoError(t, err)
	b, err := engine.Run(growingSeries(), scenario)
	require.NoError(t, err)

	assert.Equal(t, a.Timeline, b.Timeline)
	assert.Equal(t, a.Summary, b.Summary)
}

func TestRun_HorizonAndYears(t *testing.T) {
	params := DefaultParams()
	params.Horizon = 7
	engine, err := New(params)
	require.NoError(t, err)

	series := growingSeries()
	res, err := engine.Run(series, model.PolicyScenario{})
	require.NoError(t, err)

	projected := res.Projected()
	require.Len(t, projected, 7)
	for i, e := range projected {
		assert.Equal(t, series.Last().Year+i+1, e.Year)
	}
}

func TestRun_InsufficientHistory(t *testing.T) {
	engine, err := New(DefaultParams())
	require.NoError(t, err)

	series := model.HistoricalSeries{
		{Year: 2023, Production: 100, ConsumptionPerCapita: 10, Population: 1000, Price: 50},
	}
	res, err := engine.Run(series, model.PolicyScenario{})
	require.Nil(t, res)

	var insufficient *InsufficientHistoryError
	require.ErrorAs(t, err, &insufficient)
}

// Price must move against the sign of the surplus/deficit each year.
func TestProject_PriceMovesAgainstBalance(t *testing.T) {
	engine, err := New(DefaultParams())
	require.NoError(t, err)

	cases := []struct {
		seed  model.HistoricalRecord
		rates model.GrowthRates
	}{
		{ // persistent surplus: price must fall year over year
			seed:  model.HistoricalRecord{Year: 2023, Production: 100, ConsumptionPerCapita: 50, Population: 1000, Price: 40},
			rates: model.GrowthRates{Production: 0.08, Population: 0.01, ConsumptionPerCapita: 0.01},
		},
		{ // persistent deficit: price must rise year over year
			seed:  model.HistoricalRecord{Year: 2023, Production: 100, ConsumptionPerCapita: 120, Population: 1000, Price: 40},
			rates: model.GrowthRates{Production: -0.05, Population: 0.02, ConsumptionPerCapita: 0.05},
		},
	}

	for _, tc := range cases {
		seed := tc.seed
		projected := engine.Project(seed, tc.rates)
		prev := seed.Price
		for _, p := range projected {
			switch {
			case p.SurplusDeficit > 0:
				assert.LessOrEqual(t, p.Price, prev)
			case p.SurplusDeficit < 0:
				assert.GreaterOrEqual(t, p.Price, prev)
			default:
				assert.Equal(t, prev, p.Price)
			}
			assert.InDelta(t, p.Supply-p.Demand, p.SurplusDeficit, 1e-9)
			prev = p.Price
		}
	}
}

// Fixed-point check from a hand-computed scenario: a 3-period series
// with 5% production CAGR, no policy, one projected year.
func TestRun_KnownScenario(t *testing.T) {
	series := model.HistoricalSeries{
		{Year: 2020, Production: 100, ConsumptionPerCapita: 10, Population: 1000, Price: 50},
		{Year: 2023, Production: 115.76, ConsumptionPerCapita: 11.0, Population: 1030, Price: 55},
	}

	rates, err := EstimateRates(series, DefaultZeroStartFallbackRate)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, rates.Production, 1e-4)

	params := DefaultParams()
	params.Horizon = 1
	engine, err := New(params)
	require.NoError(t, err)

	res, err := engine.Run(series, model.PolicyScenario{})
	require.NoError(t, err)

	projected := res.Projected()
	require.Len(t, projected, 1)
	p := projected[0]

	assert.Equal(t, 2024, p.Year)
	assert.InDelta(t, 121.55, p.Supply, 0.01)
	assert.InDelta(t, 11.81, p.Demand, 0.01)

	// Large surplus, so price must fall from the seeded 55.
	assert.Greater(t, p.SurplusDeficit, 0.0)
	assert.Less(t, p.Price, 55.0)
}

func TestProject_ZeroSupply(t *testing.T) {
	engine, err := New(DefaultParams())
	require.NoError(t, err)

	// Supply pinned at zero with live demand: fraction clamps to -1,
	// so price rises by the full elasticity step each year.
	seed := model.HistoricalRecord{Year: 2023, Production: 0, ConsumptionPerCapita: 10, Population: 1000, Price: 100}
	projected := engine.Project(seed, model.GrowthRates{})
	require.NotEmpty(t, projected)
	assert.InDelta(t, 150, projected[0].Price, 1e-9)

	// Dead market: zero supply and zero demand hold price flat.
	seed.ConsumptionPerCapita = 0
	projected = engine.Project(seed, model.GrowthRates{})
	assert.InDelta(t, 100, projected[0].Price, 1e-9)
}
