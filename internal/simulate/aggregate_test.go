package simulate

import (
	"testing"

	"commodity-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResult_TimelineOrdering(t *testing.T) {
	series := growingSeries()
	engine, err := New(DefaultParams())
	require.NoError(t, err)

	res, err := engine.Run(series, model.PolicyScenario{})
	require.NoError(t, err)

	require.Len(t, res.Timeline, len(series)+DefaultHorizon)

	// One historical entry per input record, then exactly horizon
	// projected entries, strictly increasing by year throughout.
	for i, e := range res.Timeline {
		if i < len(series) {
			assert.Equal(t, model.KindHistorical, e.Kind)
			assert.Equal(t, series[i].Year, e.Year)
		} else {
			assert.Equal(t, model.KindProjected, e.Kind)
		}
		if i > 0 {
			assert.Greater(t, e.Year, res.Timeline[i-1].Year)
		}
	}

	// Projected years run consecutively from the last historical year.
	projected := res.Projected()
	for i, e := range projected {
		assert.Equal(t, series.Last().Year+i+1, e.Year)
	}
}

func TestBuildResult_RecomputesHistoricalBalance(t *testing.T) {
	series := growingSeries()
	res := BuildResult(series, nil, model.PolicyScenario{})

	for i, e := range res.Timeline {
		r := series[i]
		wantDemand := r.ConsumptionPerCapita * r.Population / 1000
		assert.Equal(t, r.Production, e.Supply)
		assert.InDelta(t, wantDemand, e.Demand, 1e-9)
		assert.InDelta(t, r.Production-wantDemand, e.SurplusDeficit, 1e-9)
		assert.Equal(t, r.Price, e.Price)
	}
}

func TestBuildResult_Summary(t *testing.T) {
	series := growingSeries()
	projected := []model.ProjectionYear{
		{Year: 2024, Supply: 3800, Demand: 3700, SurplusDeficit: 100, Price: 38000},
		{Year: 2025, Supply: 3900, Demand: 3850, SurplusDeficit: 50, Price: 37500},
	}
	scenario := model.PolicyScenario{ProductionAdjustment: 0.10}

	res := BuildResult(series, projected, scenario)

	assert.Equal(t, scenario.Label(), res.Summary.Scenario)
	assert.Equal(t, 2023, res.Summary.LastHistoricalYear)
	assert.Equal(t, 38000.0, res.Summary.FirstProjectedPrice)
	assert.Equal(t, 37500.0, res.Summary.LastProjectedPrice)
	assert.Equal(t, 100.0, res.Summary.FirstProjectedBalance)
	assert.Equal(t, 50.0, res.Summary.LastProjectedBalance)
}
