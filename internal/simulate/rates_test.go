package simulate

import (
	"math"
	"testing"

	"commodity-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateRates_CompoundsBackToLastValue(t *testing.T) {
	series := model.HistoricalSeries{
		{Year: 2018, Production: 100, ConsumptionPerCapita: 10, Population: 1000, Price: 50},
		{Year: 2020, Production: 140, ConsumptionPerCapita: 9, Population: 1100, Price: 52},
		{Year: 2023, Production: 180, ConsumptionPerCapita: 12.5, Population: 1250, Price: 61},
	}

	rates, err := EstimateRates(series, DefaultZeroStartFallbackRate)
	require.NoError(t, err)

	n := float64(series.Periods())
	first, last := series.First(), series.Last()

	assert.InDelta(t, last.Production, first.Production*math.Pow(1+rates.Production, n), 1e-9)
	assert.InDelta(t, last.Population, first.Population*math.Pow(1+rates.Population, n), 1e-9)
	assert.InDelta(t, last.ConsumptionPerCapita, first.ConsumptionPerCapita*math.Pow(1+rates.ConsumptionPerCapita, n), 1e-9)
}

func TestEstimateRates_ShrinkingSeriesIsNegative(t *testing.T) {
	series := model.HistoricalSeries{
		{Year: 2020, Production: 200, ConsumptionPerCapita: 10, Population: 1000, Price: 50},
		{Year: 2021, Production: 100, ConsumptionPerCapita: 10, Population: 1000, Price: 50},
	}

	rates, err := EstimateRates(series, DefaultZeroStartFallbackRate)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, rates.Production, 1e-12)
}

func TestEstimateRates_ZeroStartFallback(t *testing.T) {
	series := model.HistoricalSeries{
		{Year: 2020, Production: 0, ConsumptionPerCapita: 10, Population: 1000, Price: 50},
		{Year: 2021, Production: 999, ConsumptionPerCapita: 11, Population: 1010, Price: 55},
	}

	rates, err := EstimateRates(series, DefaultZeroStartFallbackRate)
	require.NoError(t, err)

	// The fallback applies regardless of the last value.
	assert.Equal(t, 0.05, rates.Production)
	assert.Greater(t, rates.ConsumptionPerCapita, 0.0)
}

func TestEstimateRates_InsufficientHistory(t *testing.T) {
	series := model.HistoricalSeries{
		{Year: 2023, Production: 100, ConsumptionPerCapita: 10, Population: 1000, Price: 50},
	}

	_, err := EstimateRates(series, DefaultZeroStartFallbackRate)
	require.Error(t, err)

	var insufficient *InsufficientHistoryError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 1, insufficient.Records)
}
