package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeriesCSV(t *testing.T) {
	in := strings.NewReader(
		"year, production ,consumption_per_capita,population,price\n" +
			"2021,100,10,1000,50\n" +
			"2020,95,9.8,990,48\n")

	series, err := ParseSeriesCSV(in)
	require.NoError(t, err)
	require.Len(t, series, 2)

	// Rows come out chronological regardless of input order; header
	// names survive stray whitespace.
	assert.Equal(t, 2020, series[0].Year)
	assert.Equal(t, 2021, series[1].Year)
	assert.Equal(t, 95.0, series[0].Production)
	require.NoError(t, series.Validate())
}

func TestParseSeriesCSV_DropsBadRows(t *testing.T) {
	in := strings.NewReader(
		"year,production,consumption_per_capita,population,price\n" +
			"2020,100,10,1000,50\n" +
			"2021,abc,10,1000,50\n" + // non-numeric production
			"2022,110,,1000,50\n" + // missing consumption
			"2023,120,11,1050,52\n")

	series, err := ParseSeriesCSV(in)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, 2020, series[0].Year)
	assert.Equal(t, 2023, series[1].Year)
}

func TestParseSeriesCSV_DuplicateYearsCollapseToLast(t *testing.T) {
	in := strings.NewReader(
		"year,production,consumption_per_capita,population,price\n" +
			"2020,100,10,1000,50\n" +
			"2020,200,12,1100,60\n" +
			"2021,110,10.5,1010,51\n")

	series, err := ParseSeriesCSV(in)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, 200.0, series[0].Production)
}

func TestParseSeriesCSV_MissingColumn(t *testing.T) {
	in := strings.NewReader("year,production\n2020,100\n")

	_, err := ParseSeriesCSV(in)
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
}

func TestParseSeriesCSV_NoUsableRows(t *testing.T) {
	in := strings.NewReader(
		"year,production,consumption_per_capita,population,price\n" +
			"x,y,z,w,v\n")

	_, err := ParseSeriesCSV(in)
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
}
