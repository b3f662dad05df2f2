package data

import (
	"sort"
	"strings"

	"commodity-forecast/internal/model"
)

// ParseManualText reads a series from pasted text: one record per
// line, comma-separated in the fixed order
// year,production,consumption_per_capita,population,price.
// Blank lines are skipped and uncoercible lines are dropped, matching
// the CSV ingestion contract.
func ParseManualText(text string) (model.HistoricalSeries, error) {
	byYear := map[int]model.HistoricalRecord{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != len(requiredColumns) {
			continue
		}
		rec, ok := coerceRow(
			strings.TrimSpace(parts[0]),
			strings.TrimSpace(parts[1]),
			strings.TrimSpace(parts[2]),
			strings.TrimSpace(parts[3]),
			strings.TrimSpace(parts[4]),
		)
		if !ok {
			continue
		}
		byYear[rec.Year] = rec
	}

	if len(byYear) == 0 {
		return nil, &MalformedInputError{Reason: "no rows with valid numeric fields"}
	}

	series := make(model.HistoricalSeries, 0, len(byYear))
	for _, rec := range byYear {
		series = append(series, rec)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })
	return series, nil
}
