package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"commodity-forecast/internal/model"
)

// MalformedInputError means the raw input produced no usable records:
// wrong columns, or every row failed numeric coercion.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed input: " + e.Reason
}

var requiredColumns = []string{
	"year",
	"production",
	"consumption_per_capita",
	"population",
	"price",
}

// ParseSeriesCSV reads a historical series from CSV. The ingestion
// contract mirrors the simulation core's expectations:
// - header names are whitespace-trimmed and matched case-insensitively
// - rows with missing or non-numeric values are dropped, not errors
// - duplicate years collapse to the last occurrence
// - output is sorted chronologically
// A file yielding zero usable rows is a MalformedInputError; a series
// too short to simulate is left for the engine to reject.
func ParseSeriesCSV(r io.Reader) (model.HistoricalSeries, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, &MalformedInputError{Reason: "empty or unreadable CSV"}
	}

	index := map[string]int{}
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("missing column %q", col)}
		}
	}

	byYear := map[int]model.HistoricalRecord{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Structurally broken row (bad quoting etc); drop it like
			// any other uncoercible row.
			continue
		}
		rec, ok := coerceRow(
			field(row, index["year"]),
			field(row, index["production"]),
			field(row, index["consumption_per_capita"]),
			field(row, index["population"]),
			field(row, index["price"]),
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

// LoadSeriesCSV reads a series from a CSV file on disk.
func LoadSeriesCSV(path string) (model.HistoricalSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSeriesCSV(f)
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// coerceRow converts one raw row to a typed record. Any field that
// fails numeric coercion drops the whole row.
func coerceRow(year, production, consPerCapita, population, price string) (model.HistoricalRecord, bool) {
	y, err := strconv.ParseFloat(year, 64)
	if err != nil {
		return model.HistoricalRecord{}, false
	}
	vals := make([]float64, 0, 4)
	for _, s := range []string{production, consPerCapita, population, price} {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.HistoricalRecord{}, false
		}
		vals = append(vals, v)
	}
	return model.HistoricalRecord{
		Year:                 int(y),
		Production:           vals[0],
		ConsumptionPerCapita: vals[1],
		Population:           vals[2],
		Price:                vals[3],
	}, true
}
