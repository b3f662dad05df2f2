package simulate

import (
	"encoding/csv"
	"os"
	"strconv"

	"commodity-forecast/internal/model"
)

func WriteTimelineCSV(path string, timeline []model.TimelineEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"kind",
		"supply",
		"demand",
		"surplus_deficit",
		"price",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, e := range timeline {
		row := []string{
			strconv.Itoa(e.Year),
			string(e.Kind),
			fmtFloat(e.Supply),
			fmtFloat(e.Demand),
			fmtFloat(e.SurplusDeficit),
			fmtFloat(e.Price),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
