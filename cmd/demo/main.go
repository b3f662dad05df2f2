package main

import (
	"flag"
	"fmt"

	"commodity-forecast/internal/model"
	"commodity-forecast/internal/simulate"
)

// Demo:
// - Build a small historical series inline
// - Run the baseline and one intervention scenario
// - Print the combined timelines to show how models fit together
func main() {
	horizon := flag.Int("horizon", 5, "Projection horizon in years")
	outCSV := flag.String("out", "", "Optional path to write the intervention timeline CSV")
	flag.Parse()

	series := model.HistoricalSeries{
		{Year: 2018, Production: 3200, ConsumptionPerCapita: 11.5, Population: 264000, Price: 32000},
		{Year: 2019, Production: 3350, ConsumptionPerCapita: 11.9, Population: 266900, Price: 33500},
		{Year: 2020, Production: 3280, ConsumptionPerCapita: 11.6, Population: 269600, Price: 34800},
		{Year: 2021, Production: 3410, ConsumptionPerCapita: 12.1, Population: 272200, Price: 36200},
		{Year: 2022, Production: 3560, ConsumptionPerCapita: 12.6, Population: 274800, Price: 37100},
		{Year: 2023, Production: 3690, ConsumptionPerCapita: 13.0, Population: 277500, Price: 38400},
	}

	params := simulate.DefaultParams()
	params.Horizon = *horizon
	engine, err := simulate.New(params)
	if err != nil {
		panic(err)
	}

	baseline := model.PolicyScenario{}
	intervention := model.PolicyScenario{ProductionAdjustment: 0.10, ConsumptionAdjustment: -0.05}

	for _, scenario := range []model.PolicyScenario{baseline, intervention} {
		res, err := engine.Run(series, scenario)
		if err != nil {
			panic(err)
		}

		fmt.Printf("%s\n", res.Summary.Scenario)
		for _, e := range res.Timeline {
			fmt.Printf("  %d %-10s supply=%9.1f  demand=%9.1f  balance=%+9.1f  price=%9.1f\n",
				e.Year,
				string(e.Kind),
				e.Supply,
				e.Demand,
				e.SurplusDeficit,
				e.Price,
			)
		}
		fmt.Printf("  projected price %.1f -> %.1f, balance %+.1f -> %+.1f\n\n",
			res.Summary.FirstProjectedPrice,
			res.Summary.LastProjectedPrice,
			res.Summary.FirstProjectedBalance,
			res.Summary.LastProjectedBalance,
		)

		if *outCSV != "" && scenario == intervention {
			if err := simulate.WriteTimelineCSV(*outCSV, res.Timeline); err != nil {
				panic(err)
			}
			fmt.Printf("Wrote CSV: %s\n", *outCSV)
		}
	}
}
