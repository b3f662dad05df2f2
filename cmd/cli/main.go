package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"commodity-forecast/internal/analysis"
	"commodity-forecast/internal/config"
	"commodity-forecast/internal/data"
	"commodity-forecast/internal/model"
	"commodity-forecast/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --data sample_data.csv --config examples/config.yaml --out results/timeline.csv")
	fmt.Println("  cli sweep --data sample_data.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate outputs a CSV timeline with kind=HISTORICAL/PROJECTED per year")
	fmt.Println("  - sweep ranks a grid of policy scenarios by final surplus/deficit")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	dataPath := fs.String("data", "sample_data.csv", "Path to historical series CSV")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "results/timeline.csv", "Output CSV path")
	prodPct := fs.Float64("prod", 0, "Production growth adjustment, percent (overrides config)")
	consPct := fs.Float64("cons", 0, "Consumption growth adjustment, percent (overrides config)")
	horizon := fs.Int("horizon", 0, "Projection horizon in years (0=config/default)")
	_ = fs.Parse(args)

	series, err := data.LoadSeriesCSV(*dataPath)
	if err != nil {
		panic(err)
	}

	params := simulate.DefaultParams()
	scenario := model.PolicyScenario{}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.ToParams()
		scenario = cfg.Scenario.ToScenario()
	}
	if *prodPct != 0 {
		scenario.ProductionAdjustment = *prodPct / 100
	}
	if *consPct != 0 {
		scenario.ConsumptionAdjustment = *consPct / 100
	}
	if *horizon > 0 {
		params.Horizon = *horizon
	}

	engine, err := simulate.New(params)
	if err != nil {
		panic(err)
	}
	res, err := engine.Run(series, scenario)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := simulate.WriteTimelineCSV(*outPath, res.Timeline); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Timeline), *outPath)
	fmt.Printf("%s\n", res.Summary.Scenario)
	fmt.Printf("Last historical year: %d\n", res.Summary.LastHistoricalYear)
	fmt.Printf("Projected price: %.2f -> %.2f\n", res.Summary.FirstProjectedPrice, res.Summary.LastProjectedPrice)
	fmt.Printf("Projected balance: %.2f -> %.2f\n", res.Summary.FirstProjectedBalance, res.Summary.LastProjectedBalance)
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	dataPath := fs.String("data", "sample_data.csv", "Path to historical series CSV")
	horizon := fs.Int("horizon", 0, "Projection horizon in years (0=default)")
	_ = fs.Parse(args)

	series, err := data.LoadSeriesCSV(*dataPath)
	if err != nil {
		panic(err)
	}

	params := simulate.DefaultParams()
	if *horizon > 0 {
		params.Horizon = *horizon
	}
	engine, err := simulate.New(params)
	if err != nil {
		panic(err)
	}

	// Sweep a coarse grid of intervention strengths on both levers.
	steps := []float64{-0.20, -0.10, 0, 0.10, 0.20}
	scenarios := make([]analysis.NamedScenario, 0, len(steps)*len(steps))
	for _, p := range steps {
		for _, c := range steps {
			scenarios = append(scenarios, analysis.NamedScenario{
				Name:     fmt.Sprintf("prod%+.0f%%/cons%+.0f%%", p*100, c*100),
				Scenario: model.PolicyScenario{ProductionAdjustment: p, ConsumptionAdjustment: c},
			})
		}
	}

	ranked := analysis.Sweep(engine, series, scenarios)
	fmt.Printf("%-4s %-20s %-12s %-12s %-10s %-8s\n", "rank", "scenario", "final bal", "final price", "price %", "deficits")
	for i, o := range ranked {
		fmt.Printf("%-4d %-20s %-12.2f %-12.2f %-10.1f %-8d\n",
			i+1,
			o.Name,
			o.FinalBalance,
			o.FinalPrice,
			o.PriceChangePct,
			o.DeficitYears,
		)
	}
}
