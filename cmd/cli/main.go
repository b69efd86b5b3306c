package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"ggv-mieterstrom/internal/analysis"
	"ggv-mieterstrom/internal/config"
	"ggv-mieterstrom/internal/projection"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "project":
		cmdProject(os.Args[2:])
	case "breakeven":
		cmdBreakeven(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli project --config examples/config.yaml --out results/scenario_years.csv")
	fmt.Println("  cli breakeven --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - project outputs a CSV with one row per model and year (GGV + MIETERSTROM)")
	fmt.Println("  - breakeven reports cap binding and margin limits for the Mieterstrom model")
}

func cmdProject(args []string) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/scenario_years.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	res := runProjection(*cfgPath)

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := projection.WriteComparisonCSVFile(*outPath, res); err != nil {
		panic(err)
	}

	rows := len(res.GGV.Ledger) + len(res.Mieterstrom.Ledger)
	fmt.Printf("Wrote %d rows to %s\n", rows, *outPath)
	fmt.Printf("Cap price (year 1): %.4f EUR/kWh\n", res.CapPrice)
	printSummary(res.GGV)
	printSummary(res.Mieterstrom)
}

func cmdBreakeven(args []string) {
	fs := flag.NewFlagSet("breakeven", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	res := runProjection(*cfgPath)
	report := analysis.Report(res.Params, res.Mieterstrom)

	fmt.Printf("First year cap binds:        %s\n", fmtYear(report.FirstCapBoundYear))
	fmt.Printf("First negative-margin year:  %s\n", fmtYear(report.FirstNegativeMarginYear))
	fmt.Printf("Min margin:                  %.4f EUR/kWh\n", report.MinMarginPerKWh)
	fmt.Printf("Break-even tenant price:     %.4f EUR/kWh\n", report.BreakEvenTenantPrice)
}

func runProjection(cfgPath string) *projection.Result {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	engine := projection.New()
	res, err := engine.Run(cfg.Scenario.ToModelParams())
	if err != nil {
		panic(err)
	}
	return res
}

func printSummary(mr projection.ModelResult) {
	s := mr.Summary
	fmt.Printf("%-12s NPV=%.0f EUR  payback=%s  energy=%.0f kWh (EV %.0f / feed-in %.0f)\n",
		s.Model,
		s.NPV,
		fmtYear(s.PaybackYear),
		s.EnergyTotalKWh,
		s.SelfConsumedTotalKWh,
		s.FeedInTotalKWh,
	)
}

func fmtYear(y *int) string {
	if y == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d a", *y)
}
