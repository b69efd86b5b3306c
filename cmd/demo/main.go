package main

import (
	"flag"
	"fmt"

	"ggv-mieterstrom/internal/config"
	"ggv-mieterstrom/internal/model"
	"ggv-mieterstrom/internal/projection"
)

// Demo:
// - Build the default scenario (99 kWp complex, 35% EV share)
// - Project both supply models over the horizon
// - Print a side-by-side yearly table to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional; defaults built in)")
	years := flag.Int("years", 5, "Number of production years to print")
	flag.Parse()

	scenario := config.DefaultScenario()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		scenario = cfg.Scenario
	}

	engine := projection.New()
	res, err := engine.Run(scenario.ToModelParams())
	if err != nil {
		panic(err)
	}

	fmt.Printf("Scenario %q: %.0f kWp, cap price %.4f EUR/kWh\n\n", scenario.Name, scenario.CapacityKWp, res.CapPrice)

	fmt.Printf("%-6s %-12s %-12s %-10s %-12s %-12s %-12s\n",
		"year", "model", "energy_kwh", "price", "revenue_eur", "net_cf_eur", "cum_cf_eur")
	parts := []struct {
		m      model.SupplyModel
		ledger []projection.YearlyRecord
	}{
		{model.ModelGGV, res.GGV.Ledger},
		{model.ModelMieterstrom, res.Mieterstrom.Ledger},
	}
	for _, part := range parts {
		for _, r := range part.ledger {
			if r.Year > *years {
				break
			}
			fmt.Printf("%-6d %-12s %-12.0f %-10.4f %-12.0f %-12.0f %-12.0f\n",
				r.Year, part.m, r.EnergyKWh, r.InternalPrice, r.TotalRevenue, r.NetCashFlow, r.CumCashFlow)
		}
		fmt.Println()
	}

	for _, mr := range []projection.ModelResult{res.GGV, res.Mieterstrom} {
		s := mr.Summary
		payback := "n/a"
		if s.PaybackYear != nil {
			payback = fmt.Sprintf("%d a", *s.PaybackYear)
		}
		fmt.Printf("%-12s NPV=%.0f EUR payback=%s\n", s.Model, s.NPV, payback)
	}
}
