package projection

import (
	"math"

	"ggv-mieterstrom/internal/finance"
	"ggv-mieterstrom/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run projects both supply models over the scenario horizon.
// The input is not mutated and the engine holds no state; identical
// parameters produce identical results.
func (e *Engine) Run(params model.ScenarioParams) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Result{
		Params:      params,
		CapPrice:    params.CapPrice(),
		GGV:         e.runModel(params, model.ModelGGV),
		Mieterstrom: e.runModel(params, model.ModelMieterstrom),
	}, nil
}

func (e *Engine) runModel(p model.ScenarioParams, m model.SupplyModel) ModelResult {
	evShare := p.EffectiveSelfConsumptionShare()
	baseEnergy := p.CapacityKWp * p.SpecificYield
	baseOpex := p.AnnualOpexEUR()

	ledger := make([]YearlyRecord, 0, p.HorizonYears+1)

	// Year 0: commissioning. The investment is booked exactly once, before
	// any production or operating cost.
	ledger = append(ledger, YearlyRecord{
		Year:               0,
		Capex:              p.CapexEUR,
		NetCashFlow:        -p.CapexEUR,
		CumCashFlow:        -p.CapexEUR,
		DiscountedCashFlow: -p.CapexEUR,
	})
	cum := -p.CapexEUR

	for year := 1; year <= p.HorizonYears; year++ {
		energy := baseEnergy * math.Pow(1-p.Degradation, float64(year-1))
		ev := energy * evShare
		feed := energy - ev

		exportPrice := model.Grow(p.ExportPrice(), p.PriceGrowth, year)

		var internalPrice, subsidy float64
		capBound := false
		if m.Regulated() {
			internalPrice = model.Grow(p.TenantPrice, p.PriceGrowth, year)
			cap := model.Grow(p.CapPrice(), p.BasicTariffGrowth, year)
			if internalPrice > cap {
				internalPrice = cap
				capBound = true
			}
			// The subsidy is paid on EV energy only, never on feed-in.
			subsidy = ev * model.Grow(p.SubsidyRate, p.CostGrowth, year)
		} else {
			internalPrice = model.Grow(p.InternalPrice, p.PriceGrowth, year)
		}

		internalRev := ev * internalPrice
		exportRev := feed * exportPrice
		totalRev := internalRev + exportRev + subsidy

		opex := model.Grow(baseOpex, p.CostGrowth, year)
		// Negative margins are reported as-is; the engine never clamps.
		net := totalRev - opex
		cum += net

		ledger = append(ledger, YearlyRecord{
			Year: year,

			EnergyKWh:       energy,
			SelfConsumedKWh: ev,
			FeedInKWh:       feed,

			InternalPrice: internalPrice,
			ExportPrice:   exportPrice,
			CapBound:      capBound,

			InternalRevenue: internalRev,
			ExportRevenue:   exportRev,
			SubsidyRevenue:  subsidy,
			TotalRevenue:    totalRev,

			Opex: opex,

			NetCashFlow:        net,
			CumCashFlow:        cum,
			DiscountedCashFlow: finance.Discount(net, p.DiscountRate, year),
		})
	}

	return ModelResult{Ledger: ledger, Summary: summarize(m, p.DiscountRate, ledger)}
}

func summarize(m model.SupplyModel, discountRate float64, ledger []YearlyRecord) Summary {
	s := Summary{Model: m}

	cashFlows := make([]float64, len(ledger))
	for i, r := range ledger {
		cashFlows[i] = r.NetCashFlow
		s.TotalRevenue += r.TotalRevenue
		s.TotalNetCashFlow += r.NetCashFlow
		s.EnergyTotalKWh += r.EnergyKWh
		s.SelfConsumedTotalKWh += r.SelfConsumedKWh
		s.FeedInTotalKWh += r.FeedInKWh
	}

	s.NPV = finance.NPV(cashFlows, discountRate)
	s.PaybackYear = finance.Payback(cashFlows)
	if len(ledger) > 0 {
		s.FinalCumCashFlow = ledger[len(ledger)-1].CumCashFlow
	}
	return s
}
