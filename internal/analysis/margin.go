package analysis

import (
	"ggv-mieterstrom/internal/finance"
	"ggv-mieterstrom/internal/model"
	"ggv-mieterstrom/internal/projection"
)

// MarginReport summarizes the regulatory squeeze on a Mieterstrom ledger:
// when the cap starts to bind, when (if ever) the yearly margin turns
// negative, and the year-1 tenant price needed to break even.
type MarginReport struct {
	// FirstCapBoundYear is the first production year in which the cap
	// clamped the tenant price; nil if it never binds.
	FirstCapBoundYear *int
	// FirstNegativeMarginYear is the first production year with negative
	// net cash flow; nil if none.
	FirstNegativeMarginYear *int
	// MinMarginPerKWh is the lowest net cash flow per generated kWh across
	// production years.
	MinMarginPerKWh float64
	// BreakEvenTenantPrice is the year-1 tenant price at which revenue
	// covers OPEX plus the annualized investment. Zero when no EV energy
	// is delivered.
	BreakEvenTenantPrice float64
}

// Report derives a MarginReport from an already-computed projection.
// It performs no parameter search.
func Report(params model.ScenarioParams, res projection.ModelResult) MarginReport {
	rep := MarginReport{}

	first := true
	for _, r := range res.Ledger {
		if r.Year == 0 {
			continue
		}
		if r.CapBound && rep.FirstCapBoundYear == nil {
			y := r.Year
			rep.FirstCapBoundYear = &y
		}
		if r.NetCashFlow < 0 && rep.FirstNegativeMarginYear == nil {
			y := r.Year
			rep.FirstNegativeMarginYear = &y
		}
		if r.EnergyKWh > 0 {
			margin := r.NetCashFlow / r.EnergyKWh
			if first || margin < rep.MinMarginPerKWh {
				rep.MinMarginPerKWh = margin
				first = false
			}
		}
	}

	rep.BreakEvenTenantPrice = breakEvenTenantPrice(params)
	return rep
}

// breakEvenTenantPrice solves year 1 for the tenant price that makes net
// cash flow zero once CAPEX is spread over the horizon as an annuity:
//
//	ev*price + ev*subsidy + feed*export = opex + annuity*capex
func breakEvenTenantPrice(p model.ScenarioParams) float64 {
	energy := p.CapacityKWp * p.SpecificYield
	ev := energy * p.EffectiveSelfConsumptionShare()
	if ev <= 0 {
		return 0
	}
	feed := energy - ev

	annualCapex := p.CapexEUR * finance.AnnuityFactor(p.DiscountRate, p.HorizonYears)
	costs := p.AnnualOpexEUR() + annualCapex
	covered := feed*p.ExportPrice() + ev*p.SubsidyRate
	return (costs - covered) / ev
}
