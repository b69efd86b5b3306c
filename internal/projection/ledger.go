package projection

import "ggv-mieterstrom/internal/model"

// YearlyRecord is one row of per-year output for one supply model.
// This is the primary artifact for "what happened" in a projection.
// Year 0 is the commissioning year: CAPEX only, no production.
type YearlyRecord struct {
	Year int

	EnergyKWh       float64
	SelfConsumedKWh float64
	FeedInKWh       float64

	// InternalPrice is the EUR/kWh actually charged for EV energy this
	// year: the grown GGV price, or the grown tenant price after the cap.
	InternalPrice float64
	ExportPrice   float64
	// CapBound is true when the regulatory cap clamped the tenant price.
	CapBound bool

	InternalRevenue float64
	ExportRevenue   float64
	SubsidyRevenue  float64
	TotalRevenue    float64

	Opex  float64
	Capex float64

	NetCashFlow        float64
	CumCashFlow        float64
	DiscountedCashFlow float64
}

// Summary aggregates one model's ledger.
type Summary struct {
	Model model.SupplyModel

	NPV float64
	// PaybackYear is nil when the cumulative cash flow never turns
	// non-negative within the horizon.
	PaybackYear *int

	TotalRevenue     float64
	TotalNetCashFlow float64
	FinalCumCashFlow float64

	EnergyTotalKWh       float64
	SelfConsumedTotalKWh float64
	FeedInTotalKWh       float64
}

// ModelResult is the ledger and summary for one supply model.
type ModelResult struct {
	Ledger  []YearlyRecord
	Summary Summary
}

// Result bundles both models projected from the same parameters.
type Result struct {
	Params model.ScenarioParams
	// CapPrice is the year-1 tenant price ceiling.
	CapPrice float64

	GGV         ModelResult
	Mieterstrom ModelResult
}
