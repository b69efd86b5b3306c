package models

// ProjectResponse represents the response from a projection run
type ProjectResponse struct {
	Status string `json:"status"`
	// CapPriceEURKWh is the year-1 tenant price ceiling (cap fraction times
	// basic-supply tariff).
	CapPriceEURKWh float64      `json:"cap_price_eur_kwh"`
	GGV            ModelPayload `json:"ggv"`
	Mieterstrom    ModelPayload `json:"mieterstrom"`
}

// ModelPayload contains one supply model's results
type ModelPayload struct {
	Summary SummaryPayload `json:"summary"`
	Ledger  []LedgerRow    `json:"ledger,omitempty"`
}

// SummaryPayload contains aggregated projection results for one model
type SummaryPayload struct {
	Model       string  `json:"model"`
	NPVEUR      float64 `json:"npv_eur"`
	PaybackYear *int    `json:"payback_year"` // null = not reached within horizon

	TotalRevenueEUR     float64 `json:"total_revenue_eur"`
	TotalNetCashFlowEUR float64 `json:"total_net_cash_flow_eur"`
	FinalCumCashFlowEUR float64 `json:"final_cum_cash_flow_eur"`

	EnergyTotalKWh       float64 `json:"energy_total_kwh"`
	SelfConsumedTotalKWh float64 `json:"self_consumed_total_kwh"`
	FeedInTotalKWh       float64 `json:"feed_in_total_kwh"`
}

// LedgerRow represents one year in a projection ledger
type LedgerRow struct {
	Year int `json:"year"`

	EnergyKWh       float64 `json:"energy_kwh"`
	SelfConsumedKWh float64 `json:"self_consumed_kwh"`
	FeedInKWh       float64 `json:"feed_in_kwh"`

	InternalPriceEURKWh float64 `json:"internal_price_eur_kwh"`
	ExportPriceEURKWh   float64 `json:"export_price_eur_kwh"`
	CapBound            bool    `json:"cap_bound"`

	InternalRevenueEUR float64 `json:"internal_revenue_eur"`
	ExportRevenueEUR   float64 `json:"export_revenue_eur"`
	SubsidyRevenueEUR  float64 `json:"subsidy_revenue_eur"`
	TotalRevenueEUR    float64 `json:"total_revenue_eur"`

	OpexEUR  float64 `json:"opex_eur"`
	CapexEUR float64 `json:"capex_eur"`

	NetCashFlowEUR        float64 `json:"net_cash_flow_eur"`
	CumCashFlowEUR        float64 `json:"cum_cash_flow_eur"`
	DiscountedCashFlowEUR float64 `json:"discounted_cash_flow_eur"`
}

// BreakevenResponse represents the Mieterstrom margin report
type BreakevenResponse struct {
	Status                  string  `json:"status"`
	FirstCapBoundYear       *int    `json:"first_cap_bound_year"`
	FirstNegativeMarginYear *int    `json:"first_negative_margin_year"`
	MinMarginEURKWh         float64 `json:"min_margin_eur_kwh"`
	BreakEvenTenantPrice    float64 `json:"break_even_tenant_price_eur_kwh"`
}

// PresetInfo represents information about a scenario preset
type PresetInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	File  string      `json:"file"`
	Specs PresetSpecs `json:"specs"`
}

// PresetSpecs contains the headline preset parameters
type PresetSpecs struct {
	CapacityKWp  float64 `json:"capacity_kwp"`
	HorizonYears int     `json:"horizon_years"`
}

// ParameterInfo describes one scenario parameter for the form layer
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
