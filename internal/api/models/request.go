package models

// ProjectRequest represents the request body for running a projection
type ProjectRequest struct {
	// Preset optionally names a preset file (by id, without extension);
	// non-zero Scenario fields override it.
	Preset   string          `json:"preset,omitempty"`
	Scenario ScenarioPayload `json:"scenario"`
	Options  ProjectOptions  `json:"options,omitempty"`
}

// ScenarioPayload is the wire shape of a scenario parameter set
type ScenarioPayload struct {
	Name string `json:"name,omitempty"`

	CapacityKWp   float64 `json:"capacity_kwp"`
	SpecificYield float64 `json:"specific_yield_kwh_per_kwp"`

	SelfConsumptionShare float64  `json:"self_consumption_share"`
	FeedInShareOverride  *float64 `json:"feed_in_share_override,omitempty"`
	BatteryUpliftShare   float64  `json:"battery_uplift_share,omitempty"`

	InternalPrice     float64 `json:"internal_price_eur_kwh"`
	TenantPrice       float64 `json:"tenant_price_eur_kwh"`
	BasicSupplyTariff float64 `json:"basic_supply_tariff_eur_kwh"`
	CapFraction       float64 `json:"cap_fraction,omitempty"`
	SubsidyRate       float64 `json:"subsidy_rate_eur_kwh"`

	FeedInTariff          float64  `json:"feed_in_tariff_eur_kwh"`
	MarketingFee          float64  `json:"marketing_fee_eur_kwh,omitempty"`
	MarketingThresholdKWp *float64 `json:"marketing_threshold_kwp,omitempty"`

	CapexEUR       float64 `json:"capex_eur"`
	OpexPctOfCapex float64 `json:"opex_pct_of_capex"`
	OpexFixedEUR   float64 `json:"opex_fixed_eur"`

	HorizonYears int     `json:"horizon_years"`
	Degradation  float64 `json:"degradation"`

	PriceGrowth       float64  `json:"price_growth"`
	BasicTariffGrowth *float64 `json:"basic_tariff_growth,omitempty"`
	CostGrowth        float64  `json:"cost_growth"`

	DiscountRate float64 `json:"discount_rate"`
}

// ProjectOptions contains optional projection parameters
type ProjectOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}
