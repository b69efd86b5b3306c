package model

import (
	"fmt"
	"math"
)

// ScenarioParams defines the energy and economic parameters of one projection.
// Units:
// - CapacityKWp: kWp
// - SpecificYield: kWh/kWp/year
// - shares, growth rates, Degradation: fractions 0..1
// - per-kWh prices: EUR/kWh
// - CapexEUR, OpexFixedEUR: EUR
type ScenarioParams struct {
	Name string

	CapacityKWp   float64
	SpecificYield float64

	// SelfConsumptionShare is the fraction of generated energy delivered to
	// the building (EV); the remainder is fed into the public grid.
	// FeedInShareOverride, when set, takes precedence: EV share = 1 - override.
	SelfConsumptionShare float64
	FeedInShareOverride  *float64
	// BatteryUpliftShare models storage raising the EV share by a fixed
	// number of share points. The effective share is clamped to 1.
	BatteryUpliftShare float64

	// InternalPrice is the freely set GGV price for EV energy.
	InternalPrice float64
	// TenantPrice is the planned Mieterstrom end-customer price before the
	// regulatory cap is applied.
	TenantPrice       float64
	BasicSupplyTariff float64
	// CapFraction of the basic-supply tariff is the maximum legally
	// chargeable tenant price (0.90 per § 42a EnWG).
	CapFraction float64
	// SubsidyRate is paid per kWh of EV energy in the Mieterstrom model,
	// never on feed-in energy.
	SubsidyRate float64

	FeedInTariff float64
	// MarketingFee is deducted from the feed-in tariff when the plant
	// exceeds MarketingThresholdKWp (direct marketing obligation).
	MarketingFee          float64
	MarketingThresholdKWp float64

	CapexEUR       float64
	OpexPctOfCapex float64
	OpexFixedEUR   float64

	HorizonYears int
	Degradation  float64

	// PriceGrowth escalates revenue-side prices (internal, tenant, export).
	// BasicTariffGrowth escalates the cap reference tariff.
	// CostGrowth escalates OPEX and the subsidy rate.
	PriceGrowth       float64
	BasicTariffGrowth float64
	CostGrowth        float64

	DiscountRate float64
}

// InputError reports a parameter that fails validation. Field carries the
// wire name so the form layer can attach the message to a widget.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &InputError{Field: field, Reason: reason}
}

func (p ScenarioParams) Validate() error {
	if p.CapacityKWp <= 0 {
		return invalid("capacity_kwp", "must be > 0")
	}
	if p.SpecificYield <= 0 {
		return invalid("specific_yield_kwh_per_kwp", "must be > 0")
	}
	if p.SelfConsumptionShare < 0 || p.SelfConsumptionShare > 1 {
		return invalid("self_consumption_share", "must be in [0, 1]")
	}
	if p.FeedInShareOverride != nil && (*p.FeedInShareOverride < 0 || *p.FeedInShareOverride > 1) {
		return invalid("feed_in_share_override", "must be in [0, 1]")
	}
	if p.BatteryUpliftShare < 0 {
		return invalid("battery_uplift_share", "must be >= 0")
	}
	if p.InternalPrice < 0 {
		return invalid("internal_price_eur_kwh", "must be >= 0")
	}
	if p.TenantPrice < 0 {
		return invalid("tenant_price_eur_kwh", "must be >= 0")
	}
	if p.BasicSupplyTariff < 0 {
		return invalid("basic_supply_tariff_eur_kwh", "must be >= 0")
	}
	if p.CapFraction <= 0 || p.CapFraction > 1 {
		return invalid("cap_fraction", "must be in (0, 1]")
	}
	if p.SubsidyRate < 0 {
		return invalid("subsidy_rate_eur_kwh", "must be >= 0")
	}
	if p.FeedInTariff < 0 {
		return invalid("feed_in_tariff_eur_kwh", "must be >= 0")
	}
	if p.MarketingFee < 0 {
		return invalid("marketing_fee_eur_kwh", "must be >= 0")
	}
	if p.MarketingThresholdKWp < 0 {
		return invalid("marketing_threshold_kwp", "must be >= 0")
	}
	if p.CapexEUR < 0 {
		return invalid("capex_eur", "must be >= 0")
	}
	if p.OpexPctOfCapex < 0 {
		return invalid("opex_pct_of_capex", "must be >= 0")
	}
	if p.OpexFixedEUR < 0 {
		return invalid("opex_fixed_eur", "must be >= 0")
	}
	if p.HorizonYears < 1 {
		return invalid("horizon_years", "must be >= 1")
	}
	if p.Degradation < 0 || p.Degradation > 1 {
		return invalid("degradation", "must be in [0, 1]")
	}
	if p.PriceGrowth < 0 {
		return invalid("price_growth", "must be >= 0")
	}
	if p.BasicTariffGrowth < 0 {
		return invalid("basic_tariff_growth", "must be >= 0")
	}
	if p.CostGrowth < 0 {
		return invalid("cost_growth", "must be >= 0")
	}
	if p.DiscountRate <= -1 {
		return invalid("discount_rate", "must be > -1")
	}
	return nil
}

// EffectiveSelfConsumptionShare resolves the feed-in override and the
// battery uplift into the EV share the projection uses.
func (p ScenarioParams) EffectiveSelfConsumptionShare() float64 {
	share := p.SelfConsumptionShare
	if p.FeedInShareOverride != nil {
		share = 1 - *p.FeedInShareOverride
	}
	return clamp01(share + p.BatteryUpliftShare)
}

// ExportPrice is the year-1 remuneration for grid-exported energy. Strictly
// above the direct-marketing threshold the marketer's fee comes out of the
// feed-in tariff; the result never goes below zero.
func (p ScenarioParams) ExportPrice() float64 {
	price := p.FeedInTariff
	if p.CapacityKWp > p.MarketingThresholdKWp {
		price -= p.MarketingFee
	}
	return math.Max(price, 0)
}

// CapPrice is the year-1 ceiling for the tenant price.
func (p ScenarioParams) CapPrice() float64 {
	return p.CapFraction * p.BasicSupplyTariff
}

// AnnualOpexEUR is the year-1 operating cost before escalation.
func (p ScenarioParams) AnnualOpexEUR() float64 {
	return p.CapexEUR*p.OpexPctOfCapex + p.OpexFixedEUR
}

// Grow compounds a year-1 base value over year-1 periods. Year 0 and year 1
// return the base unchanged.
func Grow(base, rate float64, year int) float64 {
	if year <= 1 {
		return base
	}
	return base * math.Pow(1+rate, float64(year-1))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
