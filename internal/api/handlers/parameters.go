package handlers

import (
	"net/http"

	"ggv-mieterstrom/internal/api/models"
	"ggv-mieterstrom/internal/config"

	"github.com/gin-gonic/gin"
)

// ParameterHandler serves the parameter catalog for the form layer
type ParameterHandler struct{}

// NewParameterHandler creates a new parameter handler
func NewParameterHandler() *ParameterHandler {
	return &ParameterHandler{}
}

// ListParameters handles GET /api/v1/parameters
func (h *ParameterHandler) ListParameters(c *gin.Context) {
	d := config.DefaultScenario()

	parameters := []models.ParameterInfo{
		{
			Name:        "capacity_kwp",
			Type:        "float",
			Description: "Installed capacity in kWp",
			Default:     d.CapacityKWp,
		},
		{
			Name:        "specific_yield_kwh_per_kwp",
			Type:        "float",
			Description: "Specific yield in kWh per kWp and year",
			Default:     d.SpecificYield,
		},
		{
			Name:        "self_consumption_share",
			Type:        "float",
			Description: "Fraction of generated energy delivered to the building (EV); the rest is fed into the grid",
			Default:     d.SelfConsumptionShare,
		},
		{
			Name:        "feed_in_share_override",
			Type:        "float",
			Description: "Optional: set the feed-in share directly (EV share becomes 1 minus this)",
		},
		{
			Name:        "battery_uplift_share",
			Type:        "float",
			Description: "Optional: EV share points added by storage/optimization",
			Default:     0.0,
		},
		{
			Name:        "internal_price_eur_kwh",
			Type:        "float",
			Description: "Freely set internal GGV price for EV energy",
			Default:     d.InternalPrice,
		},
		{
			Name:        "tenant_price_eur_kwh",
			Type:        "float",
			Description: "Planned Mieterstrom end-customer price (capped at cap_fraction of the basic-supply tariff)",
			Default:     d.TenantPrice,
		},
		{
			Name:        "basic_supply_tariff_eur_kwh",
			Type:        "float",
			Description: "Local basic-supply tariff, the reference for the Mieterstrom price cap",
			Default:     d.BasicSupplyTariff,
		},
		{
			Name:        "cap_fraction",
			Type:        "float",
			Description: "Fraction of the basic-supply tariff the tenant price may not exceed",
			Default:     config.DefaultCapFraction,
		},
		{
			Name:        "subsidy_rate_eur_kwh",
			Type:        "float",
			Description: "Mieterstrom subsidy per kWh of EV energy (never on feed-in)",
			Default:     d.SubsidyRate,
		},
		{
			Name:        "feed_in_tariff_eur_kwh",
			Type:        "float",
			Description: "Remuneration for grid-exported energy",
			Default:     d.FeedInTariff,
		},
		{
			Name:        "marketing_fee_eur_kwh",
			Type:        "float",
			Description: "Direct-marketing fee, deducted from the feed-in tariff above the threshold",
			Default:     d.MarketingFee,
		},
		{
			Name:        "marketing_threshold_kwp",
			Type:        "float",
			Description: "Capacity above which the direct-marketing fee applies",
			Default:     config.DefaultMarketingThresholdKWp,
		},
		{
			Name:        "capex_eur",
			Type:        "float",
			Description: "One-time capital expenditure (net)",
			Default:     d.CapexEUR,
		},
		{
			Name:        "opex_pct_of_capex",
			Type:        "float",
			Description: "Annual operating cost as a fraction of CAPEX",
			Default:     d.OpexPctOfCapex,
		},
		{
			Name:        "opex_fixed_eur",
			Type:        "float",
			Description: "Fixed annual operating cost",
			Default:     d.OpexFixedEUR,
		},
		{
			Name:        "horizon_years",
			Type:        "int",
			Description: "Projection horizon in years",
			Default:     d.HorizonYears,
		},
		{
			Name:        "degradation",
			Type:        "float",
			Description: "Annual fractional decline in generation yield",
			Default:     d.Degradation,
		},
		{
			Name:        "price_growth",
			Type:        "float",
			Description: "Annual growth of revenue-side prices (internal, tenant, export)",
			Default:     d.PriceGrowth,
		},
		{
			Name:        "basic_tariff_growth",
			Type:        "float",
			Description: "Annual growth of the basic-supply tariff; defaults to price_growth",
		},
		{
			Name:        "cost_growth",
			Type:        "float",
			Description: "Annual growth of OPEX and the subsidy rate (inflation)",
			Default:     d.CostGrowth,
		},
		{
			Name:        "discount_rate",
			Type:        "float",
			Description: "Discount rate for NPV",
			Default:     d.DiscountRate,
		},
	}

	c.JSON(http.StatusOK, gin.H{"parameters": parameters})
}
