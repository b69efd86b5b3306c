package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ggv-mieterstrom/internal/finance"
	"ggv-mieterstrom/internal/model"
	"ggv-mieterstrom/internal/projection"
)

func squeezeParams() model.ScenarioParams {
	return model.ScenarioParams{
		CapacityKWp:   100,
		SpecificYield: 950,

		SelfConsumptionShare: 0.6,

		InternalPrice:     0.32,
		TenantPrice:       0.35,
		BasicSupplyTariff: 0.40,
		CapFraction:       0.90,
		SubsidyRate:       0.02,

		FeedInTariff:          0.08,
		MarketingThresholdKWp: 100,

		CapexEUR:     150000,
		OpexFixedEUR: 5000,

		HorizonYears: 20,

		PriceGrowth:       0.03,
		BasicTariffGrowth: 0.01,

		DiscountRate: 0.05,
	}
}

func TestReportCapBinding(t *testing.T) {
	params := squeezeParams()
	res, err := projection.New().Run(params)
	require.NoError(t, err)

	report := Report(params, res.Mieterstrom)

	// Tenant price grows 3%/a against a cap growing 1%/a from 0.36:
	// 0.35*1.03^(t-1) > 0.36*1.01^(t-1) from year 3 on.
	require.NotNil(t, report.FirstCapBoundYear)
	assert.Equal(t, 3, *report.FirstCapBoundYear)
	assert.Nil(t, report.FirstNegativeMarginYear)
	assert.Positive(t, report.MinMarginPerKWh)
}

func TestReportNegativeMargin(t *testing.T) {
	params := squeezeParams()
	params.OpexFixedEUR = 25000 // above year-1 revenue of ~23,000 EUR

	res, err := projection.New().Run(params)
	require.NoError(t, err)

	report := Report(params, res.Mieterstrom)
	require.NotNil(t, report.FirstNegativeMarginYear)
	assert.Equal(t, 1, *report.FirstNegativeMarginYear)
	assert.Negative(t, report.MinMarginPerKWh)
}

func TestReportBreakEvenTenantPrice(t *testing.T) {
	params := squeezeParams()
	res, err := projection.New().Run(params)
	require.NoError(t, err)

	report := Report(params, res.Mieterstrom)

	// ev*price + ev*subsidy + feed*export = opex + annuity*capex, year 1.
	ev := 57000.0
	feed := 38000.0
	costs := params.AnnualOpexEUR() + params.CapexEUR*finance.AnnuityFactor(params.DiscountRate, params.HorizonYears)
	want := (costs - feed*params.ExportPrice() - ev*params.SubsidyRate) / ev
	assert.InDelta(t, want, report.BreakEvenTenantPrice, 1e-9)
}

func TestReportNoSelfConsumption(t *testing.T) {
	params := squeezeParams()
	params.SelfConsumptionShare = 0

	res, err := projection.New().Run(params)
	require.NoError(t, err)

	report := Report(params, res.Mieterstrom)
	assert.Nil(t, report.FirstCapBoundYear)
	assert.Zero(t, report.BreakEvenTenantPrice)
}
