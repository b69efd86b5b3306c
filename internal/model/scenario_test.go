package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() ScenarioParams {
	return ScenarioParams{
		CapacityKWp:   99,
		SpecificYield: 1000,

		SelfConsumptionShare: 0.35,

		InternalPrice:     0.32,
		TenantPrice:       0.34,
		BasicSupplyTariff: 0.40,
		CapFraction:       0.90,
		SubsidyRate:       0.03,

		FeedInTariff:          0.07,
		MarketingFee:          0.004,
		MarketingThresholdKWp: 100,

		CapexEUR:       120000,
		OpexPctOfCapex: 0.015,
		OpexFixedEUR:   1500,

		HorizonYears: 20,
		Degradation:  0.005,

		PriceGrowth:       0.02,
		BasicTariffGrowth: 0.02,
		CostGrowth:        0.02,

		DiscountRate: 0.06,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validParams().Validate())

	t.Run("negative discount rate above -1 is allowed", func(t *testing.T) {
		p := validParams()
		p.DiscountRate = -0.5
		assert.NoError(t, p.Validate())
	})

	t.Run("override out of range", func(t *testing.T) {
		p := validParams()
		override := 1.5
		p.FeedInShareOverride = &override
		err := p.Validate()
		require.Error(t, err)

		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "feed_in_share_override", inputErr.Field)
	})
}

func TestEffectiveSelfConsumptionShare(t *testing.T) {
	p := validParams()
	assert.InDelta(t, 0.35, p.EffectiveSelfConsumptionShare(), 1e-9)

	t.Run("feed-in override wins", func(t *testing.T) {
		p := validParams()
		override := 0.65
		p.FeedInShareOverride = &override
		assert.InDelta(t, 0.35, p.EffectiveSelfConsumptionShare(), 1e-9)

		override = 0.20
		assert.InDelta(t, 0.80, p.EffectiveSelfConsumptionShare(), 1e-9)
	})

	t.Run("battery uplift adds share points and clamps at 1", func(t *testing.T) {
		p := validParams()
		p.BatteryUpliftShare = 0.10
		assert.InDelta(t, 0.45, p.EffectiveSelfConsumptionShare(), 1e-9)

		p.BatteryUpliftShare = 0.90
		assert.InDelta(t, 1.0, p.EffectiveSelfConsumptionShare(), 1e-9)
	})
}

func TestExportPrice(t *testing.T) {
	p := validParams()

	// At the threshold the fee does not apply yet.
	p.CapacityKWp = 100
	assert.InDelta(t, 0.07, p.ExportPrice(), 1e-9)

	p.CapacityKWp = 100.5
	assert.InDelta(t, 0.066, p.ExportPrice(), 1e-9)

	// The export price never goes negative.
	p.MarketingFee = 0.10
	assert.Zero(t, p.ExportPrice())
}

func TestCapPrice(t *testing.T) {
	p := validParams()
	assert.InDelta(t, 0.36, p.CapPrice(), 1e-9)
}

func TestGrow(t *testing.T) {
	assert.InDelta(t, 0.30, Grow(0.30, 0.02, 0), 1e-9)
	assert.InDelta(t, 0.30, Grow(0.30, 0.02, 1), 1e-9)
	assert.InDelta(t, 0.30*1.02, Grow(0.30, 0.02, 2), 1e-9)
	assert.InDelta(t, 0.30*1.02*1.02, Grow(0.30, 0.02, 3), 1e-9)
}
