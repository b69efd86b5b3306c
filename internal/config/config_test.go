package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetYAML = `scenario:
  name: "test preset"
  capacity_kwp: 99
  specific_yield_kwh_per_kwp: 1000
  self_consumption_share: 0.35
  internal_price_eur_kwh: 0.32
  tenant_price_eur_kwh: 0.30
  basic_supply_tariff_eur_kwh: 0.40
  subsidy_rate_eur_kwh: 0.03
  feed_in_tariff_eur_kwh: 0.07
  capex_eur: 120000
  opex_pct_of_capex: 0.015
  opex_fixed_eur: 1500
  horizon_years: 20
  degradation: 0.005
  price_growth: 0.02
  cost_growth: 0.02
  discount_rate: 0.06
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWithPresetAndOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "preset.yaml", presetYAML)
	cfgPath := writeFile(t, dir, "config.yaml", `preset_file: preset.yaml
scenario:
  tenant_price_eur_kwh: 0.34
  discount_rate: 0.05
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	// Preset values survive, overrides win.
	assert.Equal(t, "test preset", cfg.Scenario.Name)
	assert.InDelta(t, 99, cfg.Scenario.CapacityKWp, 1e-9)
	assert.InDelta(t, 0.34, cfg.Scenario.TenantPrice, 1e-9)
	assert.InDelta(t, 0.05, cfg.Scenario.DiscountRate, 1e-9)
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", presetYAML)

	// presetYAML omits cap_fraction, marketing_threshold_kwp and
	// basic_tariff_growth; Load must fill them.
	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	params := cfg.Scenario.ToModelParams()
	assert.InDelta(t, DefaultCapFraction, params.CapFraction, 1e-9)
	assert.InDelta(t, DefaultMarketingThresholdKWp, params.MarketingThresholdKWp, 1e-9)
	assert.InDelta(t, params.PriceGrowth, params.BasicTariffGrowth, 1e-9)
}

func TestLoadRejectsInvalidScenario(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", `scenario:
  capacity_kwp: 0
`)

	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario config invalid")
}

func TestMergeScenarioKeepsBaseZeroFields(t *testing.T) {
	base := DefaultScenario()
	override := ScenarioConfig{TenantPrice: 0.36}

	merged := MergeScenario(base, override)
	assert.InDelta(t, 0.36, merged.TenantPrice, 1e-9)
	assert.InDelta(t, base.CapacityKWp, merged.CapacityKWp, 1e-9)
	assert.InDelta(t, base.CapexEUR, merged.CapexEUR, 1e-9)
}

func TestDefaultScenarioIsValid(t *testing.T) {
	require.NoError(t, DefaultScenario().ToModelParams().Validate())
}
