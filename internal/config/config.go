package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ggv-mieterstrom/internal/model"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the corresponding field is absent.
const (
	DefaultCapFraction           = 0.90
	DefaultMarketingThresholdKWp = 100.0
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load scenario parameters from a separate YAML
	// (e.g. examples/presets/*.yaml). If both PresetFile and Scenario are
	// provided, non-zero Scenario fields override the preset.
	PresetFile string         `yaml:"preset_file"`
	Scenario   ScenarioConfig `yaml:"scenario"`
}

type ScenarioConfig struct {
	Name string `yaml:"name"`

	CapacityKWp   float64 `yaml:"capacity_kwp"`
	SpecificYield float64 `yaml:"specific_yield_kwh_per_kwp"`

	SelfConsumptionShare float64  `yaml:"self_consumption_share"`
	FeedInShareOverride  *float64 `yaml:"feed_in_share_override,omitempty"`
	BatteryUpliftShare   float64  `yaml:"battery_uplift_share"`

	InternalPrice     float64 `yaml:"internal_price_eur_kwh"`
	TenantPrice       float64 `yaml:"tenant_price_eur_kwh"`
	BasicSupplyTariff float64 `yaml:"basic_supply_tariff_eur_kwh"`
	CapFraction       float64 `yaml:"cap_fraction"`
	SubsidyRate       float64 `yaml:"subsidy_rate_eur_kwh"`

	FeedInTariff          float64  `yaml:"feed_in_tariff_eur_kwh"`
	MarketingFee          float64  `yaml:"marketing_fee_eur_kwh"`
	MarketingThresholdKWp *float64 `yaml:"marketing_threshold_kwp,omitempty"`

	CapexEUR       float64 `yaml:"capex_eur"`
	OpexPctOfCapex float64 `yaml:"opex_pct_of_capex"`
	OpexFixedEUR   float64 `yaml:"opex_fixed_eur"`

	HorizonYears int     `yaml:"horizon_years"`
	Degradation  float64 `yaml:"degradation"`

	PriceGrowth       float64  `yaml:"price_growth"`
	BasicTariffGrowth *float64 `yaml:"basic_tariff_growth,omitempty"`
	CostGrowth        float64  `yaml:"cost_growth"`

	DiscountRate float64 `yaml:"discount_rate"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.Scenario = c.Scenario.WithDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not apply defaults or
// validate. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.PresetFile != "" {
		presetPath := c.PresetFile
		if !filepath.IsAbs(presetPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, but fall back to the provided path (relative
			// to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), presetPath)
			if _, err := os.Stat(cand); err == nil {
				presetPath = cand
			}
		}
		loaded, err := LoadPresetFile(presetPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Scenario.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
}

// WithDefaults fills the fields whose absence has a documented default:
// cap fraction 0.90, direct-marketing threshold 100 kWp, and the basic-supply
// tariff growth tracking the general price growth.
func (s ScenarioConfig) WithDefaults() ScenarioConfig {
	out := s
	if out.CapFraction == 0 {
		out.CapFraction = DefaultCapFraction
	}
	if out.MarketingThresholdKWp == nil {
		threshold := DefaultMarketingThresholdKWp
		out.MarketingThresholdKWp = &threshold
	}
	if out.BasicTariffGrowth == nil {
		growth := out.PriceGrowth
		out.BasicTariffGrowth = &growth
	}
	return out
}

func (s ScenarioConfig) ToModelParams() model.ScenarioParams {
	p := model.ScenarioParams{
		Name: s.Name,

		CapacityKWp:   s.CapacityKWp,
		SpecificYield: s.SpecificYield,

		SelfConsumptionShare: s.SelfConsumptionShare,
		FeedInShareOverride:  s.FeedInShareOverride,
		BatteryUpliftShare:   s.BatteryUpliftShare,

		InternalPrice:     s.InternalPrice,
		TenantPrice:       s.TenantPrice,
		BasicSupplyTariff: s.BasicSupplyTariff,
		CapFraction:       s.CapFraction,
		SubsidyRate:       s.SubsidyRate,

		FeedInTariff: s.FeedInTariff,
		MarketingFee: s.MarketingFee,

		CapexEUR:       s.CapexEUR,
		OpexPctOfCapex: s.OpexPctOfCapex,
		OpexFixedEUR:   s.OpexFixedEUR,

		HorizonYears: s.HorizonYears,
		Degradation:  s.Degradation,

		PriceGrowth: s.PriceGrowth,
		CostGrowth:  s.CostGrowth,

		DiscountRate: s.DiscountRate,
	}
	if s.MarketingThresholdKWp != nil {
		p.MarketingThresholdKWp = *s.MarketingThresholdKWp
	}
	if s.BasicTariffGrowth != nil {
		p.BasicTariffGrowth = *s.BasicTariffGrowth
	} else {
		p.BasicTariffGrowth = s.PriceGrowth
	}
	return p
}

type presetFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

// LoadPresetFile reads a preset YAML (scenario: wrapper).
func LoadPresetFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w presetFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// This is used when loading a preset file and then applying overrides from
// the config or the request.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CapacityKWp != 0 {
		out.CapacityKWp = override.CapacityKWp
	}
	if override.SpecificYield != 0 {
		out.SpecificYield = override.SpecificYield
	}
	if override.SelfConsumptionShare != 0 {
		out.SelfConsumptionShare = override.SelfConsumptionShare
	}
	if override.FeedInShareOverride != nil {
		out.FeedInShareOverride = override.FeedInShareOverride
	}
	if override.BatteryUpliftShare != 0 {
		out.BatteryUpliftShare = override.BatteryUpliftShare
	}
	if override.InternalPrice != 0 {
		out.InternalPrice = override.InternalPrice
	}
	if override.TenantPrice != 0 {
		out.TenantPrice = override.TenantPrice
	}
	if override.BasicSupplyTariff != 0 {
		out.BasicSupplyTariff = override.BasicSupplyTariff
	}
	if override.CapFraction != 0 {
		out.CapFraction = override.CapFraction
	}
	if override.SubsidyRate != 0 {
		out.SubsidyRate = override.SubsidyRate
	}
	if override.FeedInTariff != 0 {
		out.FeedInTariff = override.FeedInTariff
	}
	if override.MarketingFee != 0 {
		out.MarketingFee = override.MarketingFee
	}
	if override.MarketingThresholdKWp != nil {
		out.MarketingThresholdKWp = override.MarketingThresholdKWp
	}
	if override.CapexEUR != 0 {
		out.CapexEUR = override.CapexEUR
	}
	if override.OpexPctOfCapex != 0 {
		out.OpexPctOfCapex = override.OpexPctOfCapex
	}
	if override.OpexFixedEUR != 0 {
		out.OpexFixedEUR = override.OpexFixedEUR
	}
	if override.HorizonYears != 0 {
		out.HorizonYears = override.HorizonYears
	}
	if override.Degradation != 0 {
		out.Degradation = override.Degradation
	}
	if override.PriceGrowth != 0 {
		out.PriceGrowth = override.PriceGrowth
	}
	if override.BasicTariffGrowth != nil {
		out.BasicTariffGrowth = override.BasicTariffGrowth
	}
	if override.CostGrowth != 0 {
		out.CostGrowth = override.CostGrowth
	}
	if override.DiscountRate != 0 {
		out.DiscountRate = override.DiscountRate
	}
	return out
}

// DefaultScenario carries the defaults of the interactive tool: a 99 kWp
// roof plant on a residential complex with a 35% EV share.
func DefaultScenario() ScenarioConfig {
	return ScenarioConfig{
		Name: "default",

		CapacityKWp:   99,
		SpecificYield: 1000,

		SelfConsumptionShare: 0.35,

		InternalPrice:     0.32,
		TenantPrice:       0.34,
		BasicSupplyTariff: 0.40,
		SubsidyRate:       0.03,

		FeedInTariff: 0.07,
		MarketingFee: 0.004,

		CapexEUR:       120000,
		OpexPctOfCapex: 0.015,
		OpexFixedEUR:   1500,

		HorizonYears: 20,
		Degradation:  0.005,

		PriceGrowth: 0.02,
		CostGrowth:  0.02,

		DiscountRate: 0.06,
	}.WithDefaults()
}
