package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"commodity-forecast/internal/model"
	"commodity-forecast/internal/simulate"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the scenario from a separate YAML preset
	// (e.g. examples/scenarios/*.yaml). If both ScenarioFile and
	// Scenario are provided, Scenario overrides ScenarioFile.
	ScenarioFile string           `yaml:"scenario_file"`
	Scenario     ScenarioConfig   `yaml:"scenario"`
	Simulation   SimulationConfig `yaml:"simulation"`
}

// ScenarioConfig carries policy adjustments in percent units, the way
// analysts enter them (10 = +10%). Conversion to fractions happens in
// ToScenario.
type ScenarioConfig struct {
	Name                     string  `yaml:"name"`
	ProductionAdjustmentPct  float64 `yaml:"production_adjustment_pct"`
	ConsumptionAdjustmentPct float64 `yaml:"consumption_adjustment_pct"`
}

type SimulationConfig struct {
	Horizon               int     `yaml:"horizon"`
	PriceElasticity       float64 `yaml:"price_elasticity"`
	ZeroStartFallbackRate float64 `yaml:"zero_start_fallback_rate"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it or
// apply defaults. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge in any explicit overrides.
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

// applyDefaults fills unset simulation knobs. This keeps configs
// concise: an empty file is a valid baseline run.
func (c *Config) applyDefaults() {
	if c.Simulation.Horizon == 0 {
		c.Simulation.Horizon = simulate.DefaultHorizon
	}
	if c.Simulation.PriceElasticity == 0 {
		c.Simulation.PriceElasticity = simulate.DefaultPriceElasticity
	}
	if c.Simulation.ZeroStartFallbackRate == 0 {
		c.Simulation.ZeroStartFallbackRate = simulate.DefaultZeroStartFallbackRate
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.ToParams().Validate(); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	return nil
}

func (c *Config) ToParams() simulate.Params {
	return simulate.Params{
		Horizon:               c.Simulation.Horizon,
		PriceElasticity:       c.Simulation.PriceElasticity,
		ZeroStartFallbackRate: c.Simulation.ZeroStartFallbackRate,
	}
}

// ToScenario converts the percent-unit config values to the fractional
// scenario the core consumes.
func (s ScenarioConfig) ToScenario() model.PolicyScenario {
	return model.PolicyScenario{
		ProductionAdjustment:  s.ProductionAdjustmentPct / 100,
		ConsumptionAdjustment: s.ConsumptionAdjustmentPct / 100,
	}
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

// LoadScenarioFile reads a single scenario preset YAML.
func LoadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// Used when loading a preset and applying request/config overrides.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.ProductionAdjustmentPct != 0 {
		out.ProductionAdjustmentPct = override.ProductionAdjustmentPct
	}
	if override.ConsumptionAdjustmentPct != 0 {
		out.ConsumptionAdjustmentPct = override.ConsumptionAdjustmentPct
	}
	return out
}
