package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"microgrid-twin/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load a tariff schedule from a separate YAML preset
	// (e.g. examples/tariffs/*.yaml). Non-zero fields in Tariff override
	// the preset.
	TariffFile string           `yaml:"tariff_file"`
	Tariff     TariffConfig     `yaml:"tariff"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type SimulationConfig struct {
	BatteryCapacityKWh float64 `yaml:"battery_capacity_kwh"`
	SolarCapacityKW    float64 `yaml:"solar_capacity_kw"`
	WeatherMode        string  `yaml:"weather_mode"`
	InitialSOC         float64 `yaml:"initial_soc"`
	Efficiency         float64 `yaml:"efficiency"`
	MinSOC             float64 `yaml:"min_soc"`
	MaxSOC             float64 `yaml:"max_soc"`
}

type TariffConfig struct {
	Name          string  `yaml:"name"`
	OffPeakPrice  float64 `yaml:"off_peak_price"`
	StandardPrice float64 `yaml:"standard_price"`
	PeakPrice     float64 `yaml:"peak_price"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.TariffFile != "" {
		tariffPath := c.TariffFile
		if !filepath.IsAbs(tariffPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), tariffPath)
			if _, err := os.Stat(cand); err == nil {
				tariffPath = cand
			}
		}
		loaded, err := loadTariffFile(tariffPath)
		if err != nil {
			return nil, err
		}
		c.Tariff = MergeTariff(loaded, c.Tariff)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.ToModel().Validate(); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	return nil
}

// ToModel converts the file config to a model.SimulationConfig, filling
// zero-valued fields with the Delhi defaults. This keeps config files
// concise: an empty file is a valid default run.
func (c *Config) ToModel() model.SimulationConfig {
	out := model.DefaultConfig()
	s := c.Simulation
	if s.BatteryCapacityKWh != 0 {
		out.BatteryCapacityKWh = s.BatteryCapacityKWh
	}
	if s.SolarCapacityKW != 0 {
		out.SolarCapacityKW = s.SolarCapacityKW
	}
	if s.WeatherMode != "" {
		out.WeatherMode = model.WeatherMode(s.WeatherMode)
	}
	if s.InitialSOC != 0 {
		out.InitialSOC = s.InitialSOC
	}
	if s.Efficiency != 0 {
		out.Efficiency = s.Efficiency
	}
	if s.MinSOC != 0 {
		out.MinSOC = s.MinSOC
	}
	if s.MaxSOC != 0 {
		out.MaxSOC = s.MaxSOC
	}
	if t := c.Tariff; t.OffPeakPrice != 0 || t.StandardPrice != 0 || t.PeakPrice != 0 {
		out.Tariff = model.Tariff{
			OffPeakPrice:  t.OffPeakPrice,
			StandardPrice: t.StandardPrice,
			PeakPrice:     t.PeakPrice,
		}
	}
	return out
}

type tariffFileWrapper struct {
	Tariff TariffConfig `yaml:"tariff"`
}

func loadTariffFile(path string) (TariffConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TariffConfig{}, err
	}
	var w tariffFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return TariffConfig{}, err
	}
	return w.Tariff, nil
}

// MergeTariff overlays non-zero fields from override onto base.
// This is used when loading a tariff preset and then applying inline
// overrides from the main config.
func MergeTariff(base, override TariffConfig) TariffConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.OffPeakPrice != 0 {
		out.OffPeakPrice = override.OffPeakPrice
	}
	if override.StandardPrice != 0 {
		out.StandardPrice = override.StandardPrice
	}
	if override.PeakPrice != 0 {
		out.PeakPrice = override.PeakPrice
	}
	return out
}
