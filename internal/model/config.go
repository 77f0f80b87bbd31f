package model

import "errors"

// WeatherMode scales solar output: sunny = 100%, cloudy = 50%.
type WeatherMode string

const (
	WeatherSunny  WeatherMode = "sunny"
	WeatherCloudy WeatherMode = "cloudy"
)

// Factor returns the solar output multiplier for the mode.
func (w WeatherMode) Factor() float64 {
	if w == WeatherCloudy {
		return 0.5
	}
	return 1.0
}

// Tariff is a three-tier time-of-day price schedule (per kWh).
// Off-peak covers [0,6) and [22,24), standard [6,18), peak [18,22).
type Tariff struct {
	OffPeakPrice  float64
	StandardPrice float64
	PeakPrice     float64
}

// SimulationConfig defines one 24-hour microgrid run.
// Units:
// - BatteryCapacityKWh: kWh usable energy
// - SolarCapacityKW: kW nameplate peak output
// - InitialSOC / MinSOC / MaxSOC: fraction 0..1
// - Efficiency: charge/discharge conversion factor 0..1
type SimulationConfig struct {
	BatteryCapacityKWh float64
	SolarCapacityKW    float64
	WeatherMode        WeatherMode
	InitialSOC         float64
	Efficiency         float64
	MinSOC             float64
	MaxSOC             float64
	Tariff             Tariff
}

// DefaultConfig returns the Delhi residential reference setup:
// 10 kWh battery at 50% SoC, 5 kW solar, sunny day, BSES/TPDDL ToD prices.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		BatteryCapacityKWh: 10.0,
		SolarCapacityKW:    5.0,
		WeatherMode:        WeatherSunny,
		InitialSOC:         0.50,
		Efficiency:         0.95,
		MinSOC:             0.20,
		MaxSOC:             1.00,
		Tariff: Tariff{
			OffPeakPrice:  4.00,
			StandardPrice: 6.50,
			PeakPrice:     8.50,
		},
	}
}

func (c SimulationConfig) Validate() error {
	if c.BatteryCapacityKWh <= 0 {
		return errors.New("BatteryCapacityKWh must be > 0")
	}
	if c.SolarCapacityKW <= 0 {
		return errors.New("SolarCapacityKW must be > 0")
	}
	if c.WeatherMode != WeatherSunny && c.WeatherMode != WeatherCloudy {
		return errors.New("WeatherMode must be \"sunny\" or \"cloudy\"")
	}
	if c.InitialSOC < 0 || c.InitialSOC > 1 {
		return errors.New("InitialSOC must be in [0, 1]")
	}
	if c.Efficiency <= 0 || c.Efficiency > 1 {
		return errors.New("Efficiency must be in (0, 1]")
	}
	if c.MinSOC < 0 || c.MinSOC > 1 || c.MaxSOC < 0 || c.MaxSOC > 1 || c.MinSOC > c.MaxSOC {
		return errors.New("MinSOC/MaxSOC must satisfy 0<=MinSOC<=MaxSOC<=1")
	}
	if c.Tariff.OffPeakPrice < 0 || c.Tariff.StandardPrice < 0 || c.Tariff.PeakPrice < 0 {
		return errors.New("tariff prices must be >= 0")
	}
	return nil
}
