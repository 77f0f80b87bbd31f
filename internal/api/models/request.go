package models

import "microgrid-twin/internal/model"

// SimulateRequest is the request body for running a simulation.
// Every field is optional; zero values take the Delhi defaults.
type SimulateRequest struct {
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	SolarCapacityKW    float64 `json:"solar_capacity_kw"`
	WeatherMode        string  `json:"weather_mode"`
	OffPeakPrice       float64 `json:"off_peak_price"`
	StandardPrice      float64 `json:"standard_price"`
	PeakPrice          float64 `json:"peak_price"`
	InitialSOC         float64 `json:"initial_soc"`
}

// ToConfig merges the request onto the default config.
func (r SimulateRequest) ToConfig() model.SimulationConfig {
	cfg := model.DefaultConfig()
	if r.BatteryCapacityKWh != 0 {
		cfg.BatteryCapacityKWh = r.BatteryCapacityKWh
	}
	if r.SolarCapacityKW != 0 {
		cfg.SolarCapacityKW = r.SolarCapacityKW
	}
	if r.WeatherMode != "" {
		cfg.WeatherMode = model.WeatherMode(r.WeatherMode)
	}
	if r.OffPeakPrice != 0 {
		cfg.Tariff.OffPeakPrice = r.OffPeakPrice
	}
	if r.StandardPrice != 0 {
		cfg.Tariff.StandardPrice = r.StandardPrice
	}
	if r.PeakPrice != 0 {
		cfg.Tariff.PeakPrice = r.PeakPrice
	}
	if r.InitialSOC != 0 {
		cfg.InitialSOC = r.InitialSOC
	}
	return cfg
}

// SweepRequest compares savings across battery sizes for one base setup.
type SweepRequest struct {
	Base                 SimulateRequest `json:"base"`
	BatteryCapacitiesKWh []float64       `json:"battery_capacities_kwh" binding:"required"`
}
