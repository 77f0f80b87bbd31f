// Package profile generates the exogenous hourly curves for one synthetic
// day: solar generation, load demand and the time-of-day price schedule.
// The curves are fully deterministic; the same config always yields the
// same profile.
package profile

import (
	"math"

	"microgrid-twin/internal/model"
)

const HoursPerDay = 24

// Time-of-day tier boundaries (Delhi BSES/TPDDL schedule).
const (
	standardStart = 6  // standard tier begins
	PeakStart     = 18 // peak tier begins
	PeakEnd       = 22 // peak tier ends; off-peak resumes
)

// Daylight window for the solar curve; zero generation outside it.
const (
	sunriseHour = 6
	sunsetHour  = 18
)

// loadCurveKW is the Delhi residential reference load (kW), summer scenario:
// night trough, morning ramp (geysers, cooking), midday shoulder, and a
// sharp evening peak as AC, lights and TV overlap.
var loadCurveKW = [HoursPerDay]float64{
	1.5, 1.5, 1.5, 1.5, 2.0, 2.5,
	3.5, 4.0, 4.5, 3.5, 3.0, 2.5,
	2.5, 2.5, 3.0, 3.5, 4.0, 5.0,
	6.5, 7.0, 6.5, 5.5, 4.0, 2.5,
}

// Profile holds the precomputed hourly curves for one day.
type Profile struct {
	Solar [HoursPerDay]float64 // kW generated
	Load  [HoursPerDay]float64 // kW demanded
	Price [HoursPerDay]float64 // price per kWh
}

// New builds the day profile for the given config.
func New(cfg model.SimulationConfig) Profile {
	var p Profile
	factor := cfg.WeatherMode.Factor()
	for h := 0; h < HoursPerDay; h++ {
		p.Solar[h] = solarAt(cfg.SolarCapacityKW, factor, h)
		p.Load[h] = loadCurveKW[h]
		p.Price[h] = priceAt(cfg.Tariff, h)
	}
	return p
}

// solarAt is a gaussian bell centered at noon with sigma 3, scaled by
// nameplate capacity and the weather factor.
func solarAt(capacityKW, weatherFactor float64, hour int) float64 {
	if hour < sunriseHour || hour > sunsetHour {
		return 0
	}
	x := (float64(hour) - 12) / 3
	return capacityKW * math.Exp(-0.5*x*x) * weatherFactor
}

func priceAt(t model.Tariff, hour int) float64 {
	switch {
	case hour < standardStart:
		return t.OffPeakPrice
	case hour < PeakStart:
		return t.StandardPrice
	case hour < PeakEnd:
		return t.PeakPrice
	default:
		return t.OffPeakPrice
	}
}

// IsPeak reports whether the hour falls in the peak pricing window.
func IsPeak(hour int) bool {
	return hour >= PeakStart && hour < PeakEnd
}

// LoadAt returns the reference load for the hour.
func LoadAt(hour int) float64 {
	return loadCurveKW[hour]
}
