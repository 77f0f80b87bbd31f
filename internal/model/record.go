package model

// HourlyRecord captures what happened in one hour for one strategy.
// All power values are kW; with 1-hour intervals they double as kWh.
//
// Per-hour balance, exact up to float rounding:
//
//	solar + discharge + grid == load + charge + excess
type HourlyRecord struct {
	Hour               int     `json:"hour"`
	SolarGenerationKW  float64 `json:"solar_generation_kw"`
	LoadDemandKW       float64 `json:"load_demand_kw"`
	SolarUsedKW        float64 `json:"solar_used_kw"`
	SolarExcessKW      float64 `json:"solar_excess_kw"`
	GridUsageKW        float64 `json:"grid_usage_kw"`
	BatteryChargeKW    float64 `json:"battery_charge_kw"`
	BatteryDischargeKW float64 `json:"battery_discharge_kw"`
	BatterySOCPercent  float64 `json:"battery_soc_percent"`
	GridPrice          float64 `json:"grid_price"`
	HourlyCost         float64 `json:"hourly_cost"`
	IsPeakHour         bool    `json:"is_peak_hour"`
}

// Summary compares the two strategy runs over the full day.
// Grid usage totals are kWh. Percent deltas are 0 when the
// corresponding baseline total is 0.
type Summary struct {
	BaselineTotalCost  float64 `json:"baseline_total_cost"`
	SmartTotalCost     float64 `json:"smart_total_cost"`
	CostSaved          float64 `json:"cost_saved"`
	CostSavedPercent   float64 `json:"cost_saved_percent"`
	BaselineGridUsage  float64 `json:"baseline_grid_usage"`
	SmartGridUsage     float64 `json:"smart_grid_usage"`
	GridReduced        float64 `json:"grid_reduced"`
	GridReducedPercent float64 `json:"grid_reduced_percent"`
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	PeakPrice          float64 `json:"peak_price"`
	OffPeakPrice       float64 `json:"off_peak_price"`
}

// Result is the immutable output snapshot of one comparison run.
type Result struct {
	BaselineData []HourlyRecord `json:"baseline_data"`
	SmartData    []HourlyRecord `json:"smart_data"`
	Summary      Summary        `json:"summary"`
}
