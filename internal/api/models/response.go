package models

// DefaultsResponse echoes the default simulation configuration.
type DefaultsResponse struct {
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	SolarCapacityKW    float64 `json:"solar_capacity_kw"`
	WeatherMode        string  `json:"weather_mode"`
	Efficiency         float64 `json:"efficiency"`
	MinSOC             float64 `json:"min_soc"`
	MaxSOC             float64 `json:"max_soc"`
	InitialSOC         float64 `json:"initial_soc"`
	OffPeakPrice       float64 `json:"off_peak_price"`
	StandardPrice      float64 `json:"standard_price"`
	PeakPrice          float64 `json:"peak_price"`
	PeakHours          [2]int  `json:"peak_hours"`
}

// SweepResponse lists the comparison outcome per battery size.
type SweepResponse struct {
	Results []SweepResult `json:"results"`
}

// SweepResult is one battery size's savings relative to its own baseline.
type SweepResult struct {
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	BaselineTotalCost  float64 `json:"baseline_total_cost"`
	SmartTotalCost     float64 `json:"smart_total_cost"`
	CostSaved          float64 `json:"cost_saved"`
	CostSavedPercent   float64 `json:"cost_saved_percent"`
	GridReduced        float64 `json:"grid_reduced"`
	GridReducedPercent float64 `json:"grid_reduced_percent"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
