package handlers

import (
	"net/http"

	"microgrid-twin/internal/api/models"
	"microgrid-twin/internal/model"
	"microgrid-twin/internal/profile"
	"microgrid-twin/internal/sim"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation-related requests
type SimulateHandler struct{}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	engine, err := sim.New(req.ToConfig())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, engine.Run())
}

// RunDefaultSimulation handles GET /api/v1/simulate/default.
// Convenience endpoint for quick testing without a request body.
func (h *SimulateHandler) RunDefaultSimulation(c *gin.Context) {
	engine, err := sim.New(model.DefaultConfig())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, engine.Run())
}

// GetDefaults handles GET /api/v1/config/defaults
func (h *SimulateHandler) GetDefaults(c *gin.Context) {
	cfg := model.DefaultConfig()
	c.JSON(http.StatusOK, models.DefaultsResponse{
		BatteryCapacityKWh: cfg.BatteryCapacityKWh,
		SolarCapacityKW:    cfg.SolarCapacityKW,
		WeatherMode:        string(cfg.WeatherMode),
		Efficiency:         cfg.Efficiency,
		MinSOC:             cfg.MinSOC,
		MaxSOC:             cfg.MaxSOC,
		InitialSOC:         cfg.InitialSOC,
		OffPeakPrice:       cfg.Tariff.OffPeakPrice,
		StandardPrice:      cfg.Tariff.StandardPrice,
		PeakPrice:          cfg.Tariff.PeakPrice,
		PeakHours:          [2]int{profile.PeakStart, profile.PeakEnd},
	})
}

// RunSweep handles POST /api/v1/simulate/sweep. It reruns the comparison
// for each requested battery size, keeping the rest of the setup fixed.
func (h *SimulateHandler) RunSweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	results := make([]models.SweepResult, 0, len(req.BatteryCapacitiesKWh))
	for _, capacity := range req.BatteryCapacitiesKWh {
		cfg := req.Base.ToConfig()
		cfg.BatteryCapacityKWh = capacity

		engine, err := sim.New(cfg)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_CONFIG",
					Message: err.Error(),
					Details: map[string]interface{}{
						"battery_capacity_kwh": capacity,
					},
				},
			})
			return
		}

		s := engine.Run().Summary
		results = append(results, models.SweepResult{
			BatteryCapacityKWh: capacity,
			BaselineTotalCost:  s.BaselineTotalCost,
			SmartTotalCost:     s.SmartTotalCost,
			CostSaved:          s.CostSaved,
			CostSavedPercent:   s.CostSavedPercent,
			GridReduced:        s.GridReduced,
			GridReducedPercent: s.GridReducedPercent,
		})
	}

	c.JSON(http.StatusOK, models.SweepResponse{Results: results})
}
