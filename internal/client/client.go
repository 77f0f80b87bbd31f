// Package client calls the simulate API and falls back to running the
// engine in-process when the server is unreachable. The fallback uses the
// exact same internal/sim code path, so online and offline runs never
// diverge numerically.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"microgrid-twin/internal/api/models"
	"microgrid-twin/internal/model"
	"microgrid-twin/internal/sim"
)

// Client provides access to a remote simulate endpoint.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// New creates a client. If baseURL is empty, defaults to
// "http://localhost:8080".
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError represents an error response from the simulate API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Simulate runs the comparison remotely. Transport failures fall back to a
// local run; API-level rejections (e.g. invalid config) are returned as
// *APIError without falling back, since the local engine would reject the
// same input.
func (c *Client) Simulate(ctx context.Context, cfg model.SimulationConfig) (*model.Result, error) {
	result, err := c.simulateRemote(ctx, cfg)
	if err == nil {
		return result, nil
	}
	if apiErr, ok := err.(*APIError); ok {
		return nil, apiErr
	}
	return SimulateLocal(cfg)
}

// SimulateLocal runs the comparison in-process.
func SimulateLocal(cfg model.SimulationConfig) (*model.Result, error) {
	engine, err := sim.New(cfg)
	if err != nil {
		return nil, err
	}
	return engine.Run(), nil
}

func (c *Client) simulateRemote(ctx context.Context, cfg model.SimulationConfig) (*model.Result, error) {
	body, err := json.Marshal(models.SimulateRequest{
		BatteryCapacityKWh: cfg.BatteryCapacityKWh,
		SolarCapacityKW:    cfg.SolarCapacityKW,
		WeatherMode:        string(cfg.WeatherMode),
		OffPeakPrice:       cfg.Tariff.OffPeakPrice,
		StandardPrice:      cfg.Tariff.StandardPrice,
		PeakPrice:          cfg.Tariff.PeakPrice,
		InitialSOC:         cfg.InitialSOC,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/v1/simulate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error.Code != "" {
			return nil, &APIError{
				StatusCode: resp.StatusCode,
				Code:       errResp.Error.Code,
				Message:    errResp.Error.Message,
			}
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Code:       "UNEXPECTED_STATUS",
			Message:    fmt.Sprintf("simulate returned status %d", resp.StatusCode),
		}
	}

	var result model.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding simulate response: %w", err)
	}
	return &result, nil
}
