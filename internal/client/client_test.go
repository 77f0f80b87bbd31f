package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microgrid-twin/internal/api/handlers"
	"microgrid-twin/internal/model"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewSimulateHandler()
	router.POST("/api/v1/simulate", h.RunSimulation)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_RemoteMatchesLocal(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL)

	cfg := model.DefaultConfig()
	remote, err := c.Simulate(context.Background(), cfg)
	require.NoError(t, err)

	local, err := SimulateLocal(cfg)
	require.NoError(t, err)

	require.Len(t, remote.BaselineData, len(local.BaselineData))
	for h := range local.SmartData {
		assert.InDelta(t, local.SmartData[h].GridUsageKW, remote.SmartData[h].GridUsageKW, 1e-9, "hour %d", h)
		assert.InDelta(t, local.SmartData[h].BatterySOCPercent, remote.SmartData[h].BatterySOCPercent, 1e-9, "hour %d", h)
	}
	assert.InDelta(t, local.Summary.SmartTotalCost, remote.Summary.SmartTotalCost, 1e-9)
	assert.InDelta(t, local.Summary.CostSaved, remote.Summary.CostSaved, 1e-9)
}

func TestClient_FallsBackWhenUnreachable(t *testing.T) {
	// Nothing listens here; the transport error must trigger the local path.
	c := New("http://127.0.0.1:1")

	cfg := model.DefaultConfig()
	result, err := c.Simulate(context.Background(), cfg)
	require.NoError(t, err)

	local, err := SimulateLocal(cfg)
	require.NoError(t, err)
	assert.Equal(t, local, result)
}

func TestClient_APIErrorDoesNotFallBack(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL)

	cfg := model.DefaultConfig()
	cfg.WeatherMode = "foggy"
	_, err := c.Simulate(context.Background(), cfg)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "INVALID_CONFIG", apiErr.Code)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestClient_DefaultBaseURL(t *testing.T) {
	c := New("")
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
}
