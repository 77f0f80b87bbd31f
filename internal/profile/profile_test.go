package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"microgrid-twin/internal/model"
)

func TestProfile_SolarZeroOutsideDaylight(t *testing.T) {
	p := New(model.DefaultConfig())
	for _, h := range []int{0, 1, 2, 3, 4, 5, 19, 20, 21, 22, 23} {
		assert.Zero(t, p.Solar[h], "hour %d", h)
	}
}

func TestProfile_SolarPeaksAtNoon(t *testing.T) {
	p := New(model.DefaultConfig())
	// exp(0) = 1 at noon, so the peak equals nameplate capacity.
	assert.InDelta(t, 5.0, p.Solar[12], 1e-9)
	for h := 0; h < HoursPerDay; h++ {
		assert.LessOrEqual(t, p.Solar[h], p.Solar[12], "hour %d", h)
	}
}

func TestProfile_SolarBellIsSymmetricAroundNoon(t *testing.T) {
	p := New(model.DefaultConfig())
	assert.InDelta(t, p.Solar[9], p.Solar[15], 1e-9)
	assert.InDelta(t, p.Solar[6], p.Solar[18], 1e-9)
}

func TestProfile_SolarGaussianValue(t *testing.T) {
	p := New(model.DefaultConfig())
	want := 5.0 * math.Exp(-0.5*math.Pow((9.0-12)/3, 2))
	assert.InDelta(t, want, p.Solar[9], 1e-9)
}

func TestProfile_CloudyHalvesSunny(t *testing.T) {
	sunny := New(model.DefaultConfig())

	cfg := model.DefaultConfig()
	cfg.WeatherMode = model.WeatherCloudy
	cloudy := New(cfg)

	for h := 0; h < HoursPerDay; h++ {
		assert.InDelta(t, sunny.Solar[h]/2, cloudy.Solar[h], 1e-9, "hour %d", h)
	}
}

func TestProfile_SolarScalesWithCapacity(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.SolarCapacityKW = 3.0
	p := New(cfg)
	assert.InDelta(t, 3.0, p.Solar[12], 1e-9)
}

func TestProfile_LoadCurveReferenceValues(t *testing.T) {
	p := New(model.DefaultConfig())
	assert.Equal(t, 1.5, p.Load[0])  // night trough
	assert.Equal(t, 4.5, p.Load[8])  // late-morning rise
	assert.Equal(t, 2.5, p.Load[12]) // midday shoulder
	assert.Equal(t, 7.0, p.Load[19]) // evening peak
	assert.Equal(t, 2.5, p.Load[23]) // tapered off
	assert.Equal(t, p.Load[19], LoadAt(19))
}

func TestProfile_PriceTiers(t *testing.T) {
	p := New(model.DefaultConfig())
	assert.Equal(t, 4.00, p.Price[0])
	assert.Equal(t, 4.00, p.Price[5])
	assert.Equal(t, 6.50, p.Price[6])
	assert.Equal(t, 6.50, p.Price[17])
	assert.Equal(t, 8.50, p.Price[18])
	assert.Equal(t, 8.50, p.Price[21])
	assert.Equal(t, 4.00, p.Price[22])
	assert.Equal(t, 4.00, p.Price[23])
}

func TestIsPeak_WindowBoundaries(t *testing.T) {
	assert.False(t, IsPeak(17))
	assert.True(t, IsPeak(18))
	assert.True(t, IsPeak(21))
	assert.False(t, IsPeak(22))
}

func TestProfile_Deterministic(t *testing.T) {
	cfg := model.DefaultConfig()
	assert.Equal(t, New(cfg), New(cfg))
}
