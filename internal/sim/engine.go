// Package sim runs the 24-hour energy-balance comparison: a baseline pass
// (battery idle) against the smart peak-shaving dispatch, over the same
// deterministic day profile.
package sim

import (
	"fmt"
	"math"

	"microgrid-twin/internal/model"
	"microgrid-twin/internal/profile"
)

// Engine runs both strategies over one synthetic day. It holds no state
// across runs; Run always starts from the configured initial SoC.
type Engine struct {
	cfg     model.SimulationConfig
	profile profile.Profile
	rules   []Rule
}

// New validates the config and precomputes the day profile.
func New(cfg model.SimulationConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		cfg:     cfg,
		profile: profile.New(cfg),
		rules:   SmartPolicy(),
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() model.SimulationConfig { return e.cfg }

// Run executes both strategies and returns the comparison snapshot.
func (e *Engine) Run() *model.Result {
	baseline := e.runBaseline()
	smart := e.runSmart()
	return &model.Result{
		BaselineData: baseline,
		SmartData:    smart,
		Summary:      e.summarize(baseline, smart),
	}
}

// runBaseline meets load from solar directly and buys the deficit from the
// grid. The battery is present but idle; excess solar is curtailed.
func (e *Engine) runBaseline() []model.HourlyRecord {
	records := make([]model.HourlyRecord, 0, profile.HoursPerDay)
	staticSOC := e.cfg.InitialSOC * 100

	for h := 0; h < profile.HoursPerDay; h++ {
		solar := e.profile.Solar[h]
		load := e.profile.Load[h]
		price := e.profile.Price[h]

		grid := math.Max(0, load-solar)
		records = append(records, model.HourlyRecord{
			Hour:              h,
			SolarGenerationKW: solar,
			LoadDemandKW:      load,
			SolarUsedKW:       math.Min(solar, load),
			SolarExcessKW:     math.Max(0, solar-load),
			GridUsageKW:       grid,
			BatterySOCPercent: staticSOC,
			GridPrice:         price,
			HourlyCost:        grid * price,
			IsPeakHour:        profile.IsPeak(h),
		})
	}
	return records
}

// runSmart steps the battery hour-by-hour through the dispatch policy.
// Order matters: this is a forward-time walk, SoC carries between hours.
func (e *Engine) runSmart() []model.HourlyRecord {
	records := make([]model.HourlyRecord, 0, profile.HoursPerDay)
	soc := clampSOC(e.cfg.InitialSOC * 100)

	for h := 0; h < profile.HoursPerDay; h++ {
		solar := e.profile.Solar[h]
		load := e.profile.Load[h]
		price := e.profile.Price[h]

		_, flows := evaluate(e.rules, dispatchContext{
			DeficitKW:    load - solar,
			Peak:         profile.IsPeak(h),
			SOC:          soc,
			CapacityKWh:  e.cfg.BatteryCapacityKWh,
			Efficiency:   e.cfg.Efficiency,
			FloorPercent: e.cfg.MinSOC * 100,
			CeilPercent:  e.cfg.MaxSOC * 100,
		})
		soc = flows.NextSOC

		records = append(records, model.HourlyRecord{
			Hour:               h,
			SolarGenerationKW:  solar,
			LoadDemandKW:       load,
			SolarUsedKW:        math.Min(solar, load),
			SolarExcessKW:      math.Max(0, solar-load-flows.ChargeKW),
			GridUsageKW:        flows.GridKW,
			BatteryChargeKW:    flows.ChargeKW,
			BatteryDischargeKW: flows.DischargeKW,
			BatterySOCPercent:  soc,
			GridPrice:          price,
			HourlyCost:         flows.GridKW * price,
			IsPeakHour:         profile.IsPeak(h),
		})
	}
	return records
}

func (e *Engine) summarize(baseline, smart []model.HourlyRecord) model.Summary {
	var baseCost, smartCost, baseGrid, smartGrid float64
	for _, r := range baseline {
		baseCost += r.HourlyCost
		baseGrid += r.GridUsageKW
	}
	for _, r := range smart {
		smartCost += r.HourlyCost
		smartGrid += r.GridUsageKW
	}

	s := model.Summary{
		BaselineTotalCost:  baseCost,
		SmartTotalCost:     smartCost,
		CostSaved:          baseCost - smartCost,
		BaselineGridUsage:  baseGrid,
		SmartGridUsage:     smartGrid,
		GridReduced:        baseGrid - smartGrid,
		BatteryCapacityKWh: e.cfg.BatteryCapacityKWh,
		PeakPrice:          e.cfg.Tariff.PeakPrice,
		OffPeakPrice:       e.cfg.Tariff.OffPeakPrice,
	}
	// Zero-cost and zero-usage days have no meaningful percentage; report 0
	// so consumers always get a finite number.
	if baseCost > 0 {
		s.CostSavedPercent = s.CostSaved / baseCost * 100
	}
	if baseGrid > 0 {
		s.GridReducedPercent = s.GridReduced / baseGrid * 100
	}
	return s
}
