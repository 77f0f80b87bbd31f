package sim

import "math"

// dispatchContext carries the per-hour inputs the smart policy decides on.
// SOC values are percent [0,100]; energy quantities are kWh (1-hour steps).
type dispatchContext struct {
	DeficitKW    float64 // load - solar; negative means solar surplus
	Peak         bool
	SOC          float64
	CapacityKWh  float64
	Efficiency   float64
	FloorPercent float64 // reserve floor: never discharge below this
	CeilPercent  float64
}

// dispatchFlows is the outcome of applying one rule for one hour.
type dispatchFlows struct {
	ChargeKW    float64
	DischargeKW float64
	GridKW      float64
	NextSOC     float64
}

// Rule is one guarded action of the dispatch policy. Rules are evaluated
// top-to-bottom; the first rule whose guard holds decides the hour.
type Rule struct {
	Name    string
	applies func(ctx dispatchContext) bool
	apply   func(ctx dispatchContext) dispatchFlows
}

// SmartPolicy is the greedy peak-shaving rule set:
//  1. harvest    — store free solar surplus while the battery has headroom
//  2. peak-shave — spend stored energy against peak-priced deficit, down to
//     the reserve floor
//  3. grid-fill  — buy any remaining deficit from the grid
//
// Adding a tier (e.g. export-to-grid) means inserting a rule, not rewriting
// conditionals.
func SmartPolicy() []Rule {
	return []Rule{
		{
			Name: "harvest",
			applies: func(ctx dispatchContext) bool {
				return ctx.DeficitKW < 0 && ctx.SOC < ctx.CeilPercent
			},
			apply: func(ctx dispatchContext) dispatchFlows {
				surplus := -ctx.DeficitKW
				headroom := (ctx.CeilPercent - ctx.SOC) / 100 * ctx.CapacityKWh
				charge := math.Min(surplus*ctx.Efficiency, headroom)
				if charge < 0 {
					charge = 0
				}
				return dispatchFlows{
					ChargeKW: charge,
					NextSOC:  clampSOC(ctx.SOC + charge/ctx.CapacityKWh*100),
				}
			},
		},
		{
			Name: "peak-shave",
			applies: func(ctx dispatchContext) bool {
				return ctx.DeficitKW > 0 && ctx.Peak && ctx.SOC > ctx.FloorPercent
			},
			apply: func(ctx dispatchContext) dispatchFlows {
				available := (ctx.SOC - ctx.FloorPercent) / 100 * ctx.CapacityKWh
				discharge := math.Min(ctx.DeficitKW, available*ctx.Efficiency)
				if discharge < 0 {
					discharge = 0
				}
				return dispatchFlows{
					DischargeKW: discharge,
					GridKW:      math.Max(0, ctx.DeficitKW-discharge),
					NextSOC:     clampSOC(ctx.SOC - discharge/ctx.CapacityKWh*100),
				}
			},
		},
		{
			Name:    "grid-fill",
			applies: func(ctx dispatchContext) bool { return true },
			apply: func(ctx dispatchContext) dispatchFlows {
				return dispatchFlows{
					GridKW:  math.Max(0, ctx.DeficitKW),
					NextSOC: ctx.SOC,
				}
			},
		},
	}
}

// evaluate runs the policy top-to-bottom and returns the deciding rule's
// name plus its flows. The final grid-fill rule always applies, so a match
// is guaranteed.
func evaluate(rules []Rule, ctx dispatchContext) (string, dispatchFlows) {
	for _, r := range rules {
		if r.applies(ctx) {
			return r.Name, r.apply(ctx)
		}
	}
	return "", dispatchFlows{NextSOC: ctx.SOC}
}

func clampSOC(soc float64) float64 {
	if soc < 0 {
		return 0
	}
	if soc > 100 {
		return 100
	}
	return soc
}
