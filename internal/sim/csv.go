package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"microgrid-twin/internal/model"
)

// WriteResultCSV writes both strategy ledgers to a single CSV, one row per
// strategy-hour. This is the primary artifact for "what happened" in a run.
func WriteResultCSV(path string, result *model.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"strategy",
		"hour",
		"solar_generation_kw",
		"load_demand_kw",
		"solar_used_kw",
		"solar_excess_kw",
		"grid_usage_kw",
		"battery_charge_kw",
		"battery_discharge_kw",
		"battery_soc_percent",
		"action",
		"grid_price",
		"hourly_cost",
		"is_peak_hour",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, series := range []struct {
		name    string
		records []model.HourlyRecord
	}{
		{"baseline", result.BaselineData},
		{"smart", result.SmartData},
	} {
		for _, r := range series.records {
			row := []string{
				series.name,
				strconv.Itoa(r.Hour),
				fmtFloat(r.SolarGenerationKW),
				fmtFloat(r.LoadDemandKW),
				fmtFloat(r.SolarUsedKW),
				fmtFloat(r.SolarExcessKW),
				fmtFloat(r.GridUsageKW),
				fmtFloat(r.BatteryChargeKW),
				fmtFloat(r.BatteryDischargeKW),
				fmtFloat(r.BatterySOCPercent),
				string(model.ActionFromFlows(r.BatteryChargeKW, r.BatteryDischargeKW)),
				fmtFloat(r.GridPrice),
				fmtFloat(r.HourlyCost),
				strconv.FormatBool(r.IsPeakHour),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
