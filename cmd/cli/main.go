package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"microgrid-twin/internal/config"
	"microgrid-twin/internal/model"
	"microgrid-twin/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/day.csv")
	fmt.Println("  cli sweep --config examples/config.yaml --capacities 5,10,15,20")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate outputs CSV with action=CHARGING/IDLE/DISCHARGING per strategy-hour")
	fmt.Println("  - sweep compares cost savings across battery capacities")
	fmt.Println("  - omit --config to run the Delhi defaults")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Optional output CSV path")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)

	engine, err := sim.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	result := engine.Run()

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := sim.WriteResultCSV(*outPath, result); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", 2*len(result.BaselineData), *outPath)
	}

	printSummary(result.Summary)
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	capList := fs.String("capacities", "5,10,15,20", "Comma-separated battery capacities (kWh)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	capacities := parseCapacities(*capList)

	fmt.Printf("%-14s %-14s %-12s %-10s %-12s %-10s\n",
		"capacity_kwh", "baseline", "smart", "saved", "saved_pct", "grid_pct")
	for _, capacity := range capacities {
		c := cfg
		c.BatteryCapacityKWh = capacity
		engine, err := sim.New(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "capacity %.1f: %v\n", capacity, err)
			os.Exit(1)
		}
		s := engine.Run().Summary
		fmt.Printf("%-14.1f %-14.2f %-12.2f %-10.2f %-12.1f %-10.1f\n",
			capacity, s.BaselineTotalCost, s.SmartTotalCost, s.CostSaved,
			s.CostSavedPercent, s.GridReducedPercent)
	}
}

func loadConfig(path string) model.SimulationConfig {
	if path == "" {
		return model.DefaultConfig()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg.ToModel()
}

func printSummary(s model.Summary) {
	fmt.Println("=== 24-hour comparison ===")
	fmt.Printf("Battery capacity:   %.1f kWh\n", s.BatteryCapacityKWh)
	fmt.Printf("Baseline cost:      %.2f\n", s.BaselineTotalCost)
	fmt.Printf("Smart cost:         %.2f\n", s.SmartTotalCost)
	fmt.Printf("Cost saved:         %.2f (%.1f%%)\n", s.CostSaved, s.CostSavedPercent)
	fmt.Printf("Baseline grid use:  %.2f kWh\n", s.BaselineGridUsage)
	fmt.Printf("Smart grid use:     %.2f kWh\n", s.SmartGridUsage)
	fmt.Printf("Grid reduced:       %.2f kWh (%.1f%%)\n", s.GridReduced, s.GridReducedPercent)
}

func parseCapacities(s string) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid capacity %q\n", p)
			os.Exit(2)
		}
		out = append(out, v)
	}
	return out
}
