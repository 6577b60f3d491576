package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gopkg.in/yaml.v3"

	"gitlab.com/aquantlab/gridbot/helpers"
	"gitlab.com/aquantlab/gridbot/models"
	"gitlab.com/aquantlab/gridbot/models/analytics"
	"gitlab.com/aquantlab/gridbot/services"
	"gitlab.com/aquantlab/gridbot/strategies"
)

// The engine itself does no I/O; everything here (env, CSV bars, YAML grid
// overrides, report printing) is caller-side glue.

func main() {
	cwd, _ := os.Getwd()
	_ = godotenv.Load(cwd + "/conf.env")

	app := &cli.App{
		Name:  "gridbot",
		Usage: "grid-optimize trading strategies over historical bars",
		Commands: []*cli.Command{
			{
				Name:  "optimize",
				Usage: "sweep parameter grids and rank the results",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "csv", Required: true, Usage: "bar file: timestamp,open,high,low,close,volume"},
					&cli.StringFlag{Name: "family", Value: "all", Usage: "strategy family or 'all'"},
					&cli.StringFlag{Name: "metric", Value: "", Usage: "ranking metric"},
					&cli.StringFlag{Name: "interval", Value: "1d", Usage: "bar interval, e.g. 1d, 4h, 15m"},
					&cli.StringFlag{Name: "grid", Value: "", Usage: "optional YAML grid override"},
					&cli.IntFlag{Name: "top", Value: 0, Usage: "top-N slice size"},
					&cli.IntFlag{Name: "workers", Value: 0, Usage: "parallel tuple evaluations"},
				},
				Action: runOptimize,
			},
			{
				Name:   "families",
				Usage:  "list strategy families and their default grids",
				Action: runFamilies,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		helpers.Logger.Errorln(err.Error())
		os.Exit(1)
	}
}

func runOptimize(c *cli.Context) error {
	bars, err := loadBarsCSV(c.String("csv"))
	if err != nil {
		return err
	}
	dataset, err := models.NewMarketDataset(bars)
	if err != nil {
		return err
	}

	cfg := models.DefaultEngineConfig()
	applyEnvOverrides(&cfg)
	if workers := c.Int("workers"); workers > 0 {
		cfg.Workers = workers
	}
	if interval, err := str2duration.ParseDuration(c.String("interval")); err == nil {
		cfg.Annualization = models.AnnualizationForInterval(interval)
	}

	families := strategies.AllFamilies()
	if name := c.String("family"); name != "all" {
		family, err := strategies.ParseFamily(name)
		if err != nil {
			return err
		}
		families = []strategies.Family{family}
	}

	optimizer := services.NewOptimizerService(cfg)
	if path := c.String("grid"); path != "" {
		if err := applyGridFile(optimizer, path); err != nil {
			return err
		}
	}

	run, err := optimizer.Optimize(dataset, families, c.String("metric"), c.Int("top"))
	if err != nil {
		return err
	}
	printRun(run)
	return nil
}

func runFamilies(c *cli.Context) error {
	for _, family := range strategies.AllFamilies() {
		grid := strategies.GridFor(family)
		fmt.Printf("%-14s %d tuples over %v\n", family, grid.Size(), grid.Names)
	}
	return nil
}

func applyEnvOverrides(cfg *models.EngineConfig) {
	if v, err := strconv.ParseFloat(os.Getenv("initialBalance"), 64); err == nil && v > 0 {
		cfg.InitialBalance = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("commissionRate"), 64); err == nil && v >= 0 {
		cfg.CommissionRate = v
	}
	if v, err := strconv.Atoi(os.Getenv("minBars")); err == nil && v > 0 {
		cfg.MinBars = v
	}
}

// gridFileEntry mirrors one Range in YAML.
type gridFileEntry struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Step float64 `yaml:"step"`
}

func applyGridFile(optimizer *services.OptimizerService, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file struct {
		Families map[string]map[string]gridFileEntry `yaml:"families"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return err
	}

	for name, axes := range file.Families {
		family, err := strategies.ParseFamily(name)
		if err != nil {
			return err
		}
		grid := strategies.GridFor(family)
		for axis, entry := range axes {
			grid, err = grid.WithRange(axis, strategies.Range{From: entry.From, To: entry.To, Step: entry.Step})
			if err != nil {
				return err
			}
		}
		optimizer.SetGrid(family, grid)
	}
	return nil
}

func loadBarsCSV(path string) ([]models.MarketBar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var bars []models.MarketBar
	for i, record := range records {
		if len(record) < 6 {
			return nil, fmt.Errorf("line %d: expected 6 columns, got %d", i+1, len(record))
		}
		if i == 0 {
			// Optional header row.
			if _, err := strconv.ParseInt(record[0], 10, 64); err != nil {
				continue
			}
		}
		ts, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad timestamp: %w", i+1, err)
		}
		values := make([]float64, 5)
		for j := 0; j < 5; j++ {
			values[j], err = strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad column %d: %w", i+1, j+2, err)
			}
		}
		bars = append(bars, models.MarketBar{
			Timestamp: time.Unix(ts, 0).UTC(),
			Open:      values[0],
			High:      values[1],
			Low:       values[2],
			Close:     values[3],
			Volume:    values[4],
		})
	}
	return bars, nil
}

func printRun(run *analytics.OptimizationRun) {
	fmt.Printf("family=%s metric=%s tuples=%d results=%d elapsed=%s validation=%s\n",
		run.StrategyFamily, run.TargetMetric, run.TuplesTried, len(run.Results), run.Elapsed, run.Report.Status)
	for _, finding := range run.Report.Findings {
		fmt.Printf("  finding: %s\n", finding)
	}
	for rank, result := range run.TopResults {
		fmt.Printf("%2d. %-14s %-24s %s=%.4f return=%.2f%% drawdown=%.2f%% trades=%d win=%.1f%%\n",
			rank+1, result.StrategyName, result.Parameters.String(), run.TargetMetric,
			mustValue(result.Metrics, run.TargetMetric),
			result.Metrics.TotalReturn*100, result.Metrics.MaxDrawdown*100,
			result.Metrics.TradeCount, result.Metrics.WinRate)
	}
}

func mustValue(metrics analytics.Metrics, name string) float64 {
	value, _ := metrics.Value(name)
	return value
}
