package models

import (
	"runtime"
	"time"
)

// EngineConfig is the full configuration of one engine instance. The engine
// never reads the environment or files itself; callers build this struct.
type EngineConfig struct {
	InitialBalance float64
	CommissionRate float64
	// MinBars is the smallest series a strategy accepts before evaluation
	// is refused with InsufficientDataError.
	MinBars int
	// Annualization is the number of bars per year used by the evaluator,
	// 252 for daily bars.
	Annualization float64
	Workers       int
	TopN          int
	TargetMetric  string
	// MonitorInterval is the advisory resource snapshot cadence.
	MonitorInterval time.Duration
	Validation      ValidationConfig
}

// ValidationConfig holds the thresholds of the result validator.
type ValidationConfig struct {
	// MinResults is the smallest run the validator will grade; smaller
	// runs report WARN with an explanatory finding.
	MinResults int
	// PassRatio and WarnRatio bound the unique-value ratio per metric.
	PassRatio float64
	WarnRatio float64
	// SpreadEpsilon is the minimum max-min spread a metric must show to
	// count as non-degenerate.
	SpreadEpsilon float64
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		InitialBalance:  10000,
		CommissionRate:  0.0014,
		MinBars:         100,
		Annualization:   252,
		Workers:         runtime.NumCPU(),
		TopN:            10,
		TargetMetric:    "sharpe_ratio",
		MonitorInterval: 2 * time.Second,
		Validation: ValidationConfig{
			MinResults:    10,
			PassRatio:     0.5,
			WarnRatio:     0.2,
			SpreadEpsilon: 1e-9,
		},
	}
}

// AnnualizationForInterval derives bars-per-year from the bar interval,
// assuming a 365-day trading year for sub-daily intervals and 252 trading
// days for daily and coarser ones.
func AnnualizationForInterval(interval time.Duration) float64 {
	if interval <= 0 {
		return 252
	}
	if interval >= 24*time.Hour {
		return 252 * float64(24*time.Hour) / float64(interval)
	}
	return float64(365*24*time.Hour) / float64(interval)
}
