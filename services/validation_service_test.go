package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aquantlab/gridbot/models"
	"gitlab.com/aquantlab/gridbot/models/analytics"
)

func runWithResults(results []analytics.StrategyResult) *analytics.OptimizationRun {
	return &analytics.OptimizationRun{
		StrategyFamily: "ma_cross",
		TargetMetric:   "sharpe_ratio",
		Results:        results,
	}
}

func diverseResults(n int) []analytics.StrategyResult {
	results := make([]analytics.StrategyResult, n)
	for i := range results {
		results[i] = analytics.StrategyResult{
			StrategyName: "ma_cross",
			Parameters:   models.Params{float64(i + 3), 50},
			Metrics: analytics.Metrics{
				SharpeRatio: 1.5 - 0.1*float64(i),
				TotalReturn: 0.3 - 0.02*float64(i),
				MaxDrawdown: -0.05 - 0.01*float64(i),
			},
		}
	}
	return results
}

func TestValidatePassesDiverseRun(t *testing.T) {
	validator := NewValidationService(models.DefaultEngineConfig().Validation)
	report := validator.Validate(runWithResults(diverseResults(12)))

	assert.Equal(t, analytics.ValidationPass, report.Status)
	assert.Equal(t, 12, report.ResultCount)
	assert.Empty(t, report.Findings)

	diversity, ok := report.DiversityFor("sharpe_ratio")
	require.True(t, ok)
	assert.Equal(t, 12, diversity.UniqueCount)
	assert.InDelta(t, 1.0, diversity.UniqueRatio, 1e-9)
	assert.Greater(t, diversity.Max, diversity.Min)
}

func TestValidateFailsDegenerateRun(t *testing.T) {
	results := make([]analytics.StrategyResult, 12)
	for i := range results {
		results[i] = analytics.StrategyResult{
			StrategyName: "ma_cross",
			Parameters:   models.Params{float64(i + 3), 50},
			Metrics: analytics.Metrics{
				SharpeRatio: 0.7,
				TotalReturn: 0.1,
				MaxDrawdown: -0.2,
			},
		}
	}

	validator := NewValidationService(models.DefaultEngineConfig().Validation)
	report := validator.Validate(runWithResults(results))

	assert.Equal(t, analytics.ValidationFail, report.Status)
	assert.NotEmpty(t, report.Findings)

	diversity, ok := report.DiversityFor("sharpe_ratio")
	require.True(t, ok)
	assert.Equal(t, 1, diversity.UniqueCount)
	// The mean of twelve 0.7s is not exactly 0.7 in float64, so the
	// deviation only vanishes to rounding error.
	assert.InDelta(t, 0.0, diversity.StdDev, 1e-12)
}

func TestValidateWarnsOnLowDiversity(t *testing.T) {
	// 12 results collapsing onto 4 sharpe values: ratio 0.33, between the
	// warn and pass thresholds.
	results := make([]analytics.StrategyResult, 12)
	for i := range results {
		results[i] = analytics.StrategyResult{
			StrategyName: "ma_cross",
			Parameters:   models.Params{float64(i + 3), 50},
			Metrics: analytics.Metrics{
				SharpeRatio: 0.5 + 0.1*float64(i%4),
				TotalReturn: 0.3 - 0.02*float64(i),
				MaxDrawdown: -0.05 - 0.01*float64(i),
			},
		}
	}

	validator := NewValidationService(models.DefaultEngineConfig().Validation)
	report := validator.Validate(runWithResults(results))

	assert.Equal(t, analytics.ValidationWarn, report.Status)
	assert.NotEmpty(t, report.Findings)
}

func TestValidateWarnsOnSmallRun(t *testing.T) {
	validator := NewValidationService(models.DefaultEngineConfig().Validation)
	report := validator.Validate(runWithResults(diverseResults(3)))

	assert.Equal(t, analytics.ValidationWarn, report.Status)
	require.NotEmpty(t, report.Findings)
	assert.Contains(t, report.Findings[len(report.Findings)-1], "at least 10")
}

func TestValidateWarnsOnEmptyRun(t *testing.T) {
	validator := NewValidationService(models.DefaultEngineConfig().Validation)
	report := validator.Validate(runWithResults(nil))

	assert.Equal(t, analytics.ValidationWarn, report.Status)
	assert.Equal(t, 0, report.ResultCount)
	require.Len(t, report.Findings, 1)
}

func TestValidateNearDuplicatesCollapse(t *testing.T) {
	// Values closer than the formatting precision count as one.
	results := diverseResults(12)
	base := results[0].Metrics.SharpeRatio
	for i := range results {
		results[i].Metrics.SharpeRatio = base + float64(i)*1e-12
	}

	validator := NewValidationService(models.DefaultEngineConfig().Validation)
	report := validator.Validate(runWithResults(results))

	diversity, ok := report.DiversityFor("sharpe_ratio")
	require.True(t, ok)
	assert.Equal(t, 1, diversity.UniqueCount, fmt.Sprintf("got %d unique", diversity.UniqueCount))
	assert.Equal(t, analytics.ValidationFail, report.Status)
}
