package services

import (
	"fmt"

	"gitlab.com/aquantlab/gridbot/helpers"
	"gitlab.com/aquantlab/gridbot/models"
	"gitlab.com/aquantlab/gridbot/models/analytics"
)

// auditedMetrics are the metrics checked for degeneracy. Identical values
// across many tuples usually mean a constant-parameter collapse or a broken
// signal rule, not a market property.
var auditedMetrics = []string{"sharpe_ratio", "total_return", "max_drawdown"}

// ValidationService audits a completed optimization run for result
// diversity. It is a pure reader: the run is never mutated and findings are
// advisory, never errors.
type ValidationService struct {
	cfg models.ValidationConfig
}

func NewValidationService(cfg models.ValidationConfig) ValidationService {
	return ValidationService{cfg: cfg}
}

func (v *ValidationService) Validate(run *analytics.OptimizationRun) *analytics.ValidationReport {
	report := &analytics.ValidationReport{
		Status:      analytics.ValidationPass,
		ResultCount: len(run.Results),
	}

	if len(run.Results) == 0 {
		report.Status = analytics.ValidationWarn
		report.Findings = append(report.Findings, "run holds no results to audit")
		return report
	}

	worstRatio := 1.0
	degenerate := false
	for _, metric := range auditedMetrics {
		diversity := v.audit(run.Results, metric)
		report.Diversity = append(report.Diversity, diversity)

		if diversity.UniqueRatio < worstRatio {
			worstRatio = diversity.UniqueRatio
		}
		if diversity.Max-diversity.Min <= v.cfg.SpreadEpsilon {
			degenerate = true
			report.Findings = append(report.Findings,
				fmt.Sprintf("%s shows no spread across %d results", metric, len(run.Results)))
		} else if diversity.UniqueRatio < v.cfg.PassRatio {
			report.Findings = append(report.Findings,
				fmt.Sprintf("%s has only %d unique values across %d results (ratio %.2f)",
					metric, diversity.UniqueCount, len(run.Results), diversity.UniqueRatio))
		}
	}

	if len(run.Results) < v.cfg.MinResults {
		report.Status = analytics.ValidationWarn
		report.Findings = append(report.Findings,
			fmt.Sprintf("only %d results; diversity thresholds need at least %d", len(run.Results), v.cfg.MinResults))
		return report
	}

	switch {
	case degenerate || worstRatio < v.cfg.WarnRatio:
		report.Status = analytics.ValidationFail
	case worstRatio < v.cfg.PassRatio:
		report.Status = analytics.ValidationWarn
	}
	return report
}

func (v *ValidationService) audit(results []analytics.StrategyResult, metric string) analytics.MetricDiversity {
	values := make([]float64, 0, len(results))
	unique := map[string]struct{}{}
	for _, result := range results {
		value, err := result.Metrics.Value(metric)
		if err != nil {
			continue
		}
		values = append(values, value)
		unique[fmt.Sprintf("%.9f", value)] = struct{}{}
	}

	mean := helpers.Mean(values)
	min, max := helpers.MinMax(values)
	ratio := 0.0
	if len(values) > 0 {
		ratio = float64(len(unique)) / float64(len(values))
	}

	return analytics.MetricDiversity{
		Metric:      metric,
		UniqueCount: len(unique),
		UniqueRatio: ratio,
		Mean:        mean,
		StdDev:      helpers.StdDev(values, mean),
		Min:         min,
		Max:         max,
	}
}
