package analytics

import "time"

// OptimizationRun is the outcome of one grid sweep. Results holds every
// valid result ranked by the target metric; TopResults is the leading slice
// of the same ranking. Consumers treat the run as read-only.
type OptimizationRun struct {
	StrategyFamily string
	TargetMetric   string
	Results        []StrategyResult
	TopResults     []StrategyResult
	// TuplesTried counts every tuple dispatched, including failed ones.
	TuplesTried int
	Elapsed     time.Duration
	Snapshots   []ResourceSnapshot
	Report      *ValidationReport
}

// Best returns the top-ranked result, or false for an empty run.
func (r *OptimizationRun) Best() (StrategyResult, bool) {
	if len(r.Results) == 0 {
		return StrategyResult{}, false
	}
	return r.Results[0], true
}
