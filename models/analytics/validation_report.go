package analytics

// ValidationStatus grades a completed run.
type ValidationStatus string

const (
	ValidationPass ValidationStatus = "PASS"
	ValidationWarn ValidationStatus = "WARN"
	ValidationFail ValidationStatus = "FAIL"
)

// MetricDiversity describes how varied one metric is across a run. A low
// unique ratio on non-degenerate input usually means a broken signal rule or
// a parameter collapse, not a real market property.
type MetricDiversity struct {
	Metric      string
	UniqueCount int
	UniqueRatio float64
	Mean        float64
	StdDev      float64
	Min         float64
	Max         float64
}

// ValidationReport is the advisory audit of an optimization run. Findings
// are human-readable warnings; the validator never raises them as errors.
type ValidationReport struct {
	Status      ValidationStatus
	ResultCount int
	Diversity   []MetricDiversity
	Findings    []string
}

// DiversityFor looks up the audit row for one metric.
func (r *ValidationReport) DiversityFor(metric string) (MetricDiversity, bool) {
	for _, d := range r.Diversity {
		if d.Metric == metric {
			return d, true
		}
	}
	return MetricDiversity{}, false
}
