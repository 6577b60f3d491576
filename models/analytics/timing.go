package analytics

import "time"

// TaskTiming records how long one evaluation took on the wall clock and in
// process CPU time. CPUEfficiency is cpu/wall as a percentage, capped at 100
// since process-wide CPU accounting can overshoot under concurrency.
type TaskTiming struct {
	WallTime      time.Duration
	CPUTime       time.Duration
	CPUEfficiency float64
	// Anomalous flags a near-zero CPU share over a long wall interval,
	// which is unexpected in a pure in-memory evaluation.
	Anomalous bool
}
