package backtest

import (
	"syscall"
	"time"

	"gitlab.com/aquantlab/gridbot/models/analytics"
)

// anomaly thresholds: a pure in-memory evaluation that held the wall clock
// this long should have burnt at least some CPU.
const (
	anomalyMinWall       = 10 * time.Millisecond
	anomalyMaxEfficiency = 1.0
)

// TimeIt runs fn and records its wall and process CPU time. CPUEfficiency is
// capped at 100 since rusage is process-wide and concurrent workers can push
// the raw ratio past it. The substantive outcome of fn is untouched.
func TimeIt(fn func() error) (analytics.TaskTiming, error) {
	wallStart := time.Now()
	cpuStart := ProcessCPUSeconds()

	err := fn()

	wall := time.Since(wallStart)
	cpu := time.Duration((ProcessCPUSeconds() - cpuStart) * float64(time.Second))
	if cpu < 0 {
		cpu = 0
	}

	timing := analytics.TaskTiming{WallTime: wall, CPUTime: cpu}
	if wall > 0 {
		raw := float64(cpu) / float64(wall) * 100
		timing.CPUEfficiency = raw
		if timing.CPUEfficiency > 100 {
			timing.CPUEfficiency = 100
		}
		timing.Anomalous = wall >= anomalyMinWall && raw < anomalyMaxEfficiency
	}
	return timing, err
}

// ProcessCPUSeconds reads cumulative user+system CPU time of the process.
func ProcessCPUSeconds() float64 {
	var usage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &usage); err != nil {
		return 0
	}
	return timevalSeconds(usage.Utime) + timevalSeconds(usage.Stime)
}

func timevalSeconds(tv syscall.Timeval) float64 {
	return float64(tv.Sec) + float64(tv.Usec)/1e6
}
