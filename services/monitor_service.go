package services

import (
	"runtime"
	"sync"
	"time"

	"gitlab.com/aquantlab/gridbot/backtest"
	"gitlab.com/aquantlab/gridbot/models/analytics"
)

// MonitorService takes advisory resource snapshots around a batch: a
// baseline when started, periodic readings while running, and a final one on
// stop. It is explicitly constructed and torn down per batch and never gates
// or cancels work.
type MonitorService struct {
	interval  time.Duration
	mu        sync.Mutex
	snapshots []analytics.ResourceSnapshot
	stop      chan struct{}
	done      chan struct{}
}

func NewMonitorService(interval time.Duration) *MonitorService {
	return &MonitorService{interval: interval}
}

func (m *MonitorService) Start() {
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	m.record(analytics.SnapshotBaseline)

	go func() {
		defer close(m.done)
		if m.interval <= 0 {
			<-m.stop
			return
		}
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.record(analytics.SnapshotPeriodic)
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop takes the final snapshot and returns everything collected.
func (m *MonitorService) Stop() []analytics.ResourceSnapshot {
	close(m.stop)
	<-m.done
	m.record(analytics.SnapshotFinal)

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]analytics.ResourceSnapshot, len(m.snapshots))
	copy(out, m.snapshots)
	return out
}

func (m *MonitorService) record(phase analytics.SnapshotPhase) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	snapshot := analytics.ResourceSnapshot{
		Phase:      phase,
		Taken:      time.Now(),
		HeapBytes:  memStats.HeapInuse,
		Goroutines: runtime.NumGoroutine(),
		CPUSeconds: backtest.ProcessCPUSeconds(),
	}

	m.mu.Lock()
	m.snapshots = append(m.snapshots, snapshot)
	m.mu.Unlock()
}
