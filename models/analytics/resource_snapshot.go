package analytics

import "time"

// SnapshotPhase tags when in the batch a resource snapshot was taken.
type SnapshotPhase string

const (
	SnapshotBaseline SnapshotPhase = "baseline"
	SnapshotPeriodic SnapshotPhase = "periodic"
	SnapshotFinal    SnapshotPhase = "final"
)

// ResourceSnapshot is one advisory reading of process state during a batch.
// Snapshots never gate or cancel work.
type ResourceSnapshot struct {
	Phase      SnapshotPhase
	Taken      time.Time
	HeapBytes  uint64
	Goroutines int
	CPUSeconds float64
}
