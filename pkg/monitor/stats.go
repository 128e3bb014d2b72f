package monitor

import (
	"fmt"
	"sync/atomic"
	"time"
)

// WorkloadStats counts the operations a session issues against its structures.
type WorkloadStats struct {
	InsertCount uint64
	SearchCount uint64
	HitCount    uint64
	RemoveCount uint64
	SortCount   uint64
}

func NewWorkloadStats() *WorkloadStats {
	return &WorkloadStats{}
}

func (ws *WorkloadStats) RecordInsert(n int) {
	atomic.AddUint64(&ws.InsertCount, uint64(n))
}

func (ws *WorkloadStats) RecordSearch(hit bool) {
	atomic.AddUint64(&ws.SearchCount, 1)
	if hit {
		atomic.AddUint64(&ws.HitCount, 1)
	}
}

func (ws *WorkloadStats) RecordRemove() {
	atomic.AddUint64(&ws.RemoveCount, 1)
}

func (ws *WorkloadStats) RecordSort() {
	atomic.AddUint64(&ws.SortCount, 1)
}

// HitRatio is hits over searches, 0 before the first search.
func (ws *WorkloadStats) HitRatio() float64 {
	searches := atomic.LoadUint64(&ws.SearchCount)
	if searches == 0 {
		return 0.0
	}
	return float64(atomic.LoadUint64(&ws.HitCount)) / float64(searches)
}

func (ws *WorkloadStats) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"inserts":   atomic.LoadUint64(&ws.InsertCount),
		"searches":  atomic.LoadUint64(&ws.SearchCount),
		"hits":      atomic.LoadUint64(&ws.HitCount),
		"removes":   atomic.LoadUint64(&ws.RemoveCount),
		"sorts":     atomic.LoadUint64(&ws.SortCount),
		"hit_ratio": ws.HitRatio(),
	}
}

// Timed runs fn and returns how long it took.
func Timed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// FormatDuration renders d the way the console reports operation cost.
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("time: %v (%.6f seconds)", d, d.Seconds())
}
