package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
	TotalAlloc   uint64 // cumulative bytes allocated
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
		TotalAlloc:   m.TotalAlloc,
	}
}

// MemoryUsage summarises memory use across a run.
type MemoryUsage struct {
	Allocated uint64 // bytes allocated between the two snapshots
	GCCycles  uint32 // GC cycles completed between the two snapshots
	PeakHeap  uint64 // heap in use at the later snapshot
}

// Since compares s with an earlier snapshot.
func (s MemorySnapshot) Since(before MemorySnapshot) MemoryUsage {
	u := MemoryUsage{PeakHeap: s.HeapAlloc}
	if s.TotalAlloc >= before.TotalAlloc {
		u.Allocated = s.TotalAlloc - before.TotalAlloc
	}
	if s.NumGC >= before.NumGC {
		u.GCCycles = s.NumGC - before.NumGC
	}
	return u
}
