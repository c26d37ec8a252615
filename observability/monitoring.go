// Package observability aggregates runtime metrics for logs and the debug page.
package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// MonitoringStats is one point-in-time snapshot of every tracked metric.
type MonitoringStats struct {
	JoinsTotal      uint64  `json:"joins_total"`
	BroadcastsTotal uint64  `json:"broadcasts_total"`
	EventsDropped   uint64  `json:"events_dropped"`
	ActiveSessions  int64   `json:"active_sessions"`
	CPUPercent      float64 `json:"cpu_percent"`
	RSSBytes        uint64  `json:"rss_bytes"`
	AllocMemMb      uint64  `json:"alloc_mem_mb"`
	NumGC           uint32  `json:"num_gc"`
}

// MonitoringManager collects realtime metrics through atomic counters; the
// HealthWorker folds them into a snapshot on its own tick.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats MonitoringStats

	joins          uint64
	broadcasts     uint64
	droppedEvents  uint64
	activeSessions int64
	lastCheck      time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log, lastCheck: time.Now()}
}

func (mm *MonitoringManager) IncrJoins() {
	atomic.AddUint64(&mm.joins, 1)
}

func (mm *MonitoringManager) IncrBroadcasts() {
	atomic.AddUint64(&mm.broadcasts, 1)
}

func (mm *MonitoringManager) IncrDroppedEvents() {
	atomic.AddUint64(&mm.droppedEvents, 1)
}

func (mm *MonitoringManager) IncrActiveSessions() {
	atomic.AddInt64(&mm.activeSessions, 1)
}

func (mm *MonitoringManager) DecrActiveSessions() {
	atomic.AddInt64(&mm.activeSessions, -1)
}

// Snapshot folds the atomic counters and the provided process stats into the
// latest snapshot and returns it.
func (mm *MonitoringManager) Snapshot(cpuPercent float64, rssBytes uint64) MonitoringStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := MonitoringStats{
		JoinsTotal:      atomic.LoadUint64(&mm.joins),
		BroadcastsTotal: atomic.LoadUint64(&mm.broadcasts),
		EventsDropped:   atomic.LoadUint64(&mm.droppedEvents),
		ActiveSessions:  atomic.LoadInt64(&mm.activeSessions),
		CPUPercent:      cpuPercent,
		RSSBytes:        rssBytes,
		AllocMemMb:      memStats.Alloc / (1 << 20),
		NumGC:           memStats.NumGC,
	}

	mm.mu.Lock()
	mm.latestStats = stats
	mm.lastCheck = time.Now()
	mm.mu.Unlock()
	return stats
}

// GetLatest returns the most recent snapshot without recomputing anything.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}
