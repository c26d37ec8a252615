package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"counter-lab/observability"

	"github.com/shirou/gopsutil/process"
)

// HealthWorker periodically samples the process's own CPU and memory usage
// and folds them into the monitoring snapshot alongside the counter metrics.
type HealthWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewHealthWorker(log *slog.Logger, monitoring *observability.MonitoringManager,
	interval time.Duration) *HealthWorker {
	return &HealthWorker{log: log, monitoring: monitoring, interval: interval}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	w.log.Info("Starting health worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			cpu, rss, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			stats := w.monitoring.Snapshot(cpu, rss)
			w.log.Debug("health",
				"cpu_percent", stats.CPUPercent,
				"rss_mb", stats.RSSBytes/(1<<20),
				"active_sessions", stats.ActiveSessions,
				"joins_total", stats.JoinsTotal,
				"broadcasts_total", stats.BroadcastsTotal,
				"events_dropped", stats.EventsDropped,
			)
		}
	}
}

func selfStats(p *process.Process) (float64, uint64, error) {
	cpu, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	return cpu, mem.RSS, nil
}
