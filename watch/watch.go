// Package watch runs the inventory scan continuously at an interval,
// persisting each snapshot to the history store and exporting metrics.
package watch

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/louhi-io/louhi/snapshot"
	"github.com/louhi-io/louhi/types"
)

// Runner is the scan entry point the daemon drives; the discovery
// coordinator satisfies it
type Runner interface {
	Run(ctx context.Context, regions, services []string) (*types.InventorySnapshot, error)
}

// Config holds daemon configuration
type Config struct {
	Interval time.Duration
	Regions  []string
	Services []string
}

// Watcher manages the continuous inventory loop
type Watcher struct {
	runner  Runner
	store   *snapshot.Store
	metrics *Metrics
	logger  zerolog.Logger

	interval  time.Duration
	regions   []string
	services  []string
	startTime time.Time
	scanCount atomic.Int64
}

// New builds a watcher
func New(cfg Config, runner Runner, store *snapshot.Store, logger zerolog.Logger) (*Watcher, error) {
	metrics, err := NewMetrics()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		runner:    runner,
		store:     store,
		metrics:   metrics,
		logger:    logger,
		interval:  cfg.Interval,
		regions:   cfg.Regions,
		services:  cfg.Services,
		startTime: time.Now(),
	}, nil
}

// Start runs the scan loop until the context is cancelled. One scan runs
// immediately, then one per interval tick.
func (w *Watcher) Start(ctx context.Context) error {
	w.runOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	start := time.Now()
	w.scanCount.Add(1)

	snap, err := w.runner.Run(ctx, w.regions, w.services)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		w.metrics.RecordScan(ctx, "error", elapsed, 0, 0)
		w.logger.Error().Err(err).Msg("scan failed")
		return
	}

	key, err := w.store.Save(snap)
	if err != nil {
		w.metrics.RecordScan(ctx, "store_error", elapsed, snap.TotalTagged(), snap.TotalDiscovered())
		w.logger.Error().Err(err).Msg("failed to store snapshot")
		return
	}

	w.metrics.RecordScan(ctx, "ok", elapsed, snap.TotalTagged(), snap.TotalDiscovered())
	w.logger.Info().
		Str("snapshot", key).
		Float64("duration_s", elapsed).
		Int("tagged_resources", snap.TotalTagged()).
		Msg("scan stored")
}

// ScanCount returns total scans run
func (w *Watcher) ScanCount() int64 {
	return w.scanCount.Load()
}

// Health reports daemon health
func (w *Watcher) Health() HealthStatus {
	return HealthStatus{
		Status: "healthy",
		Uptime: int64(time.Since(w.startTime).Seconds()),
	}
}

// HealthStatus represents daemon health
type HealthStatus struct {
	Status string `json:"status"`
	Uptime int64  `json:"uptime_seconds"`
}
