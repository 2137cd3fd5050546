package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/louhi-io/louhi/awsx"
	"github.com/louhi-io/louhi/catalog"
	"github.com/louhi-io/louhi/config"
	"github.com/louhi-io/louhi/discover"
	"github.com/louhi-io/louhi/snapshot"
	"github.com/louhi-io/louhi/tagindex"
	"github.com/louhi-io/louhi/telemetry"
	"github.com/louhi-io/louhi/watch"
)

var (
	watchInterval   time.Duration
	watchConfigPath string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run continuous inventory scans",
	Long: `Scan the account on an interval and persist each snapshot to the
local history store. Exposes Prometheus metrics and a health endpoint
while running.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", time.Hour, "Time between scans")
	watchCmd.Flags().StringVar(&watchConfigPath, "config", "", "Path to config file")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := telemetry.NewLogger("louhi")

	cfg := config.Default()
	if watchConfigPath != "" {
		loaded, err := config.Load(watchConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("interval") {
		cfg.Watch.Interval = watchInterval
	}

	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "louhi",
		ServiceVersion: rootCmd.Version,
		Environment:    os.Getenv("LOUHI_ENV"),
		OTELEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Insecure:       true,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("telemetry shutdown failed")
		}
	}()

	preflight, err := awsx.NewPreflightFromEnv(ctx)
	if err != nil {
		return err
	}
	identity, err := preflight.Check(ctx)
	if err != nil {
		return err
	}
	logger.Info().Str("identity", identity).Msg("credentials valid")

	cat, err := catalog.Default()
	if err != nil {
		return err
	}
	services, err := resolveServices(cat, cfg.Services, logger)
	if err != nil {
		return err
	}
	regions, err := resolveRegions(ctx, cfg.Regions, logger)
	if err != nil {
		return err
	}

	store, err := snapshot.Open(cfg.Watch.Storage)
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	defer store.Close()

	denylist := discover.DefaultDenylist()
	denylist.Add(cfg.Denylist...)

	factory := awsx.NewFactory(cat)
	tags := tagindex.NewScanner(factory.TaggingClients(), logger)
	coordinator := discover.NewCoordinator(factory, tags, logger,
		discover.WithWorkers(cfg.Workers),
		discover.WithCallTimeout(cfg.CallTimeout),
		discover.WithDenylist(denylist),
	)

	watcher, err := watch.New(watch.Config{
		Interval: cfg.Watch.Interval,
		Regions:  regions,
		Services: services,
	}, coordinator, store, logger)
	if err != nil {
		return err
	}

	var g run.Group

	watchCtx, watchCancel := context.WithCancel(ctx)
	g.Add(func() error {
		return watcher.Start(watchCtx)
	}, func(error) {
		watchCancel()
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Watch.MetricsPort),
		Handler: watchHandler(watcher),
	}
	g.Add(func() error {
		logger.Info().Str("addr", server.Addr).Msg("metrics server listening")
		return server.ListenAndServe()
	}, func(error) {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})

	g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))

	logger.Info().
		Dur("interval", cfg.Watch.Interval).
		Int("regions", len(regions)).
		Int("services", len(services)).
		Msg("watch started")

	err = g.Run()
	if _, ok := err.(run.SignalError); ok {
		logger.Info().Msg("shutting down")
		return nil
	}
	return err
}

func watchHandler(watcher *watch.Watcher) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(telemetry.PrometheusRegistry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(watcher.Health())
	})
	return mux
}
