package discover

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/louhi-io/louhi/types"
)

// DefaultWorkers is the worker pool size when none is configured
const DefaultWorkers = 10

// Coordinator drives a full inventory run: regions strictly sequentially,
// services fanned out across a bounded worker pool within each region, the
// tag index queried once per region before the fan-out. The coordinator is
// the sole writer of the snapshot.
type Coordinator struct {
	factory ClientFactory
	tags    TagScanner
	workers int
	scanner *ServiceScanner
	logger  zerolog.Logger
	now     func() time.Time
}

// CoordinatorOption tweaks coordinator construction
type CoordinatorOption func(*Coordinator)

// WithWorkers sets the worker pool size
func WithWorkers(n int) CoordinatorOption {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithCallTimeout sets the per-call timeout used by the invoker
func WithCallTimeout(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		c.scanner.invoker.Timeout = d
	}
}

// WithDenylist replaces the classifier's denylist
func WithDenylist(denylist Denylist) CoordinatorOption {
	return func(c *Coordinator) {
		c.scanner.classifier = NewClassifier(denylist)
	}
}

// WithClock overrides the snapshot timestamp source
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) {
		c.now = now
	}
}

// NewCoordinator builds a coordinator over the given client factory and tag
// scanner
func NewCoordinator(factory ClientFactory, tags TagScanner, logger zerolog.Logger, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		factory: factory,
		tags:    tags,
		workers: DefaultWorkers,
		scanner: NewServiceScanner(NewClassifier(DefaultDenylist()), Invoker{}, logger),
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// serviceResult is the single-writer, single-reader handoff from a worker to
// the coordinator
type serviceResult struct {
	service string
	result  types.ServiceScanResult
}

// Run performs the scan and returns the assembled snapshot. Per-operation
// and per-service failures never fail the run; the snapshot is best-effort
// and may under-report when many calls fail. The only terminal error is
// context cancellation.
func (c *Coordinator) Run(ctx context.Context, regions, services []string) (*types.InventorySnapshot, error) {
	snapshot := types.NewSnapshot(c.now(), regions, services)

	for _, region := range regions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.logger.Info().Str("region", region).Msg("scanning region")

		tagged := c.scanTagged(ctx, region)
		all := c.fanOut(ctx, region, services)

		arns := make([]string, 0, len(tagged))
		for _, record := range tagged {
			arns = append(arns, record.ARN)
		}
		snapshot.ResourcesByRegion[region] = types.RegionResult{
			TaggedResources: arns,
			AllResources:    all,
		}
	}

	c.logger.Info().
		Int("regions", len(regions)).
		Int("tagged_resources", snapshot.TotalTagged()).
		Int("discovered_resources", snapshot.TotalDiscovered()).
		Msg("scan complete")
	return snapshot, nil
}

// scanTagged runs the tag index scan for one region. Total failure yields an
// empty result with a diagnostic, never an abort.
func (c *Coordinator) scanTagged(ctx context.Context, region string) []types.TaggedResource {
	tagged, err := c.tags.Scan(ctx, region)
	if err != nil {
		c.logger.Warn().Str("region", region).Err(err).Msg("tag index scan failed")
		return nil
	}
	return tagged
}

// fanOut dispatches one service scan per target service into the worker pool
// and collects the non-empty results. The pool lives for exactly one
// region's fan-out.
func (c *Coordinator) fanOut(ctx context.Context, region string, services []string) map[string]types.ServiceScanResult {
	jobs := make(chan string)
	results := make(chan serviceResult)

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for service := range jobs {
				results <- serviceResult{service: service, result: c.scanService(ctx, service, region)}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, service := range services {
			select {
			case jobs <- service:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	all := make(map[string]types.ServiceScanResult)
	for r := range results {
		// Services with zero findings are dropped, not stored empty
		if len(r.result) > 0 {
			all[r.service] = r.result
		}
	}
	return all
}

// scanService runs one complete service scan. Client construction failure is
// caught and yields an empty result with a diagnostic.
func (c *Coordinator) scanService(ctx context.Context, service, region string) types.ServiceScanResult {
	c.logger.Debug().Str("service", service).Str("region", region).Msg("scanning service")

	client, err := c.factory.Client(ctx, service, region)
	if err != nil {
		c.logger.Warn().Str("service", service).Str("region", region).Err(err).Msg("failed to build client")
		return nil
	}
	return c.scanner.Scan(ctx, client, region)
}
