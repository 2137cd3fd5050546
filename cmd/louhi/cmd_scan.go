package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/louhi-io/louhi/awsx"
	"github.com/louhi-io/louhi/catalog"
	"github.com/louhi-io/louhi/config"
	"github.com/louhi-io/louhi/discover"
	"github.com/louhi-io/louhi/snapshot"
	"github.com/louhi-io/louhi/tagindex"
	"github.com/louhi-io/louhi/telemetry"
)

var (
	scanRegions     string
	scanServices    string
	scanWorkers     int
	scanOutput      string
	scanCallTimeout time.Duration
	scanConfigPath  string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover resources across regions and services",
	Long: `Scan your AWS account for resources.

Two strategies run per region: the tag index returns every resource
carrying at least one tag, and the generic enumeration calls every
listing-shaped operation of every target service with zero arguments.
Services are scanned in parallel within a region; regions are scanned
one at a time.`,
	Example: `  louhi scan                                   # All regions, all services
  louhi scan --regions us-east-1,eu-west-1     # Specific regions
  louhi scan --services ec2,s3,rds             # Specific services
  louhi scan --workers 20                      # Bigger worker pool
  louhi scan --output inventory.json           # Explicit output path`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanRegions, "regions", "all", "Comma-separated regions to scan, or 'all'")
	scanCmd.Flags().StringVar(&scanServices, "services", "all", "Comma-separated services to scan, or 'all'")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 10, "Worker pool size for concurrent service scanning")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "Output filename (default: aws_resources_<timestamp>.json)")
	scanCmd.Flags().DurationVar(&scanCallTimeout, "call-timeout", 30*time.Second, "Timeout per API call")
	scanCmd.Flags().StringVar(&scanConfigPath, "config", "", "Path to config file")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := telemetry.NewConsoleLogger("louhi")

	cfg, err := loadScanConfig(cmd)
	if err != nil {
		return err
	}

	// Credential preflight: nothing runs without usable credentials
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

	fmt.Printf("Scanning %d regions: %s\n", len(regions), strings.Join(regions, ", "))
	fmt.Printf("Scanning %d services with %d workers\n", len(services), cfg.Workers)

	denylist := discover.DefaultDenylist()
	denylist.Add(cfg.Denylist...)

	factory := awsx.NewFactory(cat)
	tags := tagindex.NewScanner(factory.TaggingClients(), logger)
	coordinator := discover.NewCoordinator(factory, tags, logger,
		discover.WithWorkers(cfg.Workers),
		discover.WithCallTimeout(cfg.CallTimeout),
		discover.WithDenylist(denylist),
	)

	start := time.Now()
	snap, err := coordinator.Run(ctx, regions, services)
	if err != nil {
		return err
	}

	output := cfg.Output
	if output == "" {
		output = snapshot.DefaultFilename(snap.Metadata.Timestamp)
	}
	if err := snapshot.Write(output, snap); err != nil {
		return err
	}

	fmt.Printf("\nFound %d tagged resources across all regions\n", snap.TotalTagged())
	fmt.Printf("Scan completed in %.2f seconds\n", time.Since(start).Seconds())
	fmt.Printf("Results saved to %s\n", output)
	return nil
}

// loadScanConfig layers flag values over the config file over the defaults
func loadScanConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if scanConfigPath != "" {
		loaded, err := config.Load(scanConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("workers") {
		cfg.Workers = scanWorkers
	}
	if cmd.Flags().Changed("call-timeout") {
		cfg.CallTimeout = scanCallTimeout
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = scanOutput
	}
	if cmd.Flags().Changed("regions") || len(cfg.Regions) == 0 {
		cfg.Regions = splitList(scanRegions)
	}
	if cmd.Flags().Changed("services") || len(cfg.Services) == 0 {
		cfg.Services = splitList(scanServices)
	}
	return cfg, nil
}

// splitList parses a comma-separated flag value; "all" maps to nil, meaning
// everything
func splitList(value string) []string {
	if strings.EqualFold(strings.TrimSpace(value), "all") {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func resolveServices(cat *catalog.Catalog, requested []string, logger zerolog.Logger) ([]string, error) {
	if len(requested) == 0 {
		return cat.Services(), nil
	}
	known, unknown := cat.Filter(requested)
	if len(unknown) > 0 {
		logger.Warn().Strs("services", unknown).Msg("unknown services skipped")
	}
	if len(known) == 0 {
		return nil, fmt.Errorf("none of the requested services are known")
	}
	return known, nil
}

func resolveRegions(ctx context.Context, requested []string, logger zerolog.Logger) ([]string, error) {
	if len(requested) > 0 {
		return requested, nil
	}
	enumerator, err := awsx.NewRegionEnumeratorFromEnv(ctx, logger)
	if err != nil {
		return nil, err
	}
	return enumerator.Regions(ctx), nil
}
