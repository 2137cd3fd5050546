package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	rootCmd = &cobra.Command{
		Use:   "louhi",
		Short: "Account-wide AWS resource inventory",
		Long: `Louhi - AWS resource inventory

Louhi discovers which resources exist in your AWS account by calling
every listing-shaped read operation across every supported service,
and by querying the cross-service tag index for everything that
carries at least one tag. Both views are merged into one snapshot
per region.`,
		Version: version,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`Louhi {{.Version}} - AWS resource inventory
`)
}
