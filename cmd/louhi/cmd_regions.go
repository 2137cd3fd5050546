package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/louhi-io/louhi/awsx"
	"github.com/louhi-io/louhi/telemetry"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List regions enabled for this account",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		logger := telemetry.NewConsoleLogger("louhi")

		enumerator, err := awsx.NewRegionEnumeratorFromEnv(ctx, logger)
		if err != nil {
			return err
		}
		for _, region := range enumerator.Regions(ctx) {
			fmt.Println(region)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
