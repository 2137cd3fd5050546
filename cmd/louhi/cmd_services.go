package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/louhi-io/louhi/catalog"
	"github.com/louhi-io/louhi/discover"
)

var servicesVerbose bool

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List services the scanner knows how to enumerate",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Default()
		if err != nil {
			return err
		}
		classifier := discover.NewClassifier(discover.DefaultDenylist())
		for _, service := range cat.Services() {
			ops := classifier.ListingOperations(cat.Operations(service))
			fmt.Printf("%s (%d listing operations)\n", service, len(ops))
			if servicesVerbose {
				for _, op := range ops {
					fmt.Printf("  %s\n", op)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
	servicesCmd.Flags().BoolVarP(&servicesVerbose, "verbose", "v", false, "Show each listing operation")
}
