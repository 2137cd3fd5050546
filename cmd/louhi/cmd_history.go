package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/louhi-io/louhi/snapshot"
)

var historyStorePath string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored inventory snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := snapshot.Open(historyStorePath)
		if err != nil {
			return err
		}
		defer store.Close()

		keys := store.Keys()
		if len(keys) == 0 {
			fmt.Println("No snapshots stored")
			return nil
		}
		for _, key := range keys {
			snap, err := store.Get(key)
			if err != nil {
				return err
			}
			fmt.Printf("%s  regions=%d tagged=%d resources=%d\n",
				key,
				len(snap.Metadata.RegionsScanned),
				snap.TotalTagged(),
				snap.TotalDiscovered())
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <timestamp>",
	Short: "Print a stored snapshot as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := snapshot.Open(historyStorePath)
		if err != nil {
			return err
		}
		defer store.Close()

		snap, err := store.Get(args[0])
		if err != nil {
			return err
		}
		return snapshot.Encode(os.Stdout, snap)
	},
}

var historyLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the most recent snapshot as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := snapshot.Open(historyStorePath)
		if err != nil {
			return err
		}
		defer store.Close()

		snap, err := store.Latest()
		if err != nil {
			return err
		}
		if snap == nil {
			fmt.Println("No snapshots stored")
			return nil
		}
		return snapshot.Encode(os.Stdout, snap)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyLatestCmd)
	historyCmd.PersistentFlags().StringVar(&historyStorePath, "store", "./louhi.db", "Path to the snapshot store")
}
