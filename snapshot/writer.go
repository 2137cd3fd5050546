// Package snapshot persists inventory snapshots: one-shot JSON files for the
// scan command, and a bbolt-backed history store for the watch daemon.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/louhi-io/louhi/types"
)

// DefaultFilename returns the output filename for a snapshot timestamp
func DefaultFilename(timestamp string) string {
	return fmt.Sprintf("aws_resources_%s.json", timestamp)
}

// Write serializes the snapshot to a file
func Write(path string, snap *types.InventorySnapshot) error {
	f, err := os.Create(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := Encode(f, snap); err != nil {
		return fmt.Errorf("failed to write snapshot to %s: %w", path, err)
	}
	return nil
}

// Encode writes the snapshot as indented JSON
func Encode(w io.Writer, snap *types.InventorySnapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
