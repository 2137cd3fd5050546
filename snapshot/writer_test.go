package snapshot

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louhi-io/louhi/types"
)

func sampleSnapshot() *types.InventorySnapshot {
	snap := types.NewSnapshot(
		time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		[]string{"us-east-1"},
		[]string{"ec2"},
	)
	snap.ResourcesByRegion["us-east-1"] = types.RegionResult{
		TaggedResources: []string{"arn:aws:ec2:us-east-1:123:volume/vol-1"},
		AllResources: map[string]types.ServiceScanResult{
			"ec2": {
				"DescribeVolumes": types.ResourceBag{
					"Volumes": types.Sequence(types.Scalar("vol-1")),
				},
			},
		},
	}
	return snap
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, "aws_resources_2025-03-14_09-26-53.json", DefaultFilename("2025-03-14_09-26-53"))
}

func TestWriteAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Write(path, sampleSnapshot()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded types.InventorySnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2025-03-14_09-26-53", decoded.Metadata.Timestamp)
	assert.Equal(t, 1, decoded.TotalTagged())
	assert.Equal(t, 1, decoded.TotalDiscovered())
}

func TestEncodeShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleSnapshot()))

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &top))
	assert.Contains(t, top, "metadata")
	assert.Contains(t, top, "resources_by_region")

	var regions map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(top["resources_by_region"], &regions))
	assert.Contains(t, regions["us-east-1"], "tagged_resources")
	assert.Contains(t, regions["us-east-1"], "all_resources")
}
