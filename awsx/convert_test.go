package awsx

import (
	"math"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMetadata struct{ RequestID string }

type fakeInstance struct {
	InstanceId *string
	State      *string
	LaunchTime *time.Time
	Tags       map[string]string
	internal   int
}

type fakeOutput struct {
	Instances      []fakeInstance
	NextToken      *string
	MaxResults     *int32
	Truncated      bool
	Blob           []byte
	ResultMetadata fakeMetadata
	hidden         string
}

func TestStructToRaw(t *testing.T) {
	launched := time.Date(2025, 1, 15, 8, 30, 0, 0, time.FixedZone("PST", -8*3600))
	out := &fakeOutput{
		Instances: []fakeInstance{
			{
				InstanceId: aws.String("i-abc"),
				State:      aws.String("running"),
				LaunchTime: &launched,
				Tags:       map[string]string{"env": "prod"},
			},
		},
		NextToken:  aws.String("tok"),
		MaxResults: aws.Int32(50),
		Truncated:  true,
		Blob:       []byte{0xde, 0xad},
	}

	raw := structToRaw(out)

	assert.NotContains(t, raw, "ResultMetadata")
	assert.NotContains(t, raw, "hidden")

	assert.True(t, raw["Instances"].IsSequence())
	require.Equal(t, 1, raw["Instances"].Len())

	instance := raw["Instances"].Items()[0].Fields()
	assert.Equal(t, "i-abc", instance["InstanceId"].ScalarValue())
	assert.Equal(t, "running", instance["State"].ScalarValue())
	assert.Equal(t, "2025-01-15T16:30:00Z", instance["LaunchTime"].ScalarValue())
	assert.Equal(t, "prod", instance["Tags"].Fields()["env"].ScalarValue())
	assert.NotContains(t, instance, "internal")

	assert.Equal(t, "tok", raw["NextToken"].ScalarValue())
	assert.Equal(t, int64(50), raw["MaxResults"].ScalarValue())
	assert.Equal(t, true, raw["Truncated"].ScalarValue())
	assert.Equal(t, "dead", raw["Blob"].ScalarValue())
}

func TestStructToRawDropsNilPointers(t *testing.T) {
	raw := structToRaw(&fakeOutput{})

	assert.NotContains(t, raw, "NextToken")
	assert.NotContains(t, raw, "MaxResults")
	// Nil slice still converts to an empty sequence
	assert.True(t, raw["Instances"].IsSequence())
	assert.Equal(t, 0, raw["Instances"].Len())
}

func TestStructToRawUnsignedRange(t *testing.T) {
	out := &struct {
		Small uint32
		Big   uint64
	}{
		Small: 42,
		Big:   math.MaxUint64,
	}

	raw := structToRaw(out)
	assert.Equal(t, int64(42), raw["Small"].ScalarValue())
	// Values past the signed range stay exact as strings instead of wrapping
	assert.Equal(t, "18446744073709551615", raw["Big"].ScalarValue())
}

func TestStructToRawNonStruct(t *testing.T) {
	assert.Empty(t, structToRaw(nil))
	assert.Empty(t, structToRaw("not a struct"))
	var nilOut *fakeOutput
	assert.Empty(t, structToRaw(nilOut))
}
