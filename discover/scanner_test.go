package discover

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/louhi-io/louhi/types"
)

func TestScanAccumulatesFindings(t *testing.T) {
	client := &fakeClient{
		service: "ec2",
		responses: map[string]types.RawResponse{
			"DescribeVolumes": {
				"Volumes":   types.Sequence(types.Scalar("vol-1"), types.Scalar("vol-2")),
				"NextToken": types.Scalar("tok"),
			},
			"DescribeInstances": {
				"Reservations": types.Sequence(),
			},
		},
	}
	scanner := NewServiceScanner(NewClassifier(nil), Invoker{}, zerolog.Nop())

	result := scanner.Scan(context.Background(), client, "us-east-1")

	assert.Len(t, result, 1)
	assert.Contains(t, result, "DescribeVolumes")
	assert.Equal(t, 2, result["DescribeVolumes"].Count())
}

func TestScanSkipsNonListingOperations(t *testing.T) {
	client := &fakeClient{
		service: "ec2",
		responses: map[string]types.RawResponse{
			"CreateVolume":    {"VolumeIds": types.Sequence(types.Scalar("vol-1"))},
			"DescribeVolumes": {"Volumes": types.Sequence(types.Scalar("vol-1"))},
		},
	}
	scanner := NewServiceScanner(NewClassifier(nil), Invoker{}, zerolog.Nop())

	result := scanner.Scan(context.Background(), client, "us-east-1")

	assert.NotContains(t, result, "CreateVolume")
	assert.Contains(t, result, "DescribeVolumes")
	assert.NotContains(t, client.calls, "CreateVolume")
}

func TestScanExpectedSkipsAreSilent(t *testing.T) {
	client := &fakeClient{
		service: "ssm",
		errs: map[string]error{
			"ListCommandInvocations": &InvokeError{
				Service: "ssm", Operation: "ListCommandInvocations",
				Kind: ErrKindValidation, Err: errors.New("missing parameter"),
			},
			"ListAssociations": &InvokeError{
				Service: "ssm", Operation: "ListAssociations",
				Kind: ErrKindNotPageable, Err: errors.New("cannot page"),
			},
		},
	}

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	scanner := NewServiceScanner(NewClassifier(nil), Invoker{}, logger)

	result := scanner.Scan(context.Background(), client, "us-east-1")

	assert.Empty(t, result)
	assert.Empty(t, buf.String(), "expected skips must not produce diagnostics")
}

func TestScanReportsUnexpectedFailures(t *testing.T) {
	client := &fakeClient{
		service: "ec2",
		errs: map[string]error{
			"DescribeVolumes": &InvokeError{
				Service: "ec2", Operation: "DescribeVolumes",
				Kind: ErrKindThrottling, Err: errors.New("rate exceeded"),
			},
		},
	}

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	scanner := NewServiceScanner(NewClassifier(nil), Invoker{}, logger)

	result := scanner.Scan(context.Background(), client, "us-east-1")

	assert.Empty(t, result)
	assert.Contains(t, buf.String(), "throttling")
	assert.Contains(t, buf.String(), "DescribeVolumes")
}
