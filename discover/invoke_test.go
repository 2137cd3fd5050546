package discover

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louhi-io/louhi/types"
)

// fakeClient implements ServiceClient with a canned response per operation
type fakeClient struct {
	service   string
	responses map[string]types.RawResponse
	errs      map[string]error
	delay     time.Duration
	calls     []string
}

func (f *fakeClient) ServiceName() string { return f.service }

func (f *fakeClient) Operations() []string {
	ops := make([]string, 0, len(f.responses)+len(f.errs))
	for op := range f.responses {
		ops = append(ops, op)
	}
	for op := range f.errs {
		ops = append(ops, op)
	}
	return ops
}

func (f *fakeClient) Invoke(ctx context.Context, operation string) (types.RawResponse, error) {
	f.calls = append(f.calls, operation)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err, ok := f.errs[operation]; ok {
		return nil, err
	}
	return f.responses[operation], nil
}

func TestInvokeSuccess(t *testing.T) {
	client := &fakeClient{
		service: "ec2",
		responses: map[string]types.RawResponse{
			"DescribeVolumes": {"Volumes": types.Sequence(types.Scalar("vol-1"))},
		},
	}

	raw, invokeErr := Invoker{}.Invoke(context.Background(), client, "DescribeVolumes")
	require.Nil(t, invokeErr)
	assert.Equal(t, 1, raw["Volumes"].Len())
}

func TestInvokeTimeoutReportsConnection(t *testing.T) {
	client := &fakeClient{
		service: "ec2",
		delay:   time.Second,
		responses: map[string]types.RawResponse{
			"DescribeVolumes": {},
		},
	}

	_, invokeErr := Invoker{Timeout: 10 * time.Millisecond}.Invoke(context.Background(), client, "DescribeVolumes")
	require.NotNil(t, invokeErr)
	assert.Equal(t, ErrKindConnection, invokeErr.Kind)
	assert.False(t, invokeErr.ExpectedSkip())
}

func TestInvokeWrapsPlainErrors(t *testing.T) {
	client := &fakeClient{
		service: "iam",
		errs:    map[string]error{"ListUsers": errors.New("boom")},
	}

	_, invokeErr := Invoker{}.Invoke(context.Background(), client, "ListUsers")
	require.NotNil(t, invokeErr)
	assert.Equal(t, "iam", invokeErr.Service)
	assert.Equal(t, "ListUsers", invokeErr.Operation)
	assert.Equal(t, ErrKindOther, invokeErr.Kind)
}

func TestInvokePassesThroughInvokeError(t *testing.T) {
	client := &fakeClient{
		service: "ssm",
		errs: map[string]error{
			"ListCommandInvocations": &InvokeError{
				Service:   "ssm",
				Operation: "ListCommandInvocations",
				Kind:      ErrKindValidation,
				Err:       errors.New("missing required parameter"),
			},
		},
	}

	_, invokeErr := Invoker{}.Invoke(context.Background(), client, "ListCommandInvocations")
	require.NotNil(t, invokeErr)
	assert.Equal(t, ErrKindValidation, invokeErr.Kind)
	assert.True(t, invokeErr.ExpectedSkip())
}
