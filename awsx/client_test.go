package awsx

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louhi-io/louhi/discover"
)

func testClient() *serviceClient {
	return &serviceClient{
		service:    "widgets",
		region:     "us-east-1",
		operations: []string{"ListWidgets", "DescribeWidgetFleet", "GetWidget"},
		calls: map[string]invokeFn{
			"ListWidgets": func(ctx context.Context) (any, error) {
				return &struct {
					Widgets []struct{ Id *string }
				}{
					Widgets: []struct{ Id *string }{{Id: aws.String("w-1")}},
				}, nil
			},
			"DescribeWidgetFleet": func(ctx context.Context) (any, error) {
				return nil, &smithy.GenericAPIError{Code: "ThrottlingException", Message: "later"}
			},
		},
	}
}

func TestClientInvokeSuccess(t *testing.T) {
	raw, err := testClient().Invoke(context.Background(), "ListWidgets")
	require.NoError(t, err)
	assert.Equal(t, 1, raw["Widgets"].Len())
}

func TestClientInvokeClassifiesSDKError(t *testing.T) {
	_, err := testClient().Invoke(context.Background(), "DescribeWidgetFleet")
	require.Error(t, err)

	var invokeErr *discover.InvokeError
	require.True(t, errors.As(err, &invokeErr))
	assert.Equal(t, discover.ErrKindThrottling, invokeErr.Kind)
	assert.Equal(t, "widgets", invokeErr.Service)
}

func TestClientInvokeUnregisteredOperation(t *testing.T) {
	// Operations present in the API model but without a zero-argument entry
	// behave like calls missing required input
	_, err := testClient().Invoke(context.Background(), "GetWidget")
	require.Error(t, err)

	var invokeErr *discover.InvokeError
	require.True(t, errors.As(err, &invokeErr))
	assert.Equal(t, discover.ErrKindValidation, invokeErr.Kind)
	assert.True(t, invokeErr.ExpectedSkip())
}
