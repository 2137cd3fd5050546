package awsx

import (
	"context"

	"github.com/louhi-io/louhi/discover"
	"github.com/louhi-io/louhi/types"
)

// invokeFn performs one zero-argument API call and returns the SDK output
// struct
type invokeFn func(ctx context.Context) (any, error)

// serviceClient is one service namespace bound to one region. Operations
// carries the full operation set from the API model; calls holds the subset
// that is zero-argument callable.
type serviceClient struct {
	service    string
	region     string
	operations []string
	calls      map[string]invokeFn
}

func (c *serviceClient) ServiceName() string { return c.service }

func (c *serviceClient) Operations() []string { return c.operations }

// Invoke calls the operation with no arguments. An operation without a
// zero-argument entry is the SDK's required-input case and classifies as a
// validation failure, which the engine skips silently.
func (c *serviceClient) Invoke(ctx context.Context, operation string) (types.RawResponse, error) {
	fn, ok := c.calls[operation]
	if !ok {
		return nil, &discover.InvokeError{
			Service:   c.service,
			Operation: operation,
			Kind:      discover.ErrKindValidation,
		}
	}

	out, err := fn(ctx)
	if err != nil {
		return nil, &discover.InvokeError{
			Service:   c.service,
			Operation: operation,
			Kind:      classifyError(err),
			Err:       err,
		}
	}
	return structToRaw(out), nil
}
