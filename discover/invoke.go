package discover

import (
	"context"
	"errors"
	"time"

	"github.com/louhi-io/louhi/types"
)

// DefaultCallTimeout bounds one outbound call so a hung endpoint cannot
// block its worker indefinitely
const DefaultCallTimeout = 30 * time.Second

// Invoker calls one operation with no arguments. Exactly one outbound call
// per invocation, no retries: first failure is final for a given operation
// in a given scan pass.
type Invoker struct {
	// Timeout applies per call; zero means DefaultCallTimeout
	Timeout time.Duration
}

// Invoke runs the operation under the per-call timeout. Failures always come
// back as *InvokeError; a timeout is classified as a connection failure so it
// lands in the reported bucket, never the silent one.
func (v Invoker) Invoke(ctx context.Context, client ServiceClient, operation string) (types.RawResponse, *InvokeError) {
	timeout := v.Timeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := client.Invoke(callCtx, operation)
	if err == nil {
		return raw, nil
	}

	var invokeErr *InvokeError
	if errors.As(err, &invokeErr) {
		if errors.Is(err, context.DeadlineExceeded) && callCtx.Err() != nil {
			invokeErr.Kind = ErrKindConnection
		}
		return nil, invokeErr
	}

	kind := ErrKindOther
	if errors.Is(err, context.DeadlineExceeded) {
		kind = ErrKindConnection
	}
	return nil, &InvokeError{
		Service:   client.ServiceName(),
		Operation: operation,
		Kind:      kind,
		Err:       err,
	}
}
