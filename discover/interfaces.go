package discover

import (
	"context"

	"github.com/louhi-io/louhi/types"
)

// ServiceClient is one service namespace bound to one region. Its operation
// set comes from the provider's API model; Invoke calls an operation with no
// arguments and classifies any failure as an *InvokeError.
type ServiceClient interface {
	ServiceName() string
	Operations() []string
	Invoke(ctx context.Context, operation string) (types.RawResponse, error)
}

// ClientFactory builds region-bound service clients
type ClientFactory interface {
	Services() []string
	Client(ctx context.Context, service, region string) (ServiceClient, error)
}

// TagScanner queries the account-wide tag index for one region
type TagScanner interface {
	Scan(ctx context.Context, region string) ([]types.TaggedResource, error)
}
