package awsx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"

	"github.com/louhi-io/louhi/discover"
)

type fakeNetErr struct{}

func (fakeNetErr) Error() string   { return "connection refused" }
func (fakeNetErr) Timeout() bool   { return false }
func (fakeNetErr) Temporary() bool { return true }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want discover.ErrorKind
	}{
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: discover.ErrKindConnection,
		},
		{
			name: "wrapped deadline",
			err:  fmt.Errorf("call failed: %w", context.DeadlineExceeded),
			want: discover.ErrKindConnection,
		},
		{
			name: "network error",
			err:  fakeNetErr{},
			want: discover.ErrKindConnection,
		},
		{
			name: "validation code",
			err:  &smithy.GenericAPIError{Code: "ValidationException", Message: "missing field"},
			want: discover.ErrKindValidation,
		},
		{
			name: "missing parameter code",
			err:  &smithy.GenericAPIError{Code: "MissingRequiredParameter", Message: "need an id"},
			want: discover.ErrKindValidation,
		},
		{
			name: "throttling code",
			err:  &smithy.GenericAPIError{Code: "Throttling", Message: "slow down"},
			want: discover.ErrKindThrottling,
		},
		{
			name: "dynamo throughput code",
			err:  &smithy.GenericAPIError{Code: "ProvisionedThroughputExceededException", Message: "hot"},
			want: discover.ErrKindThrottling,
		},
		{
			name: "access denied is other",
			err:  &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "no"},
			want: discover.ErrKindOther,
		},
		{
			name: "plain error is other",
			err:  errors.New("something broke"),
			want: discover.ErrKindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err))
		})
	}
}
