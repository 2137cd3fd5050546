package awsx

import (
	"context"
	"errors"
	"net"

	"github.com/aws/smithy-go"

	"github.com/louhi-io/louhi/discover"
)

// Error codes mapped to the engine's closed error kinds. Anything outside
// these tables classifies as ErrKindOther.
var (
	validationCodes = []string{
		"ValidationException",
		"ValidationError",
		"MissingParameter",
		"MissingParameterException",
		"MissingRequiredParameter",
		"InvalidParameterValue",
		"InvalidParameterException",
		"InvalidParameterCombination",
		"MissingAction",
		"InvalidAction",
		"InvalidQueryParameter",
		"UnsupportedOperation",
		"InvalidRequestException",
	}

	throttlingCodes = []string{
		"Throttling",
		"ThrottlingException",
		"ThrottledException",
		"TooManyRequestsException",
		"RequestLimitExceeded",
		"RequestThrottled",
		"RequestThrottledException",
		"ProvisionedThroughputExceededException",
	}
)

// classifyError maps an SDK failure to an engine error kind
func classifyError(err error) discover.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return discover.ErrKindConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return discover.ErrKindConnection
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if containsCode(validationCodes, code) {
			return discover.ErrKindValidation
		}
		if containsCode(throttlingCodes, code) {
			return discover.ErrKindThrottling
		}
		return discover.ErrKindOther
	}

	return discover.ErrKindOther
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
