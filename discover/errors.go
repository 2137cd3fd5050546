package discover

import "fmt"

// ErrorKind is the closed classification of invocation failures, produced at
// the client boundary. Only Validation and NotPageable count as expected
// skips; every other kind is reported and treated as zero resources found.
type ErrorKind int

const (
	// ErrKindValidation means the operation requires parameters the invoker
	// does not supply, or rejected the call with client-side validation
	ErrKindValidation ErrorKind = iota
	// ErrKindNotPageable means the operation rejects pagination-less calls
	ErrKindNotPageable
	// ErrKindThrottling means the service rate-limited the call
	ErrKindThrottling
	// ErrKindConnection means a transport failure or per-call timeout
	ErrKindConnection
	// ErrKindOther covers everything the closed table does not name
	ErrKindOther
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindValidation:
		return "validation"
	case ErrKindNotPageable:
		return "not_pageable"
	case ErrKindThrottling:
		return "throttling"
	case ErrKindConnection:
		return "connection"
	default:
		return "other"
	}
}

// InvokeError wraps one invocation failure with its classification
type InvokeError struct {
	Service   string
	Operation string
	Kind      ErrorKind
	Err       error
}

func (e *InvokeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s.%s: %s", e.Service, e.Operation, e.Kind)
	}
	return fmt.Sprintf("%s.%s: %s: %v", e.Service, e.Operation, e.Kind, e.Err)
}

func (e *InvokeError) Unwrap() error { return e.Err }

// ExpectedSkip reports whether the failure is silently excluded from results
func (e *InvokeError) ExpectedSkip() bool {
	return e.Kind == ErrKindValidation || e.Kind == ErrKindNotPageable
}
