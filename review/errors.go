package review

import "fmt"

// ServiceError wraps a failure of the underlying model/service call itself
// (connectivity, auth, quota, timeout). Surfaced to the caller as one
// generic failure; callers are not expected to retry.
type ServiceError struct {
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("review service call failed: %v", e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ServiceError) Unwrap() error { return e.Err }

// ResponseFormatError reports that the service responded, but not with the
// expected JSON shape. No partial result is recoverable from it.
type ResponseFormatError struct {
	Reason string
	Err    error
}

// Error implements the error interface for ResponseFormatError.
func (e *ResponseFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected review response format: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unexpected review response format: %s", e.Reason)
}

// Unwrap exposes the underlying cause, if any.
func (e *ResponseFormatError) Unwrap() error { return e.Err }
