package genai

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates the provider credential is absent from the
// environment. Gateway construction fails fast with this error; it is shown
// to the user as a blocking, non-retryable configuration problem.
var ErrMissingAPIKey = errors.New("missing API key")

// UpstreamError indicates the remote service was unreachable or returned a
// payload missing required fields. Retrying is a fresh manual user action,
// never automatic.
type UpstreamError struct {
	Provider string
	Op       Op
	Reason   string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Provider, e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Provider, e.Op, e.Reason)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// upstream builds an UpstreamError for the given provider and operation.
func upstream(provider string, op Op, reason string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Op: op, Reason: reason, Err: err}
}

// IsUpstream reports whether err is (or wraps) an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
