// In file: internal/llm/errors.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed model call.
type ErrorKind string

const (
	// Transient covers network failures and 5xx replies.
	Transient ErrorKind = "RemoteTransient"
	// RateLimit is a 429 from the provider.
	RateLimit ErrorKind = "RemoteRateLimit"
	// Auth is a rejected or missing credential. It is never retried.
	Auth ErrorKind = "RemoteAuth"
	// Malformed is a reply that could not be read into the expected shape.
	Malformed ErrorKind = "RemoteMalformed"
	// Rejected is any other 4xx: the request itself is wrong.
	Rejected ErrorKind = "RemoteRejected"
)

// RemoteError is returned by every LLMClient.
type RemoteError struct {
	Kind       ErrorKind
	Provider   string
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// NewMalformedError reports a reply that did not have the expected shape.
func NewMalformedError(provider string, err error) *RemoteError {
	return &RemoteError{Kind: Malformed, Provider: provider, Err: err}
}

// classifyStatus maps an HTTP status from a provider to an error kind.
func classifyStatus(provider string, status int, err error) *RemoteError {
	kind := Transient
	switch {
	case status == http.StatusTooManyRequests:
		kind = RateLimit
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = Auth
	case status >= 400 && status < 500 && status != http.StatusRequestTimeout:
		kind = Rejected
	}
	return &RemoteError{Kind: kind, Provider: provider, StatusCode: status, Err: err}
}

// IsRetryable reports whether another attempt could succeed. Context
// cancellation and authentication failures are final.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var re *RemoteError
	if !errors.As(err, &re) {
		return true
	}
	switch re.Kind {
	case Auth, Rejected:
		return false
	}
	return true
}

// IsRateLimit reports whether err is a provider rate-limit signal.
func IsRateLimit(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Kind == RateLimit
}

// KindOf returns the kind of a RemoteError, or Transient for anything else.
func KindOf(err error) ErrorKind {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Kind
	}
	return Transient
}
