package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed means the whole fallback chain was exhausted.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured means config enabled no usable provider.
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest means the request is malformed.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout means the chain hit its global deadline.
	ErrProviderTimeout = errors.New("provider timeout")
)

// ProviderError attributes a failure to the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
