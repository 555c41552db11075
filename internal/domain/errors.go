package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCredentialNotFound  = errors.New("api key not found")
	ErrCredentialExists    = errors.New("api key already exists")
	ErrInvalidAPIKey       = errors.New("invalid api key")
	ErrSecretNotFound      = errors.New("secret not found")
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// UnsupportedProviderError is returned by provider variants that have no
// integration yet.
type UnsupportedProviderError struct {
	Provider  Provider
	Operation string
}

func (e *UnsupportedProviderError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("%s integration not implemented yet", e.Provider.Label())
	}
	return fmt.Sprintf("%s integration not implemented yet: %s", e.Provider.Label(), e.Operation)
}

func (e *UnsupportedProviderError) Is(target error) bool {
	return target == ErrUnsupportedProvider
}
