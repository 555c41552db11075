package application

import "errors"

// ErrKeyProcessing marks a vault failure while handling a stored key. Its
// message is deliberately generic so encryption details never reach users.
var ErrKeyProcessing = errors.New("failed to process API key")

// KeyProcessingError carries the vault cause behind ErrKeyProcessing. Error
// prints only the generic message; errors.Is and errors.As still reach Err.
type KeyProcessingError struct {
	Err error
}

func (e *KeyProcessingError) Error() string {
	return ErrKeyProcessing.Error()
}

func (e *KeyProcessingError) Unwrap() []error {
	return []error{ErrKeyProcessing, e.Err}
}

func keyProcessingError(err error) error {
	return &KeyProcessingError{Err: err}
}
