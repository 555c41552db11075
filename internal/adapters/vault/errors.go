package vault

import "errors"

var (
	// ErrConfiguration reports a missing or too short master secret.
	ErrConfiguration = errors.New("vault: invalid configuration")
	// ErrDecryption reports a failed authentication check. It does not say
	// whether the secret was wrong or the envelope was altered.
	ErrDecryption = errors.New("vault: message authentication failed")
	// ErrFormat reports an envelope that is not base64 or is shorter than the
	// fixed header.
	ErrFormat = errors.New("vault: malformed envelope")
)
