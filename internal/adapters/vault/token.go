package vault

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	defaultTokenBytes = 32
	apiKeyPrefix      = "sm_"
)

// GenerateToken returns length random bytes as lower-case hex. A non-positive
// length falls back to 32 bytes.
func GenerateToken(length int) (string, error) {
	if length <= 0 {
		length = defaultTokenBytes
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// GenerateAPIKey returns a StudyMate-issued key of the form sm_<64 hex>.
func GenerateAPIKey() (string, error) {
	token, err := GenerateToken(defaultTokenBytes)
	if err != nil {
		return "", err
	}

	return apiKeyPrefix + token, nil
}
