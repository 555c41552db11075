package vault

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	kdfIterations = 100_000
	keySize       = 32
)

func deriveKey(secret []byte, salt []byte, iterations int) []byte {
	return pbkdf2.Key(secret, salt, iterations, keySize, sha256.New)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
