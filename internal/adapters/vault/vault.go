// Package vault encrypts third-party API keys at rest.
//
// Each Encrypt call draws a fresh salt and nonce, derives an AES-256 key from
// the master secret with PBKDF2-SHA256 and seals the plaintext with AES-GCM.
// The result is a base64 envelope of salt || nonce || tag || ciphertext.
// Rotating the master secret invalidates every envelope written before it.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/bnema/studymate/internal/ports"
)

// MinSecretLength is the minimum master secret length in characters.
const MinSecretLength = 32

// Vault is immutable after New and safe for concurrent use.
type Vault struct {
	secret     []byte
	iterations int
	random     io.Reader
}

var _ ports.Vault = (*Vault)(nil)

func New(masterSecret string) (*Vault, error) {
	if masterSecret == "" {
		return nil, fmt.Errorf("%w: master secret is not set", ErrConfiguration)
	}
	if n := utf8.RuneCountInString(masterSecret); n < MinSecretLength {
		return nil, fmt.Errorf("%w: master secret must be at least %d characters, got %d", ErrConfiguration, MinSecretLength, n)
	}

	return &Vault{
		secret:     []byte(masterSecret),
		iterations: kdfIterations,
		random:     rand.Reader,
	}, nil
}

func (v *Vault) Encrypt(plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(v.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(v.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	aead, err := v.newAEAD(salt)
	if err != nil {
		return "", err
	}

	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	split := len(sealed) - tagSize

	data := pack(envelope{
		salt:       salt,
		nonce:      nonce,
		tag:        sealed[split:],
		ciphertext: sealed[:split],
	})

	return base64.StdEncoding.EncodeToString(data), nil
}

func (v *Vault) Decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64", ErrFormat)
	}

	env, err := unpack(data)
	if err != nil {
		return "", err
	}

	aead, err := v.newAEAD(env.salt)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(env.ciphertext)+tagSize)
	sealed = append(sealed, env.ciphertext...)
	sealed = append(sealed, env.tag...)

	plaintext, err := aead.Open(nil, env.nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryption
	}

	return string(plaintext), nil
}

func (v *Vault) newAEAD(salt []byte) (cipher.AEAD, error) {
	key := deriveKey(v.secret, salt, v.iterations)
	defer zero(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create block cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return aead, nil
}
