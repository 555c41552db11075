package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type CredentialID string

const maxCredentialNameLength = 100

// Credential is a stored third-party API key. EncryptedKey holds the vault
// envelope; the plaintext key is never part of the record.
type Credential struct {
	ID           CredentialID
	Owner        string
	Provider     Provider
	Name         string
	EncryptedKey string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastUsed     time.Time
}

func (c Credential) Validate() error {
	if strings.TrimSpace(string(c.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(c.Owner) == "" {
		return fmt.Errorf("owner is required")
	}
	if !c.Provider.Valid() {
		return fmt.Errorf("unsupported provider %q", c.Provider)
	}
	if err := ValidateCredentialName(c.Name); err != nil {
		return err
	}
	if c.EncryptedKey == "" {
		return fmt.Errorf("encrypted key is required")
	}

	return nil
}

func ValidateCredentialName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(trimmed) > maxCredentialNameLength {
		return fmt.Errorf("name must be at most %d characters", maxCredentialNameLength)
	}

	return nil
}

// MaskAPIKey hides all but the last four characters of a key. Keys of eight
// characters or fewer are hidden entirely.
func MaskAPIKey(apiKey string) string {
	runes := []rune(apiKey)
	if len(runes) <= 8 {
		return strings.Repeat("*", len(runes))
	}

	const visible = 4
	return strings.Repeat("*", len(runes)-visible) + string(runes[len(runes)-visible:])
}
