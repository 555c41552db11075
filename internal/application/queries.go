package application

import (
	"time"

	"github.com/bnema/studymate/internal/domain"
)

// KeySummary is the listing view of a credential. It never carries the
// envelope or the plaintext key.
type KeySummary struct {
	ID        domain.CredentialID `json:"id"`
	Provider  domain.Provider     `json:"provider"`
	Name      string              `json:"name"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
	LastUsed  *time.Time          `json:"lastUsed,omitempty"`
}

type KeyPreview struct {
	ID        domain.CredentialID `json:"id"`
	Provider  domain.Provider     `json:"provider"`
	Name      string              `json:"name"`
	MaskedKey string              `json:"maskedKey"`
}

type KeyTestResult struct {
	ID       domain.CredentialID `json:"id"`
	Provider domain.Provider     `json:"provider"`
	Valid    bool                `json:"valid"`
	// FormatOnly is set when the provider has no live check and only the
	// key shape was verified.
	FormatOnly bool   `json:"formatOnly,omitempty"`
	Message    string `json:"message"`
}

func summarize(credential domain.Credential) KeySummary {
	summary := KeySummary{
		ID:        credential.ID,
		Provider:  credential.Provider,
		Name:      credential.Name,
		CreatedAt: credential.CreatedAt,
		UpdatedAt: credential.UpdatedAt,
	}
	if !credential.LastUsed.IsZero() {
		lastUsed := credential.LastUsed
		summary.LastUsed = &lastUsed
	}

	return summary
}
