package ports

import (
	"context"

	"github.com/bnema/studymate/internal/domain"
)

// CredentialRepository persists API key records. Implementations enforce one
// record per (owner, provider) and report violations as
// domain.ErrCredentialExists.
type CredentialRepository interface {
	GetByID(ctx context.Context, id domain.CredentialID) (domain.Credential, error)
	FindByOwnerProvider(ctx context.Context, owner string, provider domain.Provider) (domain.Credential, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.Credential, error)
	Save(ctx context.Context, credential domain.Credential) error
	Delete(ctx context.Context, id domain.CredentialID) error
}
