package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/studymate/internal/domain"
	"github.com/bnema/studymate/internal/ports"
	"github.com/google/uuid"
)

// CredentialService manages encrypted third-party API keys. Plaintext keys
// exist only for the duration of a single call.
type CredentialService struct {
	repo      ports.CredentialRepository
	vault     ports.Vault
	providers ports.AIProviderRegistry
	clock     ports.Clock
	logger    *slog.Logger
	newID     func() string
}

func NewCredentialService(repo ports.CredentialRepository, vault ports.Vault, providers ports.AIProviderRegistry, clock ports.Clock, logger *slog.Logger) *CredentialService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &CredentialService{
		repo:      repo,
		vault:     vault,
		providers: providers,
		clock:     clock,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

func (s *CredentialService) AddKey(ctx context.Context, cmd AddKeyCommand) (KeySummary, error) {
	if strings.TrimSpace(cmd.Owner) == "" {
		return KeySummary{}, errors.New("owner is required")
	}
	if !cmd.Provider.Valid() {
		return KeySummary{}, fmt.Errorf("unsupported provider %q", cmd.Provider)
	}
	if err := domain.ValidateCredentialName(cmd.Name); err != nil {
		return KeySummary{}, err
	}
	apiKey := strings.TrimSpace(cmd.APIKey)
	if err := domain.ValidateAPIKey(cmd.Provider, apiKey); err != nil {
		return KeySummary{}, err
	}

	_, err := s.repo.FindByOwnerProvider(ctx, cmd.Owner, cmd.Provider)
	switch {
	case err == nil:
		return KeySummary{}, fmt.Errorf("%w: a %s key is already configured, update it instead", domain.ErrCredentialExists, cmd.Provider.Label())
	case !errors.Is(err, domain.ErrCredentialNotFound):
		return KeySummary{}, fmt.Errorf("find existing key: %w", err)
	}

	encrypted, err := s.vault.Encrypt(apiKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "encrypt api key", "provider", cmd.Provider, "owner", cmd.Owner, "error", err)
		return KeySummary{}, keyProcessingError(err)
	}

	now := s.clock.Now()
	credential := domain.Credential{
		ID:           domain.CredentialID(s.newID()),
		Owner:        cmd.Owner,
		Provider:     cmd.Provider,
		Name:         strings.TrimSpace(cmd.Name),
		EncryptedKey: encrypted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Save(ctx, credential); err != nil {
		return KeySummary{}, fmt.Errorf("save key: %w", err)
	}

	s.logger.InfoContext(ctx, "api key added", "provider", credential.Provider, "owner", credential.Owner, "id", credential.ID)

	return summarize(credential), nil
}

func (s *CredentialService) UpdateKey(ctx context.Context, cmd UpdateKeyCommand) (KeySummary, error) {
	credential, err := s.getOwned(ctx, cmd.Owner, cmd.ID)
	if err != nil {
		return KeySummary{}, err
	}

	if cmd.Name != nil {
		if err := domain.ValidateCredentialName(*cmd.Name); err != nil {
			return KeySummary{}, err
		}
		credential.Name = strings.TrimSpace(*cmd.Name)
	}

	if cmd.APIKey != nil {
		apiKey := strings.TrimSpace(*cmd.APIKey)
		if err := domain.ValidateAPIKey(credential.Provider, apiKey); err != nil {
			return KeySummary{}, err
		}

		encrypted, err := s.vault.Encrypt(apiKey)
		if err != nil {
			s.logger.ErrorContext(ctx, "encrypt api key", "provider", credential.Provider, "id", credential.ID, "error", err)
			return KeySummary{}, keyProcessingError(err)
		}
		credential.EncryptedKey = encrypted
	}

	credential.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, credential); err != nil {
		return KeySummary{}, fmt.Errorf("save key: %w", err)
	}

	s.logger.InfoContext(ctx, "api key updated", "provider", credential.Provider, "owner", credential.Owner, "id", credential.ID, "rotated", cmd.APIKey != nil)

	return summarize(credential), nil
}

func (s *CredentialService) RemoveKey(ctx context.Context, owner string, id domain.CredentialID) error {
	credential, err := s.getOwned(ctx, owner, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, credential.ID); err != nil {
		return fmt.Errorf("delete key: %w", err)
	}

	s.logger.InfoContext(ctx, "api key removed", "provider", credential.Provider, "owner", credential.Owner, "id", credential.ID)

	return nil
}

// ListKeys returns the owner's keys newest first.
func (s *CredentialService) ListKeys(ctx context.Context, owner string) ([]KeySummary, error) {
	credentials, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	summaries := make([]KeySummary, 0, len(credentials))
	for _, credential := range credentials {
		summaries = append(summaries, summarize(credential))
	}

	return summaries, nil
}

func (s *CredentialService) PreviewKey(ctx context.Context, owner string, id domain.CredentialID) (KeyPreview, error) {
	credential, err := s.getOwned(ctx, owner, id)
	if err != nil {
		return KeyPreview{}, err
	}

	apiKey, err := s.decrypt(ctx, credential)
	if err != nil {
		return KeyPreview{}, err
	}

	return KeyPreview{
		ID:        credential.ID,
		Provider:  credential.Provider,
		Name:      credential.Name,
		MaskedKey: domain.MaskAPIKey(apiKey),
	}, nil
}

// TestKey checks a stored key against its provider. Providers without a live
// check fall back to validating the key format.
func (s *CredentialService) TestKey(ctx context.Context, owner string, id domain.CredentialID) (KeyTestResult, error) {
	credential, err := s.getOwned(ctx, owner, id)
	if err != nil {
		return KeyTestResult{}, err
	}

	apiKey, err := s.decrypt(ctx, credential)
	if err != nil {
		return KeyTestResult{}, err
	}

	result := KeyTestResult{ID: credential.ID, Provider: credential.Provider}

	if err := domain.ValidateAPIKey(credential.Provider, apiKey); err != nil {
		result.Message = err.Error()
		return result, nil
	}

	provider, err := s.providers.Provider(credential.Provider)
	if err != nil {
		return KeyTestResult{}, fmt.Errorf("resolve provider: %w", err)
	}

	verifyErr := provider.VerifyKey(ctx, apiKey)
	switch {
	case verifyErr == nil:
		result.Valid = true
		result.Message = "API key is valid"
	case errors.Is(verifyErr, domain.ErrUnsupportedProvider):
		result.Valid = true
		result.FormatOnly = true
		result.Message = "API key format is valid"
	case errors.Is(verifyErr, context.Canceled), errors.Is(verifyErr, context.DeadlineExceeded):
		return KeyTestResult{}, verifyErr
	default:
		s.logger.InfoContext(ctx, "api key test failed", "provider", credential.Provider, "id", credential.ID, "error", verifyErr)
		result.Message = fmt.Sprintf("API key test failed: %v", verifyErr)
		return result, nil
	}

	s.touch(ctx, credential)

	return result, nil
}

// ResolveKey returns the plaintext key for one provider call. The caller must
// not retain it.
func (s *CredentialService) ResolveKey(ctx context.Context, owner string, provider domain.Provider) (string, error) {
	credential, err := s.repo.FindByOwnerProvider(ctx, owner, provider)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return "", fmt.Errorf("%s API key not configured: %w", provider.Label(), domain.ErrCredentialNotFound)
		}
		return "", fmt.Errorf("find key: %w", err)
	}

	apiKey, err := s.decrypt(ctx, credential)
	if err != nil {
		return "", err
	}

	s.touch(ctx, credential)

	return apiKey, nil
}

func (s *CredentialService) getOwned(ctx context.Context, owner string, id domain.CredentialID) (domain.Credential, error) {
	credential, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return domain.Credential{}, domain.ErrCredentialNotFound
		}
		return domain.Credential{}, fmt.Errorf("get key by id: %w", err)
	}
	if credential.Owner != owner {
		return domain.Credential{}, domain.ErrCredentialNotFound
	}

	return credential, nil
}

func (s *CredentialService) decrypt(ctx context.Context, credential domain.Credential) (string, error) {
	apiKey, err := s.vault.Decrypt(credential.EncryptedKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "decrypt api key", "provider", credential.Provider, "id", credential.ID, "error", err)
		return "", keyProcessingError(err)
	}

	return apiKey, nil
}

// touch records the key as used. A failed write is logged and otherwise
// ignored.
func (s *CredentialService) touch(ctx context.Context, credential domain.Credential) {
	credential.LastUsed = s.clock.Now()
	if err := s.repo.Save(ctx, credential); err != nil {
		s.logger.WarnContext(ctx, "record api key use", "provider", credential.Provider, "id", credential.ID, "error", err)
	}
}
