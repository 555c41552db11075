package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/studymate/internal/domain"
	"github.com/bnema/studymate/internal/ports"
)

type keyResolver interface {
	ResolveKey(ctx context.Context, owner string, provider domain.Provider) (string, error)
}

// ContentService turns study material into flashcards, guides and tests, and
// relays chat conversations, using the owner's stored key for the provider.
type ContentService struct {
	keys      keyResolver
	providers ports.AIProviderRegistry
	logger    *slog.Logger
}

func NewContentService(keys *CredentialService, providers ports.AIProviderRegistry, logger *slog.Logger) *ContentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ContentService{keys: keys, providers: providers, logger: logger}
}

func (s *ContentService) GenerateFlashcards(ctx context.Context, cmd GenerateCommand) ([]domain.Flashcard, error) {
	provider, apiKey, err := s.prepare(ctx, cmd.Owner, cmd.Provider, cmd.Content)
	if err != nil {
		return nil, err
	}

	flashcards, err := provider.GenerateFlashcards(ctx, apiKey, cmd.Content, cmd.Options.WithDefaults())
	if err != nil {
		return nil, s.providerError(ctx, cmd.Provider, "generate flashcards", err)
	}

	return flashcards, nil
}

func (s *ContentService) GenerateStudyGuide(ctx context.Context, cmd GenerateCommand) (domain.StudyGuide, error) {
	provider, apiKey, err := s.prepare(ctx, cmd.Owner, cmd.Provider, cmd.Content)
	if err != nil {
		return domain.StudyGuide{}, err
	}

	guide, err := provider.GenerateStudyGuide(ctx, apiKey, cmd.Content, cmd.Options.WithDefaults())
	if err != nil {
		return domain.StudyGuide{}, s.providerError(ctx, cmd.Provider, "generate study guide", err)
	}

	return guide, nil
}

func (s *ContentService) GenerateTest(ctx context.Context, cmd GenerateCommand) (domain.Test, error) {
	provider, apiKey, err := s.prepare(ctx, cmd.Owner, cmd.Provider, cmd.Content)
	if err != nil {
		return domain.Test{}, err
	}

	test, err := provider.GenerateTest(ctx, apiKey, cmd.Content, cmd.Options.WithDefaults())
	if err != nil {
		return domain.Test{}, s.providerError(ctx, cmd.Provider, "generate test", err)
	}

	return test, nil
}

func (s *ContentService) Chat(ctx context.Context, cmd ChatCommand) (domain.ChatCompletion, error) {
	if len(cmd.Messages) == 0 {
		return domain.ChatCompletion{}, errors.New("at least one message is required")
	}

	provider, apiKey, err := s.resolve(ctx, cmd.Owner, cmd.Provider)
	if err != nil {
		return domain.ChatCompletion{}, err
	}

	completion, err := provider.ChatCompletion(ctx, apiKey, cmd.Messages, cmd.Options.WithDefaults())
	if err != nil {
		return domain.ChatCompletion{}, s.providerError(ctx, cmd.Provider, "chat completion", err)
	}

	return completion, nil
}

func (s *ContentService) prepare(ctx context.Context, owner string, provider domain.Provider, content string) (ports.AIProvider, string, error) {
	if strings.TrimSpace(content) == "" {
		return nil, "", errors.New("content is empty")
	}

	return s.resolve(ctx, owner, provider)
}

// resolve looks up the provider variant first so unknown providers fail
// before any key is decrypted.
func (s *ContentService) resolve(ctx context.Context, owner string, provider domain.Provider) (ports.AIProvider, string, error) {
	variant, err := s.providers.Provider(provider)
	if err != nil {
		return nil, "", fmt.Errorf("resolve provider: %w", err)
	}

	apiKey, err := s.keys.ResolveKey(ctx, owner, provider)
	if err != nil {
		return nil, "", err
	}

	return variant, apiKey, nil
}

func (s *ContentService) providerError(ctx context.Context, provider domain.Provider, op string, err error) error {
	if !errors.Is(err, domain.ErrUnsupportedProvider) {
		s.logger.ErrorContext(ctx, op, "provider", provider, "error", err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
