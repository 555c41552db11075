package ports

import (
	"context"

	"github.com/bnema/studymate/internal/domain"
)

// AIProvider is one vendor integration. The plaintext apiKey is passed per
// call and must not be retained.
type AIProvider interface {
	GenerateFlashcards(ctx context.Context, apiKey string, content string, opts domain.GenerationOptions) ([]domain.Flashcard, error)
	GenerateStudyGuide(ctx context.Context, apiKey string, content string, opts domain.GenerationOptions) (domain.StudyGuide, error)
	GenerateTest(ctx context.Context, apiKey string, content string, opts domain.GenerationOptions) (domain.Test, error)
	ChatCompletion(ctx context.Context, apiKey string, messages []domain.ChatMessage, opts domain.ChatOptions) (domain.ChatCompletion, error)
	VerifyKey(ctx context.Context, apiKey string) error
}

type AIProviderRegistry interface {
	Provider(provider domain.Provider) (AIProvider, error)
}
