// Package ai maps each supported provider to its integration.
package ai

import (
	"context"
	"fmt"

	"github.com/bnema/studymate/internal/domain"
	"github.com/bnema/studymate/internal/ports"
)

type Registry struct {
	providers map[domain.Provider]ports.AIProvider
}

var _ ports.AIProviderRegistry = (*Registry)(nil)

// NewRegistry wires the OpenAI integration and placeholder variants for the
// providers that have none yet.
func NewRegistry(openAI ports.AIProvider) *Registry {
	return &Registry{
		providers: map[domain.Provider]ports.AIProvider{
			domain.ProviderOpenAI:    openAI,
			domain.ProviderAnthropic: Unsupported{Name: domain.ProviderAnthropic},
			domain.ProviderGoogle:    Unsupported{Name: domain.ProviderGoogle},
		},
	}
}

func (r *Registry) Provider(provider domain.Provider) (ports.AIProvider, error) {
	p, ok := r.providers[provider]
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedProvider, provider)
	}

	return p, nil
}

// Unsupported answers every call with *domain.UnsupportedProviderError.
type Unsupported struct {
	Name domain.Provider
}

var _ ports.AIProvider = Unsupported{}

func (u Unsupported) GenerateFlashcards(context.Context, string, string, domain.GenerationOptions) ([]domain.Flashcard, error) {
	return nil, u.err("flashcard generation")
}

func (u Unsupported) GenerateStudyGuide(context.Context, string, string, domain.GenerationOptions) (domain.StudyGuide, error) {
	return domain.StudyGuide{}, u.err("study guide generation")
}

func (u Unsupported) GenerateTest(context.Context, string, string, domain.GenerationOptions) (domain.Test, error) {
	return domain.Test{}, u.err("test generation")
}

func (u Unsupported) ChatCompletion(context.Context, string, []domain.ChatMessage, domain.ChatOptions) (domain.ChatCompletion, error) {
	return domain.ChatCompletion{}, u.err("chat completion")
}

func (u Unsupported) VerifyKey(context.Context, string) error {
	return u.err("key verification")
}

func (u Unsupported) err(op string) error {
	return &domain.UnsupportedProviderError{Provider: u.Name, Operation: op}
}
