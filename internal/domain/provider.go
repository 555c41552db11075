package domain

import (
	"fmt"
	"strings"
)

type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
)

const minAPIKeyLength = 10

func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderAnthropic, ProviderGoogle}
}

func ParseProvider(raw string) (Provider, error) {
	provider := Provider(strings.ToLower(strings.TrimSpace(raw)))
	if !provider.Valid() {
		return "", fmt.Errorf("unsupported provider %q", raw)
	}

	return provider, nil
}

func (p Provider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogle:
		return true
	default:
		return false
	}
}

func (p Provider) Label() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Anthropic"
	case ProviderGoogle:
		return "Google AI"
	default:
		return string(p)
	}
}

// ValidateAPIKey checks the provider-specific shape of a plaintext key. It runs
// before the key is encrypted and again when a stored key is tested.
func ValidateAPIKey(provider Provider, apiKey string) error {
	if len(strings.TrimSpace(apiKey)) < minAPIKeyLength {
		return fmt.Errorf("%w: key must be at least %d characters", ErrInvalidAPIKey, minAPIKeyLength)
	}

	switch provider {
	case ProviderOpenAI:
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("%w: OpenAI API keys must start with \"sk-\"", ErrInvalidAPIKey)
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("%w: OpenAI API key is too short", ErrInvalidAPIKey)
		}
	case ProviderAnthropic:
		if !strings.HasPrefix(apiKey, "sk-ant-") {
			return fmt.Errorf("%w: Anthropic API keys must start with \"sk-ant-\"", ErrInvalidAPIKey)
		}
	case ProviderGoogle:
		if len(apiKey) < 20 {
			return fmt.Errorf("%w: Google AI API key is too short", ErrInvalidAPIKey)
		}
	default:
		return fmt.Errorf("%w: unsupported provider %q", ErrInvalidAPIKey, provider)
	}

	return nil
}
