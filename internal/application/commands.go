package application

import "github.com/bnema/studymate/internal/domain"

type AddKeyCommand struct {
	Owner    string
	Provider domain.Provider
	Name     string
	APIKey   string
}

// UpdateKeyCommand changes the fields that are non-nil.
type UpdateKeyCommand struct {
	Owner  string
	ID     domain.CredentialID
	Name   *string
	APIKey *string
}

type GenerateCommand struct {
	Owner    string
	Provider domain.Provider
	Content  string
	Options  domain.GenerationOptions
}

type ChatCommand struct {
	Owner    string
	Provider domain.Provider
	Messages []domain.ChatMessage
	Options  domain.ChatOptions
}
