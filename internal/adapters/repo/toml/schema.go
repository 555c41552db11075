package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int                `toml:"version"`
	Credentials []credentialSchema `toml:"credentials"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported credentials schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type credentialSchema struct {
	ID           string `toml:"id"`
	Owner        string `toml:"owner"`
	Provider     string `toml:"provider"`
	Name         string `toml:"name"`
	EncryptedKey string `toml:"encrypted_key"`
	CreatedAt    string `toml:"created_at"`
	UpdatedAt    string `toml:"updated_at,omitempty"`
	LastUsed     string `toml:"last_used,omitempty"`
}
