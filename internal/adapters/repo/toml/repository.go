package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bnema/studymate/internal/domain"
	"github.com/bnema/studymate/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	CredentialsPathKey    = "credentials.path"
	credentialsFileMode   = 0o600
	credentialsDirMode    = 0o700
	credentialsConfigDir  = ".studymate"
	credentialsConfigFile = "credentials.toml"
	tempFilePattern       = ".credentials-*.toml.tmp"
)

type Repository struct {
	credentialsPath string
	mu              *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CredentialRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	credentialsPath := cfg.GetString(CredentialsPathKey)
	if credentialsPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		credentialsPath = filepath.Join(homeDir, credentialsConfigDir, credentialsConfigFile)
	}

	credentialsPath, err := normalizeCredentialsPath(credentialsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{credentialsPath: credentialsPath, mu: lockForPath(credentialsPath)}, nil
}

func (r *Repository) Path() string {
	return r.credentialsPath
}

// Save inserts or replaces a credential by ID. A second credential for the
// same owner and provider is rejected with domain.ErrCredentialExists.
func (r *Repository) Save(ctx context.Context, credential domain.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := credential.Validate(); err != nil {
		return fmt.Errorf("validate credential: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(credential)
	index := -1
	for i, entry := range file.Credentials {
		if entry.ID == encoded.ID {
			index = i
			continue
		}
		if entry.Owner == encoded.Owner && entry.Provider == encoded.Provider {
			return fmt.Errorf("%w: %s for owner %q", domain.ErrCredentialExists, credential.Provider, credential.Owner)
		}
	}

	if index >= 0 {
		file.Credentials[index] = encoded
	} else {
		file.Credentials = append(file.Credentials, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.CredentialID) (domain.Credential, error) {
	return r.findOne(ctx, func(entry credentialSchema) bool {
		return entry.ID == string(id)
	})
}

func (r *Repository) FindByOwnerProvider(ctx context.Context, owner string, provider domain.Provider) (domain.Credential, error) {
	return r.findOne(ctx, func(entry credentialSchema) bool {
		return entry.Owner == owner && entry.Provider == string(provider)
	})
}

// ListByOwner returns the owner's credentials, newest first.
func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	credentials := make([]domain.Credential, 0, len(file.Credentials))
	for _, entry := range file.Credentials {
		if entry.Owner != owner {
			continue
		}
		credential, err := fromSchema(entry)
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, credential)
	}

	sort.SliceStable(credentials, func(i, j int) bool {
		return credentials[i].CreatedAt.After(credentials[j].CreatedAt)
	})

	return credentials, nil
}

func (r *Repository) Delete(ctx context.Context, id domain.CredentialID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Credentials[:0]
	found := false
	for _, entry := range file.Credentials {
		if entry.ID == string(id) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrCredentialNotFound
	}
	file.Credentials = kept

	return r.writeSchema(file)
}

func (r *Repository) findOne(ctx context.Context, match func(credentialSchema) bool) (domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Credential{}, err
	}

	for _, entry := range file.Credentials {
		if match(entry) {
			return fromSchema(entry)
		}
	}

	return domain.Credential{}, domain.ErrCredentialNotFound
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.credentialsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read credentials file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode credentials file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeCredentialsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve credentials path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.credentialsPath), credentialsDirMode); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode credentials file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.credentialsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp credentials file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp credentials file: %w", err)
	}

	if err := tempFile.Chmod(credentialsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp credentials file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp credentials file: %w", err)
	}

	if err := os.Rename(tempName, r.credentialsPath); err != nil {
		return fmt.Errorf("replace credentials file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(credential domain.Credential) credentialSchema {
	return credentialSchema{
		ID:           string(credential.ID),
		Owner:        credential.Owner,
		Provider:     string(credential.Provider),
		Name:         credential.Name,
		EncryptedKey: credential.EncryptedKey,
		CreatedAt:    formatTime(credential.CreatedAt),
		UpdatedAt:    formatTime(credential.UpdatedAt),
		LastUsed:     formatTime(credential.LastUsed),
	}
}

func fromSchema(entry credentialSchema) (domain.Credential, error) {
	createdAt, err := parseTime("created_at", entry.CreatedAt)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("credential %q: %w", entry.ID, err)
	}
	updatedAt, err := parseTime("updated_at", entry.UpdatedAt)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("credential %q: %w", entry.ID, err)
	}
	lastUsed, err := parseTime("last_used", entry.LastUsed)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("credential %q: %w", entry.ID, err)
	}

	return domain.Credential{
		ID:           domain.CredentialID(entry.ID),
		Owner:        entry.Owner,
		Provider:     domain.Provider(entry.Provider),
		Name:         entry.Name,
		EncryptedKey: entry.EncryptedKey,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		LastUsed:     lastUsed,
	}, nil
}

// parseTime maps an empty field to the zero time. Anything else must be a
// valid timestamp.
func parseTime(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", field, raw, err)
	}

	return parsed.UTC(), nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
