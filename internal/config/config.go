// Package config loads sm settings from ~/.studymate/config.toml and the
// environment, and resolves the master secret.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	sqliterepo "github.com/bnema/studymate/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/studymate/internal/adapters/repo/toml"
	"github.com/bnema/studymate/internal/adapters/vault"
	"github.com/bnema/studymate/internal/domain"
	"github.com/bnema/studymate/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".studymate"

	EncryptionKeyKey      = "encryption.key"
	OwnerKey              = "owner"
	CredentialsBackendKey = "credentials.backend"
	SecretsDirKey         = "secrets.dir"
	OpenAIBaseURLKey      = "openai.base_url"
	OpenAIModelKey        = "openai.model"
	LogLevelKey           = "log.level"

	// MasterSecretEntry is the secret store key holding the master secret
	// written by `sm vault init`.
	MasterSecretEntry = "studymate/encryption_key"

	BackendTOML   = "toml"
	BackendSQLite = "sqlite"

	defaultOwner         = "local"
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4"
	defaultLogLevel      = "warn"
)

var envBindings = map[string]string{
	EncryptionKeyKey:            "ENCRYPTION_KEY",
	OwnerKey:                    "SM_OWNER",
	CredentialsBackendKey:       "SM_CREDENTIALS_BACKEND",
	tomlrepo.CredentialsPathKey: "SM_CREDENTIALS_PATH",
	sqliterepo.DatabasePathKey:  "SM_CREDENTIALS_SQLITE_PATH",
	SecretsDirKey:               "SM_SECRETS_DIR",
	OpenAIBaseURLKey:            "SM_OPENAI_BASE_URL",
	OpenAIModelKey:              "SM_OPENAI_MODEL",
	LogLevelKey:                 "SM_LOG_LEVEL",
}

type Config struct {
	// EncryptionKey is empty when the master secret is expected in the
	// secret store instead.
	EncryptionKey      string
	Owner              string
	CredentialsBackend string
	CredentialsPath    string
	SQLitePath         string
	SecretsDir         string
	OpenAIBaseURL      string
	OpenAIModel        string
	LogLevel           slog.Level
}

// Load applies defaults and environment bindings to v, reads the optional
// config file and validates the result. v is left populated so adapters
// constructed from it see the same values.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)

	v.SetDefault(OwnerKey, defaultOwnerName())
	v.SetDefault(CredentialsBackendKey, BackendTOML)
	v.SetDefault(tomlrepo.CredentialsPathKey, filepath.Join(baseDir, "credentials.toml"))
	v.SetDefault(sqliterepo.DatabasePathKey, filepath.Join(baseDir, "studymate.db"))
	v.SetDefault(SecretsDirKey, filepath.Join(baseDir, "secrets"))
	v.SetDefault(OpenAIBaseURLKey, defaultOpenAIBaseURL)
	v.SetDefault(OpenAIModelKey, defaultOpenAIModel)
	v.SetDefault(LogLevelKey, defaultLogLevel)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		EncryptionKey:      v.GetString(EncryptionKeyKey),
		Owner:              strings.TrimSpace(v.GetString(OwnerKey)),
		CredentialsBackend: strings.ToLower(strings.TrimSpace(v.GetString(CredentialsBackendKey))),
		CredentialsPath:    v.GetString(tomlrepo.CredentialsPathKey),
		SQLitePath:         v.GetString(sqliterepo.DatabasePathKey),
		SecretsDir:         v.GetString(SecretsDirKey),
		OpenAIBaseURL:      v.GetString(OpenAIBaseURLKey),
		OpenAIModel:        v.GetString(OpenAIModelKey),
	}

	if cfg.Owner == "" {
		return Config{}, errors.New("owner is empty")
	}

	switch cfg.CredentialsBackend {
	case BackendTOML, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported credentials backend %q (want %s or %s)", cfg.CredentialsBackend, BackendTOML, BackendSQLite)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(LogLevelKey))); err != nil {
		return Config{}, fmt.Errorf("parse log level: %w", err)
	}

	return cfg, nil
}

// ResolveMasterSecret returns the configured encryption key, falling back to
// the secret store. A missing secret is a configuration error: nothing runs
// without one.
func (c Config) ResolveMasterSecret(ctx context.Context, store ports.SecretStore) (string, error) {
	if c.EncryptionKey != "" {
		return c.EncryptionKey, nil
	}

	if store == nil {
		return "", fmt.Errorf("%w: ENCRYPTION_KEY is not set", vault.ErrConfiguration)
	}

	secret, err := store.Get(ctx, MasterSecretEntry)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", fmt.Errorf("%w: ENCRYPTION_KEY is not set and no secret is stored; run `sm vault init`", vault.ErrConfiguration)
		}
		return "", fmt.Errorf("%w: read master secret: %w", vault.ErrConfiguration, err)
	}

	return secret, nil
}

func defaultOwnerName() string {
	if user := strings.TrimSpace(os.Getenv("USER")); user != "" {
		return user
	}

	return defaultOwner
}
