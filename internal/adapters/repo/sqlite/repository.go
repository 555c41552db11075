// Package sqlite stores credentials in a SQLite database, one row per
// owner and provider.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/studymate/internal/domain"
	"github.com/bnema/studymate/internal/ports"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/spf13/viper"
)

const (
	DatabasePathKey  = "credentials.sqlite_path"
	defaultConfigDir = ".studymate"
	defaultDatabase  = "studymate.db"
	databaseDirMode  = 0o700

	// Fixed-width so that ORDER BY created_at sorts chronologically.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

//go:embed schema.sqlite.sql
var schemaSQL string

type Repository struct {
	db   *sql.DB
	path string
}

var _ ports.CredentialRepository = (*Repository)(nil)

// NewRepository opens the database at credentials.sqlite_path and applies
// the schema. Callers own the returned repository and must Close it.
func NewRepository(ctx context.Context, cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(DatabasePathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, defaultConfigDir, defaultDatabase)
	}

	if err := os.MkdirAll(filepath.Dir(path), databaseDirMode); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection serializes writers and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Repository{db: db, path: path}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Save(ctx context.Context, credential domain.Credential) error {
	if err := credential.Validate(); err != nil {
		return fmt.Errorf("validate credential: %w", err)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO api_keys (id, user_id, provider, name, encrypted_key, created_at, updated_at, last_used)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			encrypted_key = excluded.encrypted_key,
			updated_at = excluded.updated_at,
			last_used = excluded.last_used`,
		string(credential.ID),
		credential.Owner,
		string(credential.Provider),
		credential.Name,
		credential.EncryptedKey,
		formatTime(credential.CreatedAt),
		formatTime(credential.UpdatedAt),
		formatTime(credential.LastUsed),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s for owner %q", domain.ErrCredentialExists, credential.Provider, credential.Owner)
		}
		return fmt.Errorf("save credential: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.CredentialID) (domain.Credential, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, string(id))
	return scanCredential(row)
}

func (r *Repository) FindByOwnerProvider(ctx context.Context, owner string, provider domain.Provider) (domain.Credential, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE user_id = ? AND provider = ?`, owner, string(provider))
	return scanCredential(row)
}

func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]domain.Credential, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` WHERE user_id = ? ORDER BY created_at DESC, id`, owner)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	credentials := []domain.Credential{}
	for rows.Next() {
		credential, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, credential)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}

	return credentials, nil
}

func (r *Repository) Delete(ctx context.Context, id domain.CredentialID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM api_keys WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	if affected == 0 {
		return domain.ErrCredentialNotFound
	}

	return nil
}

const selectColumns = `SELECT id, user_id, provider, name, encrypted_key, created_at, updated_at, last_used FROM api_keys`

type scanner interface {
	Scan(dest ...any) error
}

func scanCredential(row scanner) (domain.Credential, error) {
	var (
		id, owner, provider, name, encryptedKey string
		createdAt, updatedAt, lastUsed          string
	)

	if err := row.Scan(&id, &owner, &provider, &name, &encryptedKey, &createdAt, &updatedAt, &lastUsed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Credential{}, domain.ErrCredentialNotFound
		}
		return domain.Credential{}, fmt.Errorf("scan credential: %w", err)
	}

	credential := domain.Credential{
		ID:           domain.CredentialID(id),
		Owner:        owner,
		Provider:     domain.Provider(provider),
		Name:         name,
		EncryptedKey: encryptedKey,
	}

	var err error
	if credential.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return domain.Credential{}, fmt.Errorf("credential %q: %w", id, err)
	}
	if credential.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return domain.Credential{}, fmt.Errorf("credential %q: %w", id, err)
	}
	if credential.LastUsed, err = parseTime("last_used", lastUsed); err != nil {
		return domain.Credential{}, fmt.Errorf("credential %q: %w", id, err)
	}

	return credential, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

func parseTime(column, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", column, raw, err)
	}

	return parsed.UTC(), nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(timeLayout)
}
