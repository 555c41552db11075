package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/studymate/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(DatabasePathKey, filepath.Join(t.TempDir(), "nested", "studymate.db"))

	repo, err := NewRepository(context.Background(), config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func testCredential(id, owner string, provider domain.Provider, createdAt time.Time) domain.Credential {
	return domain.Credential{
		ID:           domain.CredentialID(id),
		Owner:        owner,
		Provider:     provider,
		Name:         "key " + id,
		EncryptedKey: "ZW52ZWxvcGUt" + id,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	first := testCredential("cred-1", "alice", domain.ProviderOpenAI, now)
	first.LastUsed = now.Add(time.Hour)
	second := testCredential("cred-2", "alice", domain.ProviderGoogle, now.Add(500*time.Millisecond))

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = repo.FindByOwnerProvider(ctx, "alice", domain.ProviderGoogle)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	credentials, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []domain.Credential{second, first}, credentials)
}

func TestRepositorySaveUpdatesExistingRow(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	credential := testCredential("cred-1", "alice", domain.ProviderOpenAI, now)
	require.NoError(t, repo.Save(ctx, credential))

	credential.Name = "renamed"
	credential.EncryptedKey = "cm90YXRlZA=="
	credential.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Save(ctx, credential))

	got, err := repo.GetByID(ctx, credential.ID)
	require.NoError(t, err)
	assert.Equal(t, credential, got)
}

func TestRepositoryRejectsDuplicateOwnerProvider(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Save(ctx, testCredential("cred-1", "alice", domain.ProviderOpenAI, now)))

	err := repo.Save(ctx, testCredential("cred-2", "alice", domain.ProviderOpenAI, now))
	require.ErrorIs(t, err, domain.ErrCredentialExists)

	require.NoError(t, repo.Save(ctx, testCredential("cred-3", "bob", domain.ProviderOpenAI, now)))
}

func TestRepositoryNotFound(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)

	_, err = repo.FindByOwnerProvider(ctx, "alice", domain.ProviderAnthropic)
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)

	require.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrCredentialNotFound)

	credentials, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, credentials)
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testCredential("cred-1", "alice", domain.ProviderOpenAI, time.Now().UTC())))
	require.NoError(t, repo.Delete(ctx, "cred-1"))

	_, err := repo.GetByID(ctx, "cred-1")
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestRepositoryPersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	config := viper.New()
	config.Set(DatabasePathKey, filepath.Join(t.TempDir(), "studymate.db"))
	ctx := context.Background()

	repo, err := NewRepository(ctx, config)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, testCredential("cred-1", "alice", domain.ProviderOpenAI, time.Now().UTC())))
	require.NoError(t, repo.Close())

	reopened, err := NewRepository(ctx, config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.GetByID(ctx, "cred-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Owner)
}

func TestRepositoryRejectsInvalidCredential(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)

	credential := testCredential("cred-1", "alice", domain.Provider("mistral"), time.Now().UTC())
	err := repo.Save(context.Background(), credential)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate credential")
}

func TestRepositoryHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListByOwner(ctx, "alice")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewRepositoryReportsConfiguredPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keys.db")
	config := viper.New()
	config.Set(DatabasePathKey, path)

	repo, err := NewRepository(context.Background(), config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	assert.Equal(t, path, repo.Path())
}

func TestRepositoryRejectsCorruptTimestamp(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO api_keys (id, user_id, provider, name, encrypted_key, created_at, updated_at, last_used) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		"cred-1", "alice", "openai", "Work", "ZW52ZWxvcGU=", "not-a-time", "2026-02-14T11:00:00.000000000Z", "",
	)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "cred-1")
	require.ErrorContains(t, err, `parse created_at "not-a-time"`)

	_, err = repo.ListByOwner(ctx, "alice")
	require.ErrorContains(t, err, `credential "cred-1"`)
}
