package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/studymate/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	credentialsPath := filepath.Join(t.TempDir(), "credentials.toml")
	config := viper.New()
	config.Set(CredentialsPathKey, credentialsPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	return repo, credentialsPath
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

	repo, _ := newTestRepository(t)
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	first := testCredential("cred-1", "alice", domain.ProviderOpenAI, now)
	first.LastUsed = now.Add(time.Hour)
	second := testCredential("cred-2", "alice", domain.ProviderAnthropic, now.Add(time.Minute))

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = repo.FindByOwnerProvider(context.Background(), "alice", domain.ProviderAnthropic)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	credentials, err := repo.ListByOwner(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []domain.Credential{second, first}, credentials)
}

func TestRepositorySaveReplacesByID(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	credential := testCredential("cred-1", "alice", domain.ProviderOpenAI, now)
	require.NoError(t, repo.Save(context.Background(), credential))

	credential.Name = "renamed"
	credential.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Save(context.Background(), credential))

	credentials, err := repo.ListByOwner(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, credentials, 1)
	assert.Equal(t, "renamed", credentials[0].Name)
}

func TestRepositoryRejectsDuplicateOwnerProvider(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	now := time.Now().UTC()

	require.NoError(t, repo.Save(context.Background(), testCredential("cred-1", "alice", domain.ProviderOpenAI, now)))

	err := repo.Save(context.Background(), testCredential("cred-2", "alice", domain.ProviderOpenAI, now))
	require.ErrorIs(t, err, domain.ErrCredentialExists)

	require.NoError(t, repo.Save(context.Background(), testCredential("cred-3", "bob", domain.ProviderOpenAI, now)))
}

func TestRepositoryListIsScopedToOwner(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	now := time.Now().UTC()

	require.NoError(t, repo.Save(context.Background(), testCredential("cred-1", "alice", domain.ProviderOpenAI, now)))
	require.NoError(t, repo.Save(context.Background(), testCredential("cred-2", "bob", domain.ProviderOpenAI, now)))

	credentials, err := repo.ListByOwner(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, credentials, 1)
	assert.Equal(t, domain.CredentialID("cred-2"), credentials[0].ID)

	credentials, err = repo.ListByOwner(context.Background(), "carol")
	require.NoError(t, err)
	assert.Empty(t, credentials)
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	now := time.Now().UTC()

	require.NoError(t, repo.Save(context.Background(), testCredential("cred-1", "alice", domain.ProviderOpenAI, now)))
	require.NoError(t, repo.Delete(context.Background(), "cred-1"))

	_, err := repo.GetByID(context.Background(), "cred-1")
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)

	err = repo.Delete(context.Background(), "cred-1")
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestRepositoryRejectsInvalidCredential(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)

	credential := testCredential("cred-1", "alice", domain.ProviderOpenAI, time.Now().UTC())
	credential.EncryptedKey = ""

	err := repo.Save(context.Background(), credential)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate credential")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewRepositoryUsesDefaultPathAndWritesSecurePermissions(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	expectedPath := filepath.Join(home, ".studymate", "credentials.toml")
	assert.Equal(t, expectedPath, repo.Path())

	require.NoError(t, repo.Save(context.Background(), testCredential("cred-1", "alice", domain.ProviderOpenAI, time.Now().UTC())))

	info, err := os.Stat(expectedPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileReturnsEmpty(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	credentials, err := repo.ListByOwner(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, credentials)

	_, err = repo.FindByOwnerProvider(context.Background(), "alice", domain.ProviderOpenAI)
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("[[credentials]\nid = 'broken'"), 0o600))

	_, err := repo.ListByOwner(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode credentials file")
}

func TestRepositoryHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, testCredential("cred-1", "alice", domain.ProviderOpenAI, time.Now().UTC()))
	require.ErrorIs(t, err, context.Canceled)

	_, err = repo.ListByOwner(ctx, "alice")
	require.ErrorIs(t, err, context.Canceled)

	_, err = repo.GetByID(ctx, "cred-1")
	require.ErrorIs(t, err, context.Canceled)

	require.ErrorIs(t, repo.Delete(ctx, "cred-1"), context.Canceled)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRepositoryConcurrentSavesAcrossInstances(t *testing.T) {
	t.Parallel()

	credentialsPath := filepath.Join(t.TempDir(), "credentials.toml")
	config := viper.New()
	config.Set(CredentialsPathKey, credentialsPath)

	repoA, err := NewRepository(config)
	require.NoError(t, err)
	repoB, err := NewRepository(config)
	require.NoError(t, err)

	const perRepoWrites = 50
	now := time.Now().UTC()

	var wg sync.WaitGroup
	errCh := make(chan error, perRepoWrites*2)
	for i := 0; i < perRepoWrites; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			errCh <- repoA.Save(context.Background(), testCredential("a-"+strconv.Itoa(i), "owner-a-"+strconv.Itoa(i), domain.ProviderOpenAI, now))
		}(i)
		go func(i int) {
			defer wg.Done()
			errCh <- repoB.Save(context.Background(), testCredential("b-"+strconv.Itoa(i), "owner-b-"+strconv.Itoa(i), domain.ProviderOpenAI, now))
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	data, err := os.ReadFile(credentialsPath)
	require.NoError(t, err)
	assert.Equal(t, perRepoWrites*2, strings.Count(string(data), "[[credentials]]"))
}

func TestRepositoryWritesSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), testCredential("cred-1", "alice", domain.ProviderOpenAI, time.Now().UTC())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.NotContains(t, string(data), "sk-")
}

func TestRepositoryRejectsFutureSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	_, err := repo.ListByOwner(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported credentials schema version")
}

func TestRepositoryRejectsCorruptTimestamp(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	corrupt := `version = 1

[[credentials]]
id = 'cred-1'
owner = 'alice'
provider = 'openai'
name = 'Work'
encrypted_key = 'ZW52ZWxvcGU='
created_at = '2026-02-14T11:00:00Z'
updated_at = '2026-02-14T11:00:00Z'
last_used = 'yesterday'
`
	require.NoError(t, os.WriteFile(path, []byte(corrupt), 0o600))

	_, err := repo.GetByID(context.Background(), "cred-1")
	require.ErrorContains(t, err, `parse last_used "yesterday"`)

	_, err = repo.ListByOwner(context.Background(), "alice")
	require.ErrorContains(t, err, `credential "cred-1"`)
}
