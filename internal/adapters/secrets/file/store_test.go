package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/studymate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "studymate/encryption_key"

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "secret key is empty"},
		{name: "whitespace", key: "   ", wantErr: "secret key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid secret key"},
		{name: "traversal", key: "../escape", wantErr: "invalid secret key"},
		{name: "deep traversal", key: "../../secret", wantErr: "invalid secret key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	want := "0123456789abcdef0123456789abcdef"

	err := store.Put(context.Background(), testKey, want)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), testKey)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(root, testKey))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretFileMod), info.Mode().Perm())
}

func TestStorePutTightensExistingFilePermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, testKey)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	store := NewStore(root)
	require.NoError(t, store.Put(context.Background(), testKey, "new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretFileMod), info.Mode().Perm())
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, testKey)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("hand-written-secret\r\n"), 0o600))

	got, err := NewStore(root).Get(context.Background(), testKey)
	require.NoError(t, err)
	assert.Equal(t, "hand-written-secret", got)
}

func TestStoreGetMissingSecretReturnsNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewStore(t.TempDir()).Get(context.Background(), testKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, testKey)
}

func TestStoreDeleteIsIdempotentWhenSecretMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	err := store.Delete(context.Background(), testKey)
	require.NoError(t, err)

	err = store.Delete(context.Background(), testKey)
	require.NoError(t, err)
}

func TestStoreHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(t.TempDir())
	require.ErrorIs(t, store.Put(ctx, testKey, "value"), context.Canceled)
	_, err := store.Get(ctx, testKey)
	require.ErrorIs(t, err, context.Canceled)
}
