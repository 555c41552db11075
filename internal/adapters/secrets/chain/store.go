// Package chain combines two secret stores: the primary is tried first and
// the fallback serves whatever the primary cannot.
package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	filestore "github.com/bnema/studymate/internal/adapters/secrets/file"
	passstore "github.com/bnema/studymate/internal/adapters/secrets/pass"
	"github.com/bnema/studymate/internal/domain"
	"github.com/bnema/studymate/internal/ports"
)

type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	logger   *slog.Logger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback, logger: slog.New(slog.DiscardHandler)}, nil
}

// NewPassFirstWithFileFallback keeps the master secret in pass when it is
// installed and initialised, and in 0600 files under fileRoot otherwise.
func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

// WithLogger reports fallbacks at debug level.
func (s *Store) WithLogger(logger *slog.Logger) *Store {
	if logger != nil {
		s.logger = logger
	}

	return s
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	return s.write(ctx, "put", key, func(store ports.SecretStore) error {
		return store.Put(ctx, key, value)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.write(ctx, "delete", key, func(store ports.SecretStore) error {
		return store.Delete(ctx, key)
	})
}

// Get returns domain.ErrSecretNotFound alone when neither backend holds the
// key, and a combined error when either backend failed for another reason.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil || isContextError(err) {
		return value, err
	}

	s.logger.DebugContext(ctx, "primary secret store failed, using fallback", "op", "get", "key", key, "error", err)

	value, fallbackErr := s.fallback.Get(ctx, key)
	switch {
	case fallbackErr == nil:
		return value, nil
	case errors.Is(fallbackErr, domain.ErrSecretNotFound) && primaryMissing(err):
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	default:
		return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
	}
}

func (s *Store) write(ctx context.Context, op string, key string, call func(ports.SecretStore) error) error {
	err := call(s.primary)
	if err == nil || isContextError(err) {
		return err
	}

	s.logger.DebugContext(ctx, "primary secret store failed, using fallback", "op", op, "key", key, "error", err)

	if fallbackErr := call(s.fallback); fallbackErr != nil {
		return fmt.Errorf("primary backend %s failed: %w; fallback backend %s failed: %w", op, err, op, fallbackErr)
	}

	return nil
}

// primaryMissing reports whether the primary simply has no entry, either
// because the key is absent or because pass is not installed.
func primaryMissing(err error) bool {
	return errors.Is(err, domain.ErrSecretNotFound) || errors.Is(err, passstore.ErrUnavailable)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
