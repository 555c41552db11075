package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/bnema/studymate/internal/adapters/ai"
	"github.com/bnema/studymate/internal/adapters/ai/openai"
	keysrender "github.com/bnema/studymate/internal/adapters/render/keys"
	sqliterepo "github.com/bnema/studymate/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/studymate/internal/adapters/repo/toml"
	chainstore "github.com/bnema/studymate/internal/adapters/secrets/chain"
	"github.com/bnema/studymate/internal/adapters/vault"
	"github.com/bnema/studymate/internal/application"
	"github.com/bnema/studymate/internal/config"
	"github.com/bnema/studymate/internal/ports"
	"github.com/spf13/viper"
)

// app holds what every command can use without the master secret. The
// vault-backed services are built on first use so that commands such as
// `vault init` work before a secret exists.
type app struct {
	cfg         config.Config
	viper       *viper.Viper
	logger      *slog.Logger
	secretStore ports.SecretStore
	keyRenderer func([]application.KeySummary, keysrender.RenderOptions) (string, error)
	httpClient  *http.Client
	now         func() time.Time

	servicesOnce sync.Once
	services     *services
	servicesErr  error
}

type services struct {
	credentials *application.CredentialService
	content     *application.ContentService
	closer      io.Closer
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	secretStore, err := chainstore.NewPassFirstWithFileFallback(cfg.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		cfg:         cfg,
		viper:       v,
		logger:      logger,
		secretStore: secretStore.WithLogger(logger),
		keyRenderer: keysrender.Render,
		httpClient:  http.DefaultClient,
		now:         time.Now,
	}, nil
}

// Services resolves the master secret and builds the vault, repository and
// application services. It fails closed when no master secret is available.
func (a *app) Services(ctx context.Context) (*services, error) {
	a.servicesOnce.Do(func() {
		a.services, a.servicesErr = a.wireServices(ctx)
	})

	return a.services, a.servicesErr
}

func (a *app) wireServices(ctx context.Context) (*services, error) {
	secret, err := a.cfg.ResolveMasterSecret(ctx, a.secretStore)
	if err != nil {
		return nil, err
	}

	v, err := vault.New(secret)
	if err != nil {
		return nil, err
	}

	repo, closer, err := a.wireRepository(ctx)
	if err != nil {
		return nil, err
	}

	registry := ai.NewRegistry(openai.Client{
		BaseURL:    a.cfg.OpenAIBaseURL,
		Model:      a.cfg.OpenAIModel,
		HTTPClient: a.httpClient,
	})

	credentials := application.NewCredentialService(repo, v, registry, ports.SystemClock{}, a.logger)

	return &services{
		credentials: credentials,
		content:     application.NewContentService(credentials, registry, a.logger),
		closer:      closer,
	}, nil
}

func (a *app) wireRepository(ctx context.Context) (ports.CredentialRepository, io.Closer, error) {
	switch a.cfg.CredentialsBackend {
	case config.BackendSQLite:
		repo, err := sqliterepo.NewRepository(ctx, a.viper)
		if err != nil {
			return nil, nil, fmt.Errorf("wire sqlite credential repository: %w", err)
		}
		a.logger.DebugContext(ctx, "credential repository ready", "backend", config.BackendSQLite, "path", repo.Path())
		return repo, repo, nil
	default:
		repo, err := tomlrepo.NewRepository(a.viper)
		if err != nil {
			return nil, nil, fmt.Errorf("wire credential repository: %w", err)
		}
		a.logger.DebugContext(ctx, "credential repository ready", "backend", config.BackendTOML, "path", repo.Path())
		return repo, nil, nil
	}
}

// Close releases the credential repository. It is safe on a nil app and
// when services were never built.
func (a *app) Close() error {
	if a == nil || a.services == nil || a.services.closer == nil {
		return nil
	}

	return a.services.closer.Close()
}
