package storage

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	providerMinio = "minio"
	providerBlob  = "blob"
)

// timeoutStorage bounds every storage call.
type timeoutStorage struct {
	next    service.ObjectStorage
	timeout time.Duration
}

func (s *timeoutStorage) Upload(ctx context.Context, upload service.Upload) (*service.StoredObject, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.next.Upload(ctx, upload)
}

func (s *timeoutStorage) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.next.Delete(ctx, key)
}

// Params holds dependencies for object storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New builds the configured object storage.
func New(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		cfg = &config.StorageConfig{}
	}

	var store service.ObjectStorage

	switch cfg.Provider {
	case providerMinio, "":
		minioStore, err := NewMinioStore(params.Ctx, cfg)
		if err != nil {
			return nil, err
		}
		store = minioStore
	case providerBlob:
		blobStore, err := NewBlobStore(params.Ctx, cfg.BlobURL, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return blobStore.Close()
			},
		})
		store = blobStore
	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	params.Logger.Info("Object storage initialized",
		slog.String("provider", cfg.Provider),
		slog.String("bucket", cfg.Bucket),
	)

	if cfg.Timeout <= 0 {
		return store, nil
	}

	return &timeoutStorage{next: store, timeout: cfg.Timeout}, nil
}
