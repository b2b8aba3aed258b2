package impl

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/domain/service"
)

// cleanupTimeout bounds each compensating delete once the request context is gone.
const cleanupTimeout = 10 * time.Second

// commitOrCompensate runs commit after the staged objects were uploaded. When commit fails the
// staged objects are deleted best effort and the commit error is returned unchanged.
func commitOrCompensate(
	ctx context.Context,
	logger *slog.Logger,
	storage service.ObjectStorage,
	staged []*service.StoredObject,
	commit func() error,
) error {
	err := commit()
	if err == nil {
		return nil
	}

	keys := make([]string, 0, len(staged))
	for _, obj := range staged {
		if obj != nil {
			keys = append(keys, obj.Key)
		}
	}
	discardObjects(ctx, logger, storage, keys...)

	return err
}

// discardObjects deletes keys, logging failures instead of returning them.
func discardObjects(ctx context.Context, logger *slog.Logger, storage service.ObjectStorage, keys ...string) {
	// The request may already be cancelled; cleanup still runs.
	ctx = context.WithoutCancel(ctx)

	for _, key := range keys {
		if key == "" {
			continue
		}

		deleteCtx, cancel := context.WithTimeout(ctx, cleanupTimeout)
		if err := storage.Delete(deleteCtx, key); err != nil {
			logger.Warn("Failed to delete stored object", slog.String("key", key), slog.Any("error", err))
		}
		cancel()
	}
}
