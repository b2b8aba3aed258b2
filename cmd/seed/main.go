// Command seed inserts the default category tree into an empty catalog.
package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/domain/repository"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/usecase"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
)

type seedParams struct {
	fx.In
	fx.Shutdowner

	CategoryUC   usecase.CategoryUsecase
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewCategoryRepository,
			postgres.NewTransactionManager,
			impl.NewCategoryService,
		),
		fx.Invoke(run),
	)

	if err := app.Err(); err != nil {
		slog.Error("Failed to build seed application", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	_ = app.Stop(ctx)
}

func run(lc fx.Lifecycle, params seedParams) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := seedCategories(ctx, params.CategoryUC, params.CategoryRepo, params.Logger)

			return err
		},
	})
}
