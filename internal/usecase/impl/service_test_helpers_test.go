package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			DefaultPageSize:       10,
			DefaultPublicPageSize: 12,
			MaxPageSize:           100,
		},
	}
}

// txRepos are the repositories handed out inside a mocked transaction. Nil entries are never requested.
type txRepos struct {
	accounts   repository.AccountRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// expectTx makes txManager run the transaction body against a factory serving repos.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, repos txRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if repos.accounts != nil {
				factory.EXPECT().NewAccountRepository().Return(repos.accounts).Maybe()
			}
			if repos.categories != nil {
				factory.EXPECT().NewCategoryRepository().Return(repos.categories).Maybe()
			}
			if repos.products != nil {
				factory.EXPECT().NewProductRepository().Return(repos.products).Maybe()
			}

			return fn(factory)
		})
}

func intPtr(n int) *int {
	return &n
}

func strPtr(s string) *string {
	return &s
}

func newAccount(role entity.Role, status entity.Status) *entity.Account {
	return &entity.Account{
		ID:       uuid.New(),
		Role:     role,
		Status:   status,
		IsActive: true,
	}
}
