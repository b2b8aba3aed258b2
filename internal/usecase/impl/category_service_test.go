package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	svc := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return categoryServiceFixtures{
		service:      svc,
		txManager:    txManager,
		categoryRepo: categoryRepo,
	}
}

func (fx categoryServiceFixtures) inTx(t *testing.T) {
	expectTx(t, fx.txManager, txRepos{categories: fx.categoryRepo})
}

func newCategory(name, slug string, parentID *uuid.UUID) *entity.Category {
	return &entity.Category{
		ID:       uuid.New(),
		Name:     name,
		Slug:     slug,
		ParentID: parentID,
		IsActive: true,
	}
}

func TestCategoryService_Create_DisambiguatesSlug(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	id := uuid.New()
	var created *entity.Category

	fx.inTx(t)
	fx.categoryRepo.EXPECT().NameExists(ctx, "Home Decor", uuid.Nil).Return(false, nil)
	fx.categoryRepo.EXPECT().SlugExists(ctx, "home-decor", uuid.Nil).Return(true, nil)
	fx.categoryRepo.EXPECT().SlugExists(ctx, "home-decor-1", uuid.Nil).Return(true, nil)
	fx.categoryRepo.EXPECT().SlugExists(ctx, "home-decor-2", uuid.Nil).Return(false, nil)
	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(_ context.Context, category *entity.Category) {
			category.ID = id
			created = category
		}).
		Return(nil)
	fx.categoryRepo.EXPECT().
		FindByID(ctx, id).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Category, error) { return created, nil })

	category, err := fx.service.Create(ctx, &usecase.CreateCategoryInput{Name: " Home Decor ", SortOrder: 3})
	require.NoError(t, err)
	assert.Equal(t, "home-decor-2", category.Slug)
	assert.Equal(t, "Home Decor", category.Name)
	assert.True(t, category.IsActive)
	assert.Equal(t, 3, category.SortOrder)
	assert.Nil(t, category.ParentID)
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.inTx(t)
	fx.categoryRepo.EXPECT().NameExists(ctx, "Books", uuid.Nil).Return(true, nil)

	_, err := fx.service.Create(ctx, &usecase.CreateCategoryInput{Name: "Books"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryExists)
}

func TestCategoryService_Create_UnknownParent(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	parentID := uuid.New()

	fx.inTx(t)
	fx.categoryRepo.EXPECT().NameExists(ctx, "Novels", uuid.Nil).Return(false, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, parentID).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.Create(ctx, &usecase.CreateCategoryInput{Name: "Novels", ParentID: &parentID})
	assert.ErrorIs(t, err, domainerrors.ErrParentNotFound)
}

func TestCategoryService_Create_InvalidName(t *testing.T) {
	fx := createTestCategoryService(t)

	_, err := fx.service.Create(context.Background(), &usecase.CreateCategoryInput{Name: "X"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Create(context.Background(), &usecase.CreateCategoryInput{Name: "  "})
	assert.ErrorIs(t, err, domainerrors.ErrRequiredFields)
}

func TestCategoryService_Update_RenameRegeneratesSlug(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category := newCategory("Phones", "phones", nil)

	fx.inTx(t)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil).Times(2)
	fx.categoryRepo.EXPECT().NameExists(ctx, "Mobile Phones", category.ID).Return(false, nil)
	fx.categoryRepo.EXPECT().SlugExists(ctx, "mobile-phones", category.ID).Return(false, nil)
	fx.categoryRepo.EXPECT().Update(ctx, category).Return(nil)

	updated, err := fx.service.Update(ctx, category.ID, &usecase.UpdateCategoryInput{Name: strPtr("Mobile Phones")})
	require.NoError(t, err)
	assert.Equal(t, "mobile-phones", updated.Slug)
}

func TestCategoryService_Update_SameNameKeepsSlug(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category := newCategory("Phones", "phones-1", nil)
	sortOrder := 7

	fx.inTx(t)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil).Times(2)
	fx.categoryRepo.EXPECT().Update(ctx, category).Return(nil)

	updated, err := fx.service.Update(ctx, category.ID, &usecase.UpdateCategoryInput{
		Name:        strPtr("Phones"),
		Description: strPtr("Smartphones and feature phones"),
		SortOrder:   &sortOrder,
	})
	require.NoError(t, err)
	assert.Equal(t, "phones-1", updated.Slug)
	assert.Equal(t, 7, updated.SortOrder)
	assert.Equal(t, "Smartphones and feature phones", updated.Description)
}

func TestCategoryService_Update_RejectsCycles(t *testing.T) {
	t.Run("self parent", func(t *testing.T) {
		fx := createTestCategoryService(t)
		ctx := context.Background()

		category := newCategory("Phones", "phones", nil)

		fx.inTx(t)
		fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)

		_, err := fx.service.Update(ctx, category.ID, &usecase.UpdateCategoryInput{ParentID: &category.ID, ParentSet: true})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryCycle)
	})

	t.Run("descendant parent", func(t *testing.T) {
		fx := createTestCategoryService(t)
		ctx := context.Background()

		category := newCategory("Electronics", "electronics", nil)
		grandchildID := uuid.New()
		childID := uuid.New()

		fx.inTx(t)
		fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
		fx.categoryRepo.EXPECT().LockHierarchy(ctx).Return(nil)
		fx.categoryRepo.EXPECT().AncestorIDs(ctx, grandchildID).Return([]uuid.UUID{grandchildID, childID, category.ID}, nil)

		_, err := fx.service.Update(ctx, category.ID, &usecase.UpdateCategoryInput{ParentID: &grandchildID, ParentSet: true})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryCycle)
	})

	t.Run("unknown parent", func(t *testing.T) {
		fx := createTestCategoryService(t)
		ctx := context.Background()

		category := newCategory("Electronics", "electronics", nil)
		parentID := uuid.New()

		fx.inTx(t)
		fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
		fx.categoryRepo.EXPECT().LockHierarchy(ctx).Return(nil)
		fx.categoryRepo.EXPECT().AncestorIDs(ctx, parentID).Return(nil, repository.ErrCategoryNotFound)

		_, err := fx.service.Update(ctx, category.ID, &usecase.UpdateCategoryInput{ParentID: &parentID, ParentSet: true})
		assert.ErrorIs(t, err, domainerrors.ErrParentNotFound)
	})
}

func TestCategoryService_Update_LocksHierarchyBeforeAncestorWalk(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category := newCategory("Novels", "novels", nil)
	parent := newCategory("Books", "books", nil)

	fx.inTx(t)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil).Times(2)
	mock.InOrder(
		fx.categoryRepo.EXPECT().LockHierarchy(ctx).Return(nil).Call,
		fx.categoryRepo.EXPECT().AncestorIDs(ctx, parent.ID).Return([]uuid.UUID{parent.ID}, nil).Call,
		fx.categoryRepo.EXPECT().Update(ctx, category).Return(nil).Call,
	)

	updated, err := fx.service.Update(ctx, category.ID, &usecase.UpdateCategoryInput{ParentID: &parent.ID, ParentSet: true})
	require.NoError(t, err)
	assert.Equal(t, &parent.ID, updated.ParentID)
}

func TestCategoryService_Update_LockFailure(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category := newCategory("Novels", "novels", nil)
	parentID := uuid.New()

	fx.inTx(t)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.categoryRepo.EXPECT().LockHierarchy(ctx).Return(errors.New("lock timeout"))

	_, err := fx.service.Update(ctx, category.ID, &usecase.UpdateCategoryInput{ParentID: &parentID, ParentSet: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock timeout")
}

func TestCategoryService_Update_MoveToRoot(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	parentID := uuid.New()
	category := newCategory("Novels", "novels", &parentID)

	fx.inTx(t)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil).Times(2)
	fx.categoryRepo.EXPECT().Update(ctx, category).Return(nil)

	updated, err := fx.service.Update(ctx, category.ID, &usecase.UpdateCategoryInput{ParentSet: true})
	require.NoError(t, err)
	assert.True(t, updated.IsRoot())
}

func TestCategoryService_ToggleStatus(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category := newCategory("Toys", "toys", nil)

	fx.inTx(t)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.categoryRepo.EXPECT().Update(ctx, category).Return(nil)

	toggled, err := fx.service.ToggleStatus(ctx, category.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
}

func TestCategoryService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		products int64
		children int64
		wantErr  error
	}{
		{name: "leaf without products", products: 0, children: 0},
		{name: "has products", products: 3, wantErr: domainerrors.ErrCategoryHasProducts},
		{name: "has children", products: 0, children: 2, wantErr: domainerrors.ErrCategoryHasChildren},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCategoryService(t)
			ctx := context.Background()

			category := newCategory("Toys", "toys", nil)

			fx.inTx(t)
			fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
			fx.categoryRepo.EXPECT().CountProducts(ctx, category.ID).Return(tt.products, nil)
			if tt.products == 0 {
				fx.categoryRepo.EXPECT().CountChildren(ctx, category.ID).Return(tt.children, nil)
			}
			if tt.wantErr == nil {
				fx.categoryRepo.EXPECT().Delete(ctx, category.ID).Return(nil)
			}

			err := fx.service.Delete(ctx, category.ID)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.inTx(t)
	fx.categoryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCategoryNotFound)

	assert.ErrorIs(t, fx.service.Delete(ctx, id), domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Get_PublicHidesInactive(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.categoryRepo.EXPECT().
		List(ctx, repository.CategoryFilter{IDs: []uuid.UUID{id}, ActiveChildrenOnly: true, VisibleProductsOnly: true}).
		Return([]*entity.Category{}, nil)

	_, err := fx.service.Get(ctx, id, false)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Get_AdminIncludesInactiveChildren(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category := newCategory("Books", "books", nil)
	category.IsActive = false
	child := newCategory("Novels", "novels", &category.ID)

	fx.categoryRepo.EXPECT().
		List(ctx, repository.CategoryFilter{IDs: []uuid.UUID{category.ID}, IncludeInactive: true}).
		Return([]*entity.Category{category}, nil)
	fx.categoryRepo.EXPECT().
		List(ctx, repository.CategoryFilter{ParentIDs: []uuid.UUID{category.ID}, IncludeInactive: true}).
		Return([]*entity.Category{child}, nil)

	got, err := fx.service.Get(ctx, category.ID, true)
	require.NoError(t, err)
	require.Len(t, got.Children, 1)
	assert.Equal(t, child.ID, got.Children[0].ID)
}

func TestCategoryService_Tree(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	books := newCategory("Books", "books", nil)
	toys := newCategory("Toys", "toys", nil)
	novels := newCategory("Novels", "novels", &books.ID)

	fx.categoryRepo.EXPECT().
		List(ctx, repository.CategoryFilter{RootsOnly: true, ActiveChildrenOnly: true, VisibleProductsOnly: true}).
		Return([]*entity.Category{books, toys}, nil)
	fx.categoryRepo.EXPECT().
		List(ctx, repository.CategoryFilter{
			ParentIDs:           []uuid.UUID{books.ID, toys.ID},
			ActiveChildrenOnly:  true,
			VisibleProductsOnly: true,
		}).
		Return([]*entity.Category{novels}, nil)

	tree, err := fx.service.Tree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, []*entity.Category{novels}, tree[0].Children)
	assert.NotNil(t, tree[1].Children)
	assert.Empty(t, tree[1].Children)
}

func TestCategoryService_ListAdmin_ByParent(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	parentID := uuid.New()

	fx.categoryRepo.EXPECT().
		List(ctx, repository.CategoryFilter{ParentIDs: []uuid.UUID{parentID}, IncludeInactive: true}).
		Return([]*entity.Category{}, nil)

	categories, err := fx.service.ListAdmin(ctx, &usecase.ListCategoriesInput{IncludeInactive: true, Parent: parentID.String()})
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryService_ListActive_InvalidParent(t *testing.T) {
	fx := createTestCategoryService(t)

	_, err := fx.service.ListActive(context.Background(), &usecase.ListCategoriesInput{Parent: "not-a-uuid"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
