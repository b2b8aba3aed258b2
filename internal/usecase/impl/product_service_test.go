package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	txManager    *mockRepo.MockTransactionManager
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	publisher    *mockSvc.MockEventPublisher
	notifier     *mockSvc.MockNotificationService
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	notifier := mockSvc.NewMockNotificationService(t)

	svc := NewProductService(ProductServiceParams{
		TxManager:    txManager,
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Publisher:    publisher,
		Notifier:     notifier,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	svc.(*productService).now = func() time.Time { return vendorTestNow }

	return productServiceFixtures{
		service:      svc,
		txManager:    txManager,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		notifier:     notifier,
	}
}

func (fx productServiceFixtures) inTx(t *testing.T) {
	expectTx(t, fx.txManager, txRepos{products: fx.productRepo, categories: fx.categoryRepo})
}

func newProduct(vendorID uuid.UUID) *entity.Product {
	return &entity.Product{
		ID:                uuid.New(),
		VendorID:          vendorID,
		CategoryID:        uuid.New(),
		Name:              "Desk Lamp",
		Slug:              "desk-lamp",
		Price:             decimal.RequireFromString("19.99"),
		Stock:             10,
		LowStockThreshold: entity.DefaultLowStockThreshold,
		TrackInventory:    true,
		Status:            entity.ProductDraft,
		IsActive:          true,
	}
}

func TestProductService_Create_Defaults(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	vendorID := uuid.New()
	category := newCategory("Lighting", "lighting", nil)
	id := uuid.New()
	var created *entity.Product

	fx.inTx(t)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.productRepo.EXPECT().NameExists(ctx, vendorID, "Desk Lamp", uuid.Nil).Return(false, nil)
	fx.productRepo.EXPECT().SKUExists(ctx, vendorID, "LAMP-01", uuid.Nil).Return(false, nil)
	fx.productRepo.EXPECT().SlugExists(ctx, "desk-lamp", uuid.Nil).Return(true, nil)
	fx.productRepo.EXPECT().SlugExists(ctx, "desk-lamp-1", uuid.Nil).Return(false, nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = id
			created = product
		}).
		Return(nil)
	fx.productRepo.EXPECT().
		FindByID(ctx, id).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Product, error) { return created, nil })

	product, err := fx.service.Create(ctx, vendorID, &usecase.ProductInput{
		CategoryID:   category.ID.String(),
		Name:         "Desk Lamp",
		Price:        "19.99",
		ComparePrice: "24.50",
		SKU:          " lamp-01 ",
		Stock:        "12",
		Tags:         []string{"lighting", " ", "desk"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductDraft, product.Status)
	assert.False(t, product.AdminApproved)
	assert.True(t, product.IsActive)
	assert.True(t, product.TrackInventory)
	assert.Equal(t, entity.DefaultLowStockThreshold, product.LowStockThreshold)
	assert.Equal(t, "LAMP-01", entity.StringValue(product.SKU))
	assert.Equal(t, "desk-lamp-1", product.Slug)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("19.99")))
	require.NotNil(t, product.ComparePrice)
	assert.True(t, product.ComparePrice.Equal(decimal.RequireFromString("24.5")))
	assert.Equal(t, 12, product.Stock)
	assert.Equal(t, []string{"lighting", "desk"}, product.Tags)
	assert.False(t, product.IsPubliclyVisible())
}

func TestProductService_Create_Validation(t *testing.T) {
	categoryID := uuid.New().String()

	tests := []struct {
		name    string
		input   usecase.ProductInput
		wantErr error
	}{
		{name: "missing price", input: usecase.ProductInput{CategoryID: categoryID, Name: "Lamp"}, wantErr: domainerrors.ErrRequiredFields},
		{name: "negative price", input: usecase.ProductInput{CategoryID: categoryID, Name: "Lamp", Price: "-1"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "bad category id", input: usecase.ProductInput{CategoryID: "abc", Name: "Lamp", Price: "1"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "fractional stock", input: usecase.ProductInput{CategoryID: categoryID, Name: "Lamp", Price: "1", Stock: "1.5"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "short sku", input: usecase.ProductInput{CategoryID: categoryID, Name: "Lamp", Price: "1", SKU: "ab"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "price over column", input: usecase.ProductInput{CategoryID: categoryID, Name: "Lamp", Price: "123456789012.99"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "price with three decimals", input: usecase.ProductInput{CategoryID: categoryID, Name: "Lamp", Price: "1.999"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "compare price over column", input: usecase.ProductInput{CategoryID: categoryID, Name: "Lamp", Price: "1", ComparePrice: "99999999999"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "cost price with three decimals", input: usecase.ProductInput{CategoryID: categoryID, Name: "Lamp", Price: "1", CostPrice: "0.125"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "weight over column", input: usecase.ProductInput{CategoryID: categoryID, Name: "Lamp", Price: "1", Weight: "10000000"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "stock over int32", input: usecase.ProductInput{CategoryID: categoryID, Name: "Lamp", Price: "1", Stock: "3000000000"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "threshold over int32", input: usecase.ProductInput{CategoryID: categoryID, Name: "Lamp", Price: "1", LowStockThreshold: intPtr(math.MaxInt32 + 1)}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			_, err := fx.service.Create(context.Background(), uuid.New(), &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductService_Create_InactiveCategory(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	category := newCategory("Lighting", "lighting", nil)
	category.IsActive = false

	fx.inTx(t)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)

	_, err := fx.service.Create(ctx, uuid.New(), &usecase.ProductInput{CategoryID: category.ID.String(), Name: "Lamp", Price: "5"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryInactive)
}

func TestProductService_Create_DuplicateSKU(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	vendorID := uuid.New()
	category := newCategory("Lighting", "lighting", nil)

	fx.inTx(t)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.productRepo.EXPECT().NameExists(ctx, vendorID, "Lamp", uuid.Nil).Return(false, nil)
	fx.productRepo.EXPECT().SKUExists(ctx, vendorID, "LAMP-01", uuid.Nil).Return(true, nil)

	_, err := fx.service.Create(ctx, vendorID, &usecase.ProductInput{
		CategoryID: category.ID.String(), Name: "Lamp", Price: "5", SKU: "lamp-01",
	})
	assert.ErrorIs(t, err, domainerrors.ErrSKUExists)
}

func TestProductService_Update_NotOwner(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := newProduct(uuid.New())

	fx.inTx(t)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.Update(ctx, uuid.New(), product.ID, &usecase.UpdateProductInput{Name: strPtr("Floor Lamp")})
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestProductService_Update_RenameRegeneratesSlug(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	vendorID := uuid.New()
	product := newProduct(vendorID)
	stock := "0"

	fx.inTx(t)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil).Times(2)
	fx.productRepo.EXPECT().NameExists(ctx, vendorID, "Floor Lamp", product.ID).Return(false, nil)
	fx.productRepo.EXPECT().SlugExists(ctx, "floor-lamp", product.ID).Return(false, nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

	updated, err := fx.service.Update(ctx, vendorID, product.ID, &usecase.UpdateProductInput{
		Name:  strPtr("Floor Lamp"),
		Stock: &stock,
	})
	require.NoError(t, err)
	assert.Equal(t, "floor-lamp", updated.Slug)
	assert.Equal(t, 0, updated.Stock)
}

func TestProductService_Update_ChangesCategory(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	vendorID := uuid.New()
	product := newProduct(vendorID)
	target := newCategory("Garden", "garden", nil)
	target.IsActive = false

	fx.inTx(t)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

	categoryID := target.ID.String()
	_, err := fx.service.Update(ctx, vendorID, product.ID, &usecase.UpdateProductInput{CategoryID: &categoryID})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryInactive)
}

func TestProductService_SetStatus(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	vendorID := uuid.New()
	product := newProduct(vendorID)

	fx.inTx(t)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().UpdateStatus(ctx, product.ID, entity.ProductActive).Return(nil)

	updated, err := fx.service.SetStatus(ctx, vendorID, product.ID, "active")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductActive, updated.Status)
	// Approval stays with moderation.
	assert.False(t, updated.AdminApproved)
	assert.False(t, updated.IsPubliclyVisible())
}

func TestProductService_SetStatus_RejectedIsReserved(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.SetStatus(context.Background(), uuid.New(), uuid.New(), "REJECTED")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidProductStatus)
}

func TestProductService_Delete(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	vendorID := uuid.New()
	product := newProduct(vendorID)

	fx.inTx(t)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, vendorID, product.ID))
}

func TestProductService_Delete_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.inTx(t)
	fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	assert.ErrorIs(t, fx.service.Delete(ctx, uuid.New(), id), domainerrors.ErrProductNotFound)
}

func TestProductService_Moderate(t *testing.T) {
	tests := []struct {
		action       string
		wantApproved bool
		wantStatus   entity.ProductStatus
		wantTitle    string
	}{
		{action: "approve", wantApproved: true, wantStatus: entity.ProductActive, wantTitle: "Product approved"},
		{action: "reject", wantApproved: false, wantStatus: entity.ProductRejected, wantTitle: "Product rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			fx := createTestProductService(t)
			ctx := context.Background()

			admin := newAccount(entity.RoleAdmin, entity.StatusApproved)
			product := newProduct(uuid.New())

			fx.inTx(t)
			fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			fx.productRepo.EXPECT().UpdateModeration(ctx, product.ID, tt.wantApproved, tt.wantStatus).Return(nil)
			fx.publisher.EXPECT().
				Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
					return event.Type == policy.EventProductModerated &&
						event.AggregateID == product.ID.String() &&
						event.Attributes["action"] == tt.action
				})).
				Return(nil)
			fx.notifier.EXPECT().
				SendToTopic(ctx, service.VendorTopic(product.VendorID.String()), tt.wantTitle, mock.Anything, mock.Anything).
				Return(nil)

			moderated, err := fx.service.Moderate(ctx, admin, product.ID, &usecase.ModerateProductInput{Action: tt.action})
			require.NoError(t, err)
			assert.Equal(t, tt.wantApproved, moderated.AdminApproved)
			assert.Equal(t, tt.wantStatus, moderated.Status)
			assert.Equal(t, tt.wantApproved, moderated.IsPubliclyVisible())
		})
	}
}

func TestProductService_Moderate_InvalidAction(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.Moderate(context.Background(), nil, uuid.New(), &usecase.ModerateProductInput{Action: "Approve "})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)
}

func TestProductService_ListVendor_UnknownSortFallsBack(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	vendorID := uuid.New()
	status := entity.ProductDraft

	fx.productRepo.EXPECT().
		List(ctx,
			repository.ProductFilter{VendorID: &vendorID, Status: &status, Search: "lamp"},
			repository.ProductSort{Field: repository.SortByCreatedAt, Order: entity.SortDesc},
			entity.PageRequest{Page: 2, Limit: 100},
		).
		Return([]*entity.Product{newProduct(vendorID)}, 101, nil)

	page, err := fx.service.ListVendor(ctx, vendorID, &usecase.ProductQuery{
		Page:   2,
		Limit:  500,
		Status: "draft",
		Search: " lamp ",
		SortBy: "password",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.Pagination{Page: 2, Limit: 100, Total: 101, Pages: 2}, page.Pagination)
}

func TestProductService_ListPublic(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	vendorID := uuid.New()

	fx.productRepo.EXPECT().
		List(ctx,
			mock.MatchedBy(func(filter repository.ProductFilter) bool {
				return filter.PublicOnly && filter.WithVendor &&
					filter.Status == nil &&
					filter.VendorID != nil && *filter.VendorID == vendorID &&
					filter.Featured != nil && *filter.Featured &&
					filter.MinPrice != nil && filter.MinPrice.Equal(decimal.NewFromInt(10)) &&
					filter.MaxPrice == nil
			}),
			repository.ProductSort{Field: repository.SortByPrice, Order: entity.SortAsc},
			entity.PageRequest{Page: 1, Limit: 12},
		).
		Return([]*entity.Product{}, 0, nil)

	page, err := fx.service.ListPublic(ctx, &usecase.ProductQuery{
		Status:    "DRAFT",
		VendorID:  vendorID.String(),
		Featured:  true,
		MinPrice:  "10",
		SortBy:    "price",
		SortOrder: "ASC",
	})
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Equal(t, 12, page.Pagination.Limit)
}

func TestProductService_ListPublic_InvalidFilters(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	_, err := fx.service.ListPublic(ctx, &usecase.ProductQuery{VendorID: "vendor-1"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.ListPublic(ctx, &usecase.ProductQuery{MaxPrice: "cheap"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_GetPublic_HiddenIsNotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().FindPublicByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetPublic(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_LowStockDigest_GroupsByVendor(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	first, second := uuid.New(), uuid.New()
	products := []*entity.Product{newProduct(first), newProduct(first), newProduct(second)}

	fx.productRepo.EXPECT().ListLowStock(ctx, (*uuid.UUID)(nil)).Return(products, nil)

	digests, err := fx.service.LowStockDigest(ctx)
	require.NoError(t, err)
	require.Len(t, digests, 2)
	assert.Equal(t, first, digests[0].VendorID)
	assert.Len(t, digests[0].Products, 2)
	assert.Equal(t, second, digests[1].VendorID)
	assert.Len(t, digests[1].Products, 1)
}

func TestProductService_LowStock(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	vendorID := uuid.New()
	fx.productRepo.EXPECT().ListLowStock(ctx, &vendorID).Return([]*entity.Product{newProduct(vendorID)}, nil)

	products, err := fx.service.LowStock(ctx, vendorID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
