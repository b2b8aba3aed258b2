package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/domain/validation"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var productSortFields = map[string]repository.ProductSortField{
	"createdAt": repository.SortByCreatedAt,
	"updatedAt": repository.SortByUpdatedAt,
	"name":      repository.SortByName,
	"price":     repository.SortByPrice,
	"stock":     repository.SortByStock,
}

type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	publisher    service.EventPublisher
	notifier     service.NotificationService
	limits       pageLimits
	logger       *slog.Logger
	now          func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Publisher    service.EventPublisher
	Notifier     service.NotificationService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		publisher:    params.Publisher,
		notifier:     params.Notifier,
		limits:       newPageLimits(params.Config),
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a product in DRAFT, awaiting moderation.
func (srv *productService) Create(ctx context.Context, vendorID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := buildProduct(vendorID, input)
	if err != nil {
		return nil, err
	}

	var created *entity.Product

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		categoryRepo := repoFactory.NewCategoryRepository()

		if err := requireActiveCategory(ctx, categoryRepo, product.CategoryID); err != nil {
			return err
		}
		if err := checkProductUnique(ctx, productRepo, product, uuid.Nil); err != nil {
			return err
		}

		slug, err := validation.NextSlug(validation.Slugify(product.Name), func(candidate string) (bool, error) {
			return productRepo.SlugExists(ctx, candidate, uuid.Nil)
		})
		if err != nil {
			return err
		}
		product.Slug = slug

		if err := productRepo.Create(ctx, product); err != nil {
			return productWriteError(err)
		}

		created, err = productRepo.FindByID(ctx, product.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload product")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.String("product_id", created.ID.String()),
		slog.String("vendor_id", vendorID.String()),
	)

	return created, nil
}

// ListVendor pages through the vendor's own products.
func (srv *productService) ListVendor(ctx context.Context, vendorID uuid.UUID, query *usecase.ProductQuery) (*usecase.ProductPage, error) {
	filter, err := parseProductFilter(query)
	if err != nil {
		return nil, err
	}
	filter.VendorID = &vendorID

	return srv.list(ctx, filter, query, srv.limits.normalize)
}

// Update changes an owned product. The slug follows the name only when the name changes.
func (srv *productService) Update(
	ctx context.Context,
	vendorID, productID uuid.UUID,
	input *usecase.UpdateProductInput,
) (*entity.Product, error) {
	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := findOwnedProduct(ctx, productRepo, vendorID, productID)
		if err != nil {
			return err
		}

		previousName, previousCategory := product.Name, product.CategoryID
		if err := applyProductUpdate(product, input); err != nil {
			return err
		}

		if product.CategoryID != previousCategory {
			if err := requireActiveCategory(ctx, repoFactory.NewCategoryRepository(), product.CategoryID); err != nil {
				return err
			}
		}
		if err := checkProductUnique(ctx, productRepo, product, product.ID); err != nil {
			return err
		}

		if product.Name != previousName {
			slug, err := validation.NextSlug(validation.Slugify(product.Name), func(candidate string) (bool, error) {
				return productRepo.SlugExists(ctx, candidate, product.ID)
			})
			if err != nil {
				return err
			}
			product.Slug = slug
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return productWriteError(err)
		}

		updated, err = productRepo.FindByID(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to reload product")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product updated", slog.String("product_id", productID.String()))

	return updated, nil
}

// SetStatus sets DRAFT, ACTIVE or INACTIVE on an owned product. Approval is left untouched.
func (srv *productService) SetStatus(ctx context.Context, vendorID, productID uuid.UUID, status string) (*entity.Product, error) {
	next, err := policy.VendorSettableStatus(status)
	if err != nil {
		return nil, err
	}

	var updated *entity.Product

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := findOwnedProduct(ctx, productRepo, vendorID, productID)
		if err != nil {
			return err
		}

		if err := productRepo.UpdateStatus(ctx, productID, next); err != nil {
			return productWriteError(err)
		}
		product.Status = next
		updated = product

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product status changed",
		slog.String("product_id", productID.String()),
		slog.String("status", string(next)),
	)

	return updated, nil
}

// Delete removes an owned product.
func (srv *productService) Delete(ctx context.Context, vendorID, productID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		if _, err := findOwnedProduct(ctx, productRepo, vendorID, productID); err != nil {
			return err
		}

		if err := productRepo.Delete(ctx, productID); err != nil {
			return productWriteError(err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", productID.String()))

	return nil
}

func (srv *productService) LowStock(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListLowStock(ctx, &vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list low stock products")
	}

	return products, nil
}

// ListPublic pages through publicly visible products with their vendor summaries.
func (srv *productService) ListPublic(ctx context.Context, query *usecase.ProductQuery) (*usecase.ProductPage, error) {
	filter, err := parseProductFilter(query)
	if err != nil {
		return nil, err
	}
	// Status is fixed by the visibility gates.
	filter.Status = nil
	filter.PublicOnly = true
	filter.WithVendor = true

	if filter.VendorID, err = optionalUUID(query.VendorID, "vendorId"); err != nil {
		return nil, err
	}
	if query.Featured {
		featured := true
		filter.Featured = &featured
	}
	if filter.MinPrice, err = priceFilter(query.MinPrice, "minPrice"); err != nil {
		return nil, err
	}
	if filter.MaxPrice, err = priceFilter(query.MaxPrice, "maxPrice"); err != nil {
		return nil, err
	}

	return srv.list(ctx, filter, query, srv.limits.normalizePublic)
}

// GetPublic loads a product only when all three visibility gates are open.
func (srv *productService) GetPublic(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindPublicByID(ctx, productID)
	if err != nil {
		return nil, findProductError(err)
	}

	return product, nil
}

// ListAdmin pages through every product regardless of visibility.
func (srv *productService) ListAdmin(ctx context.Context, query *usecase.ProductQuery) (*usecase.ProductPage, error) {
	filter, err := parseProductFilter(query)
	if err != nil {
		return nil, err
	}
	filter.WithVendor = true

	if filter.VendorID, err = optionalUUID(query.VendorID, "vendorId"); err != nil {
		return nil, err
	}

	return srv.list(ctx, filter, query, srv.limits.normalize)
}

// Moderate writes an admin decision. Approval and status always change together.
func (srv *productService) Moderate(
	ctx context.Context,
	admin *entity.Account,
	productID uuid.UUID,
	input *usecase.ModerateProductInput,
) (*entity.Product, error) {
	action, err := policy.ParseModerationAction(input.Action)
	if err != nil {
		return nil, err
	}
	result, err := policy.Moderate(action)
	if err != nil {
		return nil, err
	}

	var moderated *entity.Product

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			return findProductError(err)
		}

		if err := productRepo.UpdateModeration(ctx, productID, result.AdminApproved, result.Status); err != nil {
			return productWriteError(err)
		}
		product.AdminApproved, product.Status = result.AdminApproved, result.Status
		moderated = product

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product moderated",
		slog.String("product_id", productID.String()),
		slog.String("action", string(action)),
	)

	srv.announceModeration(ctx, admin, moderated, action, strings.TrimSpace(input.Reason))

	return moderated, nil
}

// LowStockDigest groups low-stock products by vendor, keeping the repository order.
func (srv *productService) LowStockDigest(ctx context.Context) ([]*usecase.LowStockDigest, error) {
	products, err := srv.productRepo.ListLowStock(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list low stock products")
	}

	var digests []*usecase.LowStockDigest
	byVendor := make(map[uuid.UUID]*usecase.LowStockDigest)
	for _, product := range products {
		digest, ok := byVendor[product.VendorID]
		if !ok {
			digest = &usecase.LowStockDigest{VendorID: product.VendorID}
			byVendor[product.VendorID] = digest
			digests = append(digests, digest)
		}
		digest.Products = append(digest.Products, product)
	}

	return digests, nil
}

func (srv *productService) list(
	ctx context.Context,
	filter repository.ProductFilter,
	query *usecase.ProductQuery,
	normalize func(entity.PageRequest) entity.PageRequest,
) (*usecase.ProductPage, error) {
	page := normalize(entity.PageRequest{Page: query.Page, Limit: query.Limit})

	products, total, err := srv.productRepo.List(ctx, filter, parseProductSort(query), page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{Products: products, Pagination: entity.NewPagination(page, total)}, nil
}

func (srv *productService) announceModeration(
	ctx context.Context,
	admin *entity.Account,
	product *entity.Product,
	action policy.ModerationAction,
	reason string,
) {
	event := &service.DomainEvent{
		ID:          uuid.NewString(),
		Type:        policy.EventProductModerated,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		AggregateID: product.ID.String(),
		OccurredAt:  srv.now().UTC(),
		Attributes: map[string]string{
			"action":    string(action),
			"status":    string(product.Status),
			"vendor_id": product.VendorID.String(),
		},
	}
	if admin != nil {
		event.ActorID = admin.ID.String()
	}
	if reason != "" {
		event.Attributes["reason"] = reason
	}

	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish product moderation", slog.String("product_id", product.ID.String()), slog.Any("error", err))
	}

	title := "Product approved"
	body := fmt.Sprintf("%s is now visible in the catalog.", product.Name)
	if action == policy.ActionReject {
		title = "Product rejected"
		body = fmt.Sprintf("%s was not approved.", product.Name)
		if reason != "" {
			body += " " + reason
		}
	}

	data := map[string]string{
		"type":      policy.EventProductModerated,
		"productId": product.ID.String(),
		"status":    string(product.Status),
	}
	if err := srv.notifier.SendToTopic(ctx, service.VendorTopic(product.VendorID.String()), title, body, data); err != nil {
		srv.log(ctx).Warn("Failed to notify vendor", slog.String("vendor_id", product.VendorID.String()), slog.Any("error", err))
	}
}

func buildProduct(vendorID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if err := validation.Required(map[string]string{
		"name":       name,
		"price":      input.Price,
		"categoryId": input.CategoryID,
	}); err != nil {
		return nil, err
	}
	if err := validation.Name(name); err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(strings.TrimSpace(input.CategoryID))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid categoryId")
	}

	product := &entity.Product{
		VendorID:          vendorID,
		CategoryID:        categoryID,
		Name:              name,
		Description:       strings.TrimSpace(input.Description),
		Status:            entity.ProductDraft,
		AdminApproved:     false,
		IsActive:          true,
		IsFeatured:        input.IsFeatured,
		LowStockThreshold: entity.DefaultLowStockThreshold,
		TrackInventory:    true,
		Images:            cleanList(input.Images),
		FeaturedImage:     strings.TrimSpace(input.FeaturedImage),
		Tags:              cleanList(input.Tags),
		MetaTitle:         strings.TrimSpace(input.MetaTitle),
		MetaDescription:   strings.TrimSpace(input.MetaDescription),
		Dimensions:        strings.TrimSpace(input.Dimensions),
	}

	if product.Price, err = validation.Price(input.Price); err != nil {
		return nil, err
	}
	if product.ComparePrice, err = optionalAmount(input.ComparePrice, "comparePrice", validation.PriceScale, validation.MaxPrice); err != nil {
		return nil, err
	}
	if product.CostPrice, err = optionalAmount(input.CostPrice, "costPrice", validation.PriceScale, validation.MaxPrice); err != nil {
		return nil, err
	}
	if product.Weight, err = optionalAmount(input.Weight, "weight", validation.WeightScale, validation.MaxWeight); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Stock) != "" {
		if product.Stock, err = validation.Stock(input.Stock); err != nil {
			return nil, err
		}
	}
	if input.LowStockThreshold != nil {
		if !validation.IsCount(*input.LowStockThreshold) {
			return nil, domainerrors.ErrValidationFailed.WithMessage("Low stock threshold must be a non-negative integer")
		}
		product.LowStockThreshold = *input.LowStockThreshold
	}
	if input.TrackInventory != nil {
		product.TrackInventory = *input.TrackInventory
	}
	if product.SKU, err = normalizeSKU(input.SKU); err != nil {
		return nil, err
	}

	return product, nil
}

func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) error {
	var err error

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validation.Name(name); err != nil {
			return err
		}
		product.Name = name
	}
	if input.CategoryID != nil {
		categoryID, err := uuid.Parse(strings.TrimSpace(*input.CategoryID))
		if err != nil {
			return domainerrors.ErrValidationFailed.WithMessage("Invalid categoryId")
		}
		product.CategoryID = categoryID
	}
	if input.Price != nil {
		if product.Price, err = validation.Price(*input.Price); err != nil {
			return err
		}
	}
	if input.ComparePrice != nil {
		if product.ComparePrice, err = optionalAmount(*input.ComparePrice, "comparePrice", validation.PriceScale, validation.MaxPrice); err != nil {
			return err
		}
	}
	if input.CostPrice != nil {
		if product.CostPrice, err = optionalAmount(*input.CostPrice, "costPrice", validation.PriceScale, validation.MaxPrice); err != nil {
			return err
		}
	}
	if input.Weight != nil {
		if product.Weight, err = optionalAmount(*input.Weight, "weight", validation.WeightScale, validation.MaxWeight); err != nil {
			return err
		}
	}
	if input.Stock != nil {
		if product.Stock, err = validation.Stock(*input.Stock); err != nil {
			return err
		}
	}
	if input.SKU != nil {
		if product.SKU, err = normalizeSKU(*input.SKU); err != nil {
			return err
		}
	}
	if input.LowStockThreshold != nil {
		if !validation.IsCount(*input.LowStockThreshold) {
			return domainerrors.ErrValidationFailed.WithMessage("Low stock threshold must be a non-negative integer")
		}
		product.LowStockThreshold = *input.LowStockThreshold
	}

	setText := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setText(&product.Description, input.Description)
	setText(&product.FeaturedImage, input.FeaturedImage)
	setText(&product.MetaTitle, input.MetaTitle)
	setText(&product.MetaDescription, input.MetaDescription)
	setText(&product.Dimensions, input.Dimensions)

	if input.TrackInventory != nil {
		product.TrackInventory = *input.TrackInventory
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.Images != nil {
		product.Images = cleanList(input.Images)
	}
	if input.Tags != nil {
		product.Tags = cleanList(input.Tags)
	}

	return nil
}

func requireActiveCategory(ctx context.Context, categoryRepo repository.CategoryRepository, id uuid.UUID) error {
	category, err := categoryRepo.FindByID(ctx, id)
	if err != nil {
		return findCategoryError(err, domainerrors.ErrCategoryNotFound)
	}
	if !category.IsActive {
		return domainerrors.ErrCategoryInactive
	}

	return nil
}

// checkProductUnique enforces the per-vendor name and SKU uniqueness, ignoring excludeID.
func checkProductUnique(ctx context.Context, productRepo repository.ProductRepository, product *entity.Product, excludeID uuid.UUID) error {
	taken, err := productRepo.NameExists(ctx, product.VendorID, product.Name, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check product name")
	}
	if taken {
		return domainerrors.ErrProductExists
	}

	if product.SKU == nil {
		return nil
	}

	taken, err = productRepo.SKUExists(ctx, product.VendorID, *product.SKU, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check product sku")
	}
	if taken {
		return domainerrors.ErrSKUExists
	}

	return nil
}

func findOwnedProduct(ctx context.Context, productRepo repository.ProductRepository, vendorID, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, findProductError(err)
	}
	if !product.IsOwnedBy(vendorID) {
		return nil, domainerrors.ErrNotOwner
	}

	return product, nil
}

func parseProductFilter(query *usecase.ProductQuery) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{Search: strings.TrimSpace(query.Search)}

	if status := strings.ToUpper(strings.TrimSpace(query.Status)); status != "" {
		productStatus := entity.ProductStatus(status)
		if !productStatus.IsValid() {
			return filter, domainerrors.ErrInvalidProductStatus
		}
		filter.Status = &productStatus
	}

	categoryID, err := optionalUUID(query.CategoryID, "categoryId")
	if err != nil {
		return filter, err
	}
	filter.CategoryID = categoryID

	return filter, nil
}

func parseProductSort(query *usecase.ProductQuery) repository.ProductSort {
	sort := repository.ProductSort{Field: repository.SortByCreatedAt, Order: entity.SortDesc}
	if field, ok := productSortFields[strings.TrimSpace(query.SortBy)]; ok {
		sort.Field = field
	}
	if strings.EqualFold(strings.TrimSpace(query.SortOrder), string(entity.SortAsc)) {
		sort.Order = entity.SortAsc
	}

	return sort
}

func optionalUUID(raw, field string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid " + field)
	}

	return &id, nil
}

// priceFilter parses a listing bound. Bounds are compared, never stored, so column limits do not apply.
func priceFilter(raw, field string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid " + field)
	}

	return &value, nil
}

func optionalAmount(raw, field string, scale int32, limit decimal.Decimal) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	value, ok := validation.Amount(raw, scale, limit)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid " + field)
	}

	return &value, nil
}

func normalizeSKU(raw string) (*string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	if err := validation.SKU(raw); err != nil {
		return nil, err
	}
	sku := validation.NormalizeSKU(raw)

	return &sku, nil
}

// cleanList trims entries and drops blanks. The result is never nil.
func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			cleaned = append(cleaned, value)
		}
	}

	return cleaned
}

func findProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, "failed to find product")
}

func productWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateProductName):
		return errors.Wrap(domainerrors.ErrProductExists, err.Error())
	case errors.Is(err, repository.ErrDuplicateSKU):
		return errors.Wrap(domainerrors.ErrSKUExists, err.Error())
	case errors.IsAny(err, repository.ErrDuplicateProductSlug, repository.ErrDuplicate):
		return errors.Wrap(domainerrors.ErrConflict, err.Error())
	case errors.Is(err, repository.ErrInvalidReference):
		return errors.Wrap(domainerrors.ErrCategoryNotFound, err.Error())
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	default:
		return errors.Wrap(err, "failed to save product")
	}
}
