package postgres

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(productM).Error; err != nil {
		return translateProductWriteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update writes every vendor-editable column. Ownership and moderation fields are left alone.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Select("*").
		Omit("id", "vendor_id", "created_at", "admin_approved", clause.Associations).
		Updates(productM)
	if result.Error != nil {
		return translateProductWriteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) UpdateModeration(ctx context.Context, id uuid.UUID, approved bool, status entity.ProductStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"admin_approved": approved,
			"status":         string(status),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to moderate product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id), "failed to find product by ID")
}

// FindPublicByID applies the three visibility gates.
func (repo *productRepository) FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Scopes(publiclyVisible).
		Preload("Category").
		Preload("Vendor").
		Where("id = ?", id), "failed to find public product")
}

func (repo *productRepository) NameExists(ctx context.Context, vendorID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, excludeID, "vendor_id = ? AND name = ?", vendorID, name)
}

func (repo *productRepository) SKUExists(ctx context.Context, vendorID uuid.UUID, sku string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, excludeID, "vendor_id = ? AND sku = ?", vendorID, sku)
}

func (repo *productRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, excludeID, "slug = ?", slug)
}

// List returns one page of products plus the total number of matches.
func (repo *productRepository) List(
	ctx context.Context,
	filter repository.ProductFilter,
	sort repository.ProductSort,
	page entity.PageRequest,
) ([]*entity.Product, int64, error) {
	scope := productFilterScope(filter)

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	query := repo.db.WithContext(ctx).
		Scopes(scope).
		Preload("Category")
	if filter.WithVendor {
		query = query.Preload("Vendor")
	}

	var productModels []*model.ProductModel
	if err := query.
		Order(productOrder(sort)).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainList(productModels), total, nil
}

// ListLowStock returns tracked, active products at or below their threshold.
func (repo *productRepository) ListLowStock(ctx context.Context, vendorID *uuid.UUID) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Preload("Category").
		Where("track_inventory = ? AND is_active = ? AND stock <= low_stock_threshold", true, true)
	if vendorID != nil {
		query = query.Where("vendor_id = ?", *vendorID)
	}

	var productModels []*model.ProductModel
	if err := query.
		Order("vendor_id ASC").
		Order("stock ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list low stock products")
	}

	return toProductDomainList(productModels), nil
}

func (repo *productRepository) findOne(query *gorm.DB, details string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := query.First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, details)
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) exists(ctx context.Context, excludeID uuid.UUID, condition string, args ...any) (bool, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where(condition, args...)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check product uniqueness")
	}

	return count > 0, nil
}

func publiclyVisible(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ? AND admin_approved = ? AND status = ?", true, true, string(entity.ProductActive))
}

func productFilterScope(filter repository.ProductFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.PublicOnly {
			db = publiclyVisible(db)
		}
		if filter.VendorID != nil {
			db = db.Where("vendor_id = ?", *filter.VendorID)
		}
		if filter.CategoryID != nil {
			db = db.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}
		if filter.Featured != nil {
			db = db.Where("is_featured = ?", *filter.Featured)
		}
		if filter.MinPrice != nil {
			db = db.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			db = db.Where("price <= ?", *filter.MaxPrice)
		}
		if search := strings.TrimSpace(filter.Search); search != "" {
			pattern := "%" + likeEscaper.Replace(search) + "%"
			if filter.PublicOnly {
				db = db.Where("(name ILIKE ? OR description ILIKE ? OR ? = ANY(tags))", pattern, pattern, search)
			} else {
				db = db.Where("(name ILIKE ? OR description ILIKE ? OR sku ILIKE ?)", pattern, pattern, pattern)
			}
		}

		return db
	}
}

func productOrder(sort repository.ProductSort) clause.OrderByColumn {
	field := sort.Field
	switch field {
	case repository.SortByCreatedAt, repository.SortByUpdatedAt, repository.SortByName,
		repository.SortByPrice, repository.SortByStock:
	default:
		field = repository.SortByCreatedAt
	}

	return clause.OrderByColumn{
		Column: clause.Column{Name: string(field)},
		Desc:   sort.Order != entity.SortAsc,
	}
}

func translateProductWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return uniqueViolationError(err)
	case isForeignKeyConstraintViolation(err):
		return repository.ErrInvalidReference
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("price and stock must not be negative")
	case isNumericOutOfRange(err):
		return domainerrors.ErrValidationFailed.WithDetails("numeric value out of range")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

func toProductDomainList(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:                data.ID,
		VendorID:          data.VendorID,
		CategoryID:        data.CategoryID,
		Name:              data.Name,
		Description:       data.Description,
		Slug:              data.Slug,
		SKU:               data.SKU,
		Price:             data.Price,
		ComparePrice:      fromNullDecimal(data.ComparePrice),
		CostPrice:         fromNullDecimal(data.CostPrice),
		Stock:             data.Stock,
		LowStockThreshold: data.LowStockThreshold,
		TrackInventory:    data.TrackInventory,
		Status:            entity.ProductStatus(data.Status),
		AdminApproved:     data.AdminApproved,
		IsActive:          data.IsActive,
		IsFeatured:        data.IsFeatured,
		Images:            []string(data.Images),
		FeaturedImage:     data.FeaturedImage,
		Tags:              []string(data.Tags),
		MetaTitle:         data.MetaTitle,
		MetaDescription:   data.MetaDescription,
		Weight:            fromNullDecimal(data.Weight),
		Dimensions:        data.Dimensions,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	if data.Category != nil {
		product.Category = &entity.CategoryRef{ID: data.Category.ID, Name: data.Category.Name, Slug: data.Category.Slug}
	}

	if data.Vendor != nil {
		product.Vendor = &entity.VendorRef{
			ID:           data.Vendor.ID,
			StoreName:    data.Vendor.StoreName,
			FirstName:    data.Vendor.FirstName,
			LastName:     data.Vendor.LastName,
			ProfilePhoto: data.Vendor.ProfilePhotoURL,
			City:         data.Vendor.City,
			State:        data.Vendor.State,
		}
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                data.ID,
		VendorID:          data.VendorID,
		CategoryID:        data.CategoryID,
		Name:              data.Name,
		Description:       data.Description,
		Slug:              data.Slug,
		SKU:               data.SKU,
		Price:             data.Price,
		ComparePrice:      toNullDecimal(data.ComparePrice),
		CostPrice:         toNullDecimal(data.CostPrice),
		Stock:             data.Stock,
		LowStockThreshold: data.LowStockThreshold,
		TrackInventory:    data.TrackInventory,
		Status:            string(data.Status),
		AdminApproved:     data.AdminApproved,
		IsActive:          data.IsActive,
		IsFeatured:        data.IsFeatured,
		Images:            stringArray(data.Images),
		FeaturedImage:     data.FeaturedImage,
		Tags:              stringArray(data.Tags),
		MetaTitle:         data.MetaTitle,
		MetaDescription:   data.MetaDescription,
		Weight:            toNullDecimal(data.Weight),
		Dimensions:        data.Dimensions,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// stringArray never returns nil; pq encodes a nil array as NULL.
func stringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}

	return pq.StringArray(values)
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}

	v := d.Decimal

	return &v
}
