package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for product persistence.
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrDuplicateProductName = errors.New("product name already exists for vendor")
	ErrDuplicateProductSlug = errors.New("product slug already exists")
	ErrDuplicateSKU         = errors.New("sku already exists for vendor")
	// ErrInvalidReference is returned when a vendor or category reference does not exist.
	ErrInvalidReference = errors.New("invalid product reference")
)

// ProductSortField is a whitelisted sort column.
type ProductSortField string

const (
	SortByCreatedAt ProductSortField = "created_at"
	SortByUpdatedAt ProductSortField = "updated_at"
	SortByName      ProductSortField = "name"
	SortByPrice     ProductSortField = "price"
	SortByStock     ProductSortField = "stock"
)

// ProductSort orders product listings.
type ProductSort struct {
	Field ProductSortField
	Order entity.SortOrder
}

// ProductFilter narrows product listings. Nil pointers mean "no constraint".
type ProductFilter struct {
	VendorID   *uuid.UUID
	CategoryID *uuid.UUID
	Status     *entity.ProductStatus
	// Search matches name or description case-insensitively, plus sku for
	// vendor and admin listings or an exact tag for public ones.
	Search string
	// PublicOnly applies the three visibility gates.
	PublicOnly bool
	Featured   *bool
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	// WithVendor preloads the owning vendor's public profile.
	WithVendor bool
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error
	// UpdateModeration writes the approval flag and status together.
	UpdateModeration(ctx context.Context, id uuid.UUID, approved bool, status entity.ProductStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID loads a product with its category reference.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// FindPublicByID loads a publicly visible product with category and vendor references.
	FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	NameExists(ctx context.Context, vendorID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	SKUExists(ctx context.Context, vendorID uuid.UUID, sku string, excludeID uuid.UUID) (bool, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	List(ctx context.Context, filter ProductFilter, sort ProductSort, page entity.PageRequest) ([]*entity.Product, int64, error)

	// ListLowStock returns tracked, active products at or below their threshold ordered by
	// vendor then ascending stock. A nil vendorID spans every vendor.
	ListLowStock(ctx context.Context, vendorID *uuid.UUID) ([]*entity.Product, error)
}
