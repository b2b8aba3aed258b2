package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase covers vendor product management, the public catalog and admin moderation.
type ProductUsecase interface {
	// Create adds a DRAFT, unapproved product owned by vendorID.
	Create(ctx context.Context, vendorID uuid.UUID, input *ProductInput) (*entity.Product, error)
	ListVendor(ctx context.Context, vendorID uuid.UUID, query *ProductQuery) (*ProductPage, error)
	Update(ctx context.Context, vendorID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	SetStatus(ctx context.Context, vendorID, productID uuid.UUID, status string) (*entity.Product, error)
	Delete(ctx context.Context, vendorID, productID uuid.UUID) error
	// LowStock lists the vendor's tracked, active products at or below their threshold.
	LowStock(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error)

	ListPublic(ctx context.Context, query *ProductQuery) (*ProductPage, error)
	GetPublic(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	ListAdmin(ctx context.Context, query *ProductQuery) (*ProductPage, error)
	Moderate(ctx context.Context, admin *entity.Account, productID uuid.UUID, input *ModerateProductInput) (*entity.Product, error)

	// LowStockDigest groups every vendor's low-stock products by vendor.
	LowStockDigest(ctx context.Context) ([]*LowStockDigest, error)
}

// ProductInput is the product form. Numeric fields arrive as text so that both JSON numbers and
// strings are accepted and validated in one place.
type ProductInput struct {
	CategoryID        string
	Name              string
	Description       string
	Price             string
	ComparePrice      string
	CostPrice         string
	SKU               string
	Stock             string
	LowStockThreshold *int
	TrackInventory    *bool
	IsFeatured        bool
	Images            []string
	FeaturedImage     string
	Tags              []string
	MetaTitle         string
	MetaDescription   string
	Weight            string
	Dimensions        string
}

// UpdateProductInput holds the fields to change. Nil pointers are left untouched.
type UpdateProductInput struct {
	CategoryID        *string
	Name              *string
	Description       *string
	Price             *string
	ComparePrice      *string
	CostPrice         *string
	SKU               *string
	Stock             *string
	LowStockThreshold *int
	TrackInventory    *bool
	IsActive          *bool
	IsFeatured        *bool
	Images            []string
	FeaturedImage     *string
	Tags              []string
	MetaTitle         *string
	MetaDescription   *string
	Weight            *string
	Dimensions        *string
}

// ProductQuery is the raw listing query shared by vendor, public and admin listings.
// Filters that do not apply to a listing are ignored.
type ProductQuery struct {
	Page       int
	Limit      int
	Status     string
	CategoryID string
	VendorID   string
	Search     string
	Featured   bool
	MinPrice   string
	MaxPrice   string
	SortBy     string
	SortOrder  string
}

// ModerateProductInput is an admin decision on a product.
type ModerateProductInput struct {
	Action string
	Reason string
}

// ProductPage is one page of products.
type ProductPage struct {
	Products   []*entity.Product
	Pagination entity.Pagination
}

// LowStockDigest is the low-stock list of one vendor.
type LowStockDigest struct {
	VendorID uuid.UUID
	Products []*entity.Product
}
