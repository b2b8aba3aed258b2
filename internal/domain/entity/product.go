package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus is the vendor/moderation-controlled state of a product.
type ProductStatus string

const (
	ProductDraft    ProductStatus = "DRAFT"
	ProductActive   ProductStatus = "ACTIVE"
	ProductInactive ProductStatus = "INACTIVE"
	ProductRejected ProductStatus = "REJECTED"
)

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductDraft, ProductActive, ProductInactive, ProductRejected:
		return true
	default:
		return false
	}
}

// DefaultLowStockThreshold applies when a vendor leaves the threshold unset.
const DefaultLowStockThreshold = 5

// Product is a vendor-owned catalog item.
type Product struct {
	ID         uuid.UUID
	VendorID   uuid.UUID
	CategoryID uuid.UUID

	Name        string
	Description string
	Slug        string  // Unique across all products.
	SKU         *string // Upper-cased, unique per vendor.

	Price        decimal.Decimal
	ComparePrice *decimal.Decimal
	CostPrice    *decimal.Decimal

	Stock             int
	LowStockThreshold int
	TrackInventory    bool

	Status        ProductStatus
	AdminApproved bool // Independent of Status; set only by moderation.
	IsActive      bool
	IsFeatured    bool

	Images          []string
	FeaturedImage   string
	Tags            []string
	MetaTitle       string
	MetaDescription string
	Weight          *decimal.Decimal
	Dimensions      string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Filled by read queries.
	Category *CategoryRef
	Vendor   *VendorRef
}

// VendorRef is the public summary of a product's owner.
type VendorRef struct {
	ID           uuid.UUID `json:"id"`
	StoreName    string    `json:"storeName"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
}

// IsPubliclyVisible is the conjunction of the three independent visibility gates.
func (p *Product) IsPubliclyVisible() bool {
	return p.IsActive && p.AdminApproved && p.Status == ProductActive
}

// IsLowStock reports whether an inventory-tracked, active product is at or below its threshold.
func (p *Product) IsLowStock() bool {
	return p.TrackInventory && p.IsActive && p.Stock <= p.LowStockThreshold
}

// IsOwnedBy reports whether vendorID owns the product.
func (p *Product) IsOwnedBy(vendorID uuid.UUID) bool {
	return p.VendorID == vendorID
}
