package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:products_vendor_sku_key,priority:1;uniqueIndex:products_vendor_name_key,priority:1"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:products_vendor_name_key,priority:2"`
	Description string    `gorm:"type:text;not null"`
	Slug        string    `gorm:"type:varchar(120);not null;uniqueIndex:products_slug_key"`
	SKU         *string   `gorm:"column:sku;type:varchar(50);uniqueIndex:products_vendor_sku_key,priority:2"`

	Price        decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	ComparePrice decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	CostPrice    decimal.NullDecimal `gorm:"type:numeric(12,2)"`

	Stock             int  `gorm:"not null"`
	LowStockThreshold int  `gorm:"not null"`
	TrackInventory    bool `gorm:"not null"`

	Status        string `gorm:"type:varchar(20);not null;index:products_visibility_idx,priority:1"`
	AdminApproved bool   `gorm:"not null;index:products_visibility_idx,priority:2"`
	IsActive      bool   `gorm:"not null;index:products_visibility_idx,priority:3"`
	IsFeatured    bool   `gorm:"not null"`

	Images          pq.StringArray      `gorm:"type:text[];not null"`
	FeaturedImage   string              `gorm:"type:varchar(512);not null"`
	Tags            pq.StringArray      `gorm:"type:text[];not null"`
	MetaTitle       string              `gorm:"type:varchar(255);not null"`
	MetaDescription string              `gorm:"type:text;not null"`
	Weight          decimal.NullDecimal `gorm:"type:numeric(10,3)"`
	Dimensions      string              `gorm:"type:varchar(100);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Vendor   *AccountModel  `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
