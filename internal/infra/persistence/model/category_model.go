package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table, a self-referencing tree.
type CategoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex:categories_name_key"`
	Slug        string     `gorm:"type:varchar(120);not null;uniqueIndex:categories_slug_key"`
	Description string     `gorm:"type:text;not null"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	IsActive    bool       `gorm:"not null"`
	SortOrder   int        `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Parent *CategoryModel `gorm:"foreignKey:ParentID"`

	// Read-only aggregates filled by list queries.
	ChildCount   int64 `gorm:"->;-:migration"`
	ProductCount int64 `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
