package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the catalog tree.
type Category struct {
	ID          uuid.UUID
	Name        string     // Unique across all categories.
	Slug        string     // Unique, derived from Name.
	Description string
	ParentID    *uuid.UUID // Nil for roots.
	IsActive    bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Derived, filled by read queries only.
	Parent       *CategoryRef
	Children     []*Category
	ChildCount   int64
	ProductCount int64
}

// CategoryRef is the compact form embedded in products and child listings.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// Ref returns the compact form of the category.
func (c *Category) Ref() *CategoryRef {
	return &CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
