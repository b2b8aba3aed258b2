package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryUsecase manages the catalog tree.
type CategoryUsecase interface {
	Create(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)
	// ToggleStatus flips the active flag.
	ToggleStatus(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	// Delete removes a leaf category that no product references.
	Delete(ctx context.Context, id uuid.UUID) error

	// Get loads one category with its children. Public callers only see active categories and
	// count publicly visible products.
	Get(ctx context.Context, id uuid.UUID, includeInactive bool) (*entity.Category, error)

	ListAdmin(ctx context.Context, input *ListCategoriesInput) ([]*entity.Category, error)
	ListActive(ctx context.Context, input *ListCategoriesInput) ([]*entity.Category, error)
	// Tree returns active roots with their active children.
	Tree(ctx context.Context) ([]*entity.Category, error)
}

// CreateCategoryInput describes a new category.
type CreateCategoryInput struct {
	Name        string
	Description string
	ParentID    *uuid.UUID
	SortOrder   int
}

// UpdateCategoryInput holds the fields to change. Nil pointers are left untouched.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	// ParentID re-parents the category when ParentSet is true; nil then makes it a root.
	ParentID  *uuid.UUID
	ParentSet bool
	SortOrder *int
	IsActive  *bool
}

// ListCategoriesInput narrows category listings.
type ListCategoriesInput struct {
	IncludeInactive bool
	// Parent is empty for every level, "null" for roots, or a parent id.
	Parent string
}
