package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for category persistence.
var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrDuplicateCategoryName = errors.New("category name already exists")
	ErrDuplicateCategorySlug = errors.New("category slug already exists")
	// ErrCategoryInUse is returned when a delete is blocked by referencing rows.
	ErrCategoryInUse = errors.New("category still referenced")
)

// CategoryFilter narrows category listings.
type CategoryFilter struct {
	// IDs restricts to the given categories.
	IDs             []uuid.UUID
	IncludeInactive bool
	// RootsOnly restricts to categories without a parent. Ignored when ParentIDs is set.
	RootsOnly bool
	// ParentIDs restricts to direct children of the given categories.
	ParentIDs []uuid.UUID
	// ActiveChildrenOnly counts only active children in ChildCount.
	ActiveChildrenOnly bool
	// VisibleProductsOnly counts only publicly visible products in ProductCount.
	VisibleProductsOnly bool
}

// CategoryRepository defines persistence operations for the category tree.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID loads a category with its parent reference.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// NameExists reports whether another category (not excludeID) uses the name.
	NameExists(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	// SlugExists reports whether another category (not excludeID) uses the slug.
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	// List returns categories ordered by sort order then name, with child and product counts.
	List(ctx context.Context, filter CategoryFilter) ([]*entity.Category, error)

	CountChildren(ctx context.Context, id uuid.UUID) (int64, error)
	CountProducts(ctx context.Context, id uuid.UUID) (int64, error)

	// AncestorIDs returns the ids on the path from id up to its root, starting with id itself.
	AncestorIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)

	// LockHierarchy serialises reparenting until the surrounding transaction ends.
	LockHierarchy(ctx context.Context) error

	Count(ctx context.Context) (int64, error)
}
