package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxCategoryDepth bounds the ancestor walk so a corrupted tree cannot loop forever.
const maxCategoryDepth = 64

// categoryHierarchyLockKey is the advisory lock id guarding category moves.
const categoryHierarchyLockKey int64 = 0x63617467

const ancestorsQuery = `
WITH RECURSIVE chain AS (
	SELECT id, parent_id, 1 AS depth FROM categories WHERE id = ?
	UNION ALL
	SELECT c.id, c.parent_id, chain.depth + 1
	FROM categories c JOIN chain ON c.id = chain.parent_id
	WHERE chain.depth < ?
)
SELECT id FROM chain ORDER BY depth`

const visibleProductPredicate = "p.is_active AND p.admin_approved AND p.status = 'ACTIVE'"

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)
	if err := repo.db.WithContext(ctx).Omit("Parent").Create(categoryM).Error; err != nil {
		return translateCategoryWriteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	category.UpdatedAt = time.Now()
	categoryM := fromCategoryDomain(category)

	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{ID: category.ID}).
		Select("name", "slug", "description", "parent_id", "is_active", "sort_order", "updated_at").
		Updates(categoryM)
	if result.Error != nil {
		return translateCategoryWriteError(result.Error, "failed to update category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryInUse
		}

		return errors.Wrap(result.Error, "failed to delete category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// FindByID loads one category with its parent reference and unfiltered counts.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Select(categorySelect(repository.CategoryFilter{})).
		Preload("Parent").
		Where("categories.id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) NameExists(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, "name = ?", name, excludeID)
}

func (repo *categoryRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, "slug = ?", slug, excludeID)
}

// List returns categories ordered by sort order then name.
func (repo *categoryRepository) List(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx).
		Select(categorySelect(filter)).
		Preload("Parent")

	if !filter.IncludeInactive {
		query = query.Where("categories.is_active = ?", true)
	}

	if len(filter.IDs) > 0 {
		query = query.Where("categories.id IN ?", filter.IDs)
	}

	switch {
	case len(filter.ParentIDs) > 0:
		query = query.Where("categories.parent_id IN ?", filter.ParentIDs)
	case filter.RootsOnly:
		query = query.Where("categories.parent_id IS NULL")
	}

	var categoryModels []*model.CategoryModel
	if err := query.
		Order("categories.sort_order ASC").
		Order("categories.name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *categoryRepository) CountChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("parent_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count child categories")
	}

	return count, nil
}

func (repo *categoryRepository) CountProducts(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count category products")
	}

	return count, nil
}

// AncestorIDs walks parent links upwards, starting with id itself.
func (repo *categoryRepository) AncestorIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	rows, err := repo.db.WithContext(ctx).Raw(ancestorsQuery, id, maxCategoryDepth).Rows()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query category ancestors")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var ancestorID uuid.UUID
		if err := rows.Scan(&ancestorID); err != nil {
			return nil, errors.Wrap(err, "failed to scan category ancestor")
		}
		ids = append(ids, ancestorID)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate category ancestors")
	}

	if len(ids) == 0 {
		return nil, repository.ErrCategoryNotFound
	}

	return ids, nil
}

// LockHierarchy takes a transaction-scoped advisory lock. Ancestor walks made after it see every
// committed move, so two concurrent moves cannot each pass the cycle check.
func (repo *categoryRepository) LockHierarchy(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", categoryHierarchyLockKey).Error; err != nil {
		return errors.Wrap(err, "failed to lock category hierarchy")
	}

	return nil
}

func (repo *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count categories")
	}

	return count, nil
}

func (repo *categoryRepository) exists(ctx context.Context, condition string, value any, excludeID uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Where(condition, value)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check category uniqueness")
	}

	return count > 0, nil
}

// categorySelect adds the derived child and product counts as correlated subqueries.
func categorySelect(filter repository.CategoryFilter) string {
	childCount := "SELECT COUNT(*) FROM categories AS c WHERE c.parent_id = categories.id"
	if filter.ActiveChildrenOnly {
		childCount += " AND c.is_active"
	}

	productCount := "SELECT COUNT(*) FROM products AS p WHERE p.category_id = categories.id"
	if filter.VisibleProductsOnly {
		productCount += " AND " + visibleProductPredicate
	}

	return "categories.*, (" + childCount + ") AS child_count, (" + productCount + ") AS product_count"
}

func translateCategoryWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return uniqueViolationError(err)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrParentNotFound
	case isCheckConstraintViolation(err):
		return domainerrors.ErrCategoryCycle
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	category := &entity.Category{
		ID:           data.ID,
		Name:         data.Name,
		Slug:         data.Slug,
		Description:  data.Description,
		ParentID:     data.ParentID,
		IsActive:     data.IsActive,
		SortOrder:    data.SortOrder,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		ChildCount:   data.ChildCount,
		ProductCount: data.ProductCount,
	}

	if data.Parent != nil {
		category.Parent = &entity.CategoryRef{ID: data.Parent.ID, Name: data.Parent.Name, Slug: data.Parent.Slug}
	}

	return category
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		ParentID:    data.ParentID,
		IsActive:    data.IsActive,
		SortOrder:   data.SortOrder,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
