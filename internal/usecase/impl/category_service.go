package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/validation"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// rootsParam selects root categories in listing queries.
const rootsParam = "null"

type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a category with a unique name and a slug disambiguated by numeric suffix.
func (srv *categoryService) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if err := validation.Required(map[string]string{"name": name}); err != nil {
		return nil, err
	}
	if err := validation.Name(name); err != nil {
		return nil, err
	}

	var created *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		taken, err := categoryRepo.NameExists(ctx, name, uuid.Nil)
		if err != nil {
			return errors.Wrap(err, "failed to check category name")
		}
		if taken {
			return domainerrors.ErrCategoryExists
		}

		if input.ParentID != nil {
			if _, err := categoryRepo.FindByID(ctx, *input.ParentID); err != nil {
				return findCategoryError(err, domainerrors.ErrParentNotFound)
			}
		}

		slug, err := validation.NextSlug(validation.Slugify(name), func(candidate string) (bool, error) {
			return categoryRepo.SlugExists(ctx, candidate, uuid.Nil)
		})
		if err != nil {
			return err
		}

		category := &entity.Category{
			Name:        name,
			Slug:        slug,
			Description: strings.TrimSpace(input.Description),
			ParentID:    input.ParentID,
			IsActive:    true,
			SortOrder:   input.SortOrder,
		}
		if err := categoryRepo.Create(ctx, category); err != nil {
			return categoryWriteError(err)
		}

		created, err = categoryRepo.FindByID(ctx, category.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload category")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category created", slog.String("category_id", created.ID.String()), slog.String("slug", created.Slug))

	return created, nil
}

// Update changes a category. The slug is regenerated only when the name actually changes, and a
// new parent may be neither the category itself nor one of its descendants.
func (srv *categoryService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	var updated *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		category, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			return findCategoryError(err, domainerrors.ErrCategoryNotFound)
		}

		if input.Name != nil {
			if err := srv.rename(ctx, categoryRepo, category, strings.TrimSpace(*input.Name)); err != nil {
				return err
			}
		}

		if input.ParentSet {
			if err := checkParent(ctx, categoryRepo, id, input.ParentID); err != nil {
				return err
			}
			category.ParentID = input.ParentID
		}

		if input.Description != nil {
			category.Description = strings.TrimSpace(*input.Description)
		}
		if input.SortOrder != nil {
			category.SortOrder = *input.SortOrder
		}
		if input.IsActive != nil {
			category.IsActive = *input.IsActive
		}

		if err := categoryRepo.Update(ctx, category); err != nil {
			return categoryWriteError(err)
		}

		updated, err = categoryRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload category")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category updated", slog.String("category_id", id.String()))

	return updated, nil
}

// ToggleStatus flips the active flag.
func (srv *categoryService) ToggleStatus(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var toggled *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		category, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			return findCategoryError(err, domainerrors.ErrCategoryNotFound)
		}

		category.IsActive = !category.IsActive
		if err := categoryRepo.Update(ctx, category); err != nil {
			return categoryWriteError(err)
		}
		toggled = category

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category status toggled",
		slog.String("category_id", id.String()),
		slog.Bool("is_active", toggled.IsActive),
	)

	return toggled, nil
}

// Delete removes a category that has neither products nor children.
func (srv *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		if _, err := categoryRepo.FindByID(ctx, id); err != nil {
			return findCategoryError(err, domainerrors.ErrCategoryNotFound)
		}

		products, err := categoryRepo.CountProducts(ctx, id)
		if err != nil {
			return err
		}
		if products > 0 {
			return domainerrors.ErrCategoryHasProducts
		}

		children, err := categoryRepo.CountChildren(ctx, id)
		if err != nil {
			return err
		}
		if children > 0 {
			return domainerrors.ErrCategoryHasChildren
		}

		if err := categoryRepo.Delete(ctx, id); err != nil {
			switch {
			case errors.Is(err, repository.ErrCategoryInUse):
				return domainerrors.ErrConflict.WithMessage("Category is still in use")
			case errors.Is(err, repository.ErrCategoryNotFound):
				return domainerrors.ErrCategoryNotFound
			default:
				return errors.Wrap(err, "failed to delete category")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Category deleted", slog.String("category_id", id.String()))

	return nil
}

// Get loads one category with its direct children.
func (srv *categoryService) Get(ctx context.Context, id uuid.UUID, includeInactive bool) (*entity.Category, error) {
	filter := repository.CategoryFilter{
		IDs:                 []uuid.UUID{id},
		IncludeInactive:     includeInactive,
		ActiveChildrenOnly:  !includeInactive,
		VisibleProductsOnly: !includeInactive,
	}

	categories, err := srv.categoryRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}
	if len(categories) == 0 {
		return nil, domainerrors.ErrCategoryNotFound
	}

	if err := srv.attachChildren(ctx, categories, filter); err != nil {
		return nil, err
	}

	return categories[0], nil
}

// ListAdmin lists categories for administration, optionally including inactive ones.
func (srv *categoryService) ListAdmin(ctx context.Context, input *usecase.ListCategoriesInput) ([]*entity.Category, error) {
	filter := repository.CategoryFilter{IncludeInactive: input.IncludeInactive}

	return srv.list(ctx, input.Parent, filter)
}

// ListActive lists active categories with active children and visible product counts.
func (srv *categoryService) ListActive(ctx context.Context, input *usecase.ListCategoriesInput) ([]*entity.Category, error) {
	filter := repository.CategoryFilter{ActiveChildrenOnly: true, VisibleProductsOnly: true}

	return srv.list(ctx, input.Parent, filter)
}

// Tree returns active roots, each with its active children.
func (srv *categoryService) Tree(ctx context.Context) ([]*entity.Category, error) {
	return srv.list(ctx, rootsParam, repository.CategoryFilter{ActiveChildrenOnly: true, VisibleProductsOnly: true})
}

func (srv *categoryService) list(ctx context.Context, parent string, filter repository.CategoryFilter) ([]*entity.Category, error) {
	switch parent = strings.TrimSpace(parent); parent {
	case "":
	case rootsParam:
		filter.RootsOnly = true
	default:
		parentID, err := uuid.Parse(parent)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid parentId")
		}
		filter.ParentIDs = []uuid.UUID{parentID}
	}

	categories, err := srv.categoryRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	if err := srv.attachChildren(ctx, categories, filter); err != nil {
		return nil, err
	}

	return categories, nil
}

// attachChildren loads one level of children for categories with a single query.
func (srv *categoryService) attachChildren(ctx context.Context, categories []*entity.Category, filter repository.CategoryFilter) error {
	if len(categories) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	parentIDs := make([]uuid.UUID, 0, len(categories))
	for _, category := range categories {
		category.Children = []*entity.Category{}
		byID[category.ID] = category
		parentIDs = append(parentIDs, category.ID)
	}

	children, err := srv.categoryRepo.List(ctx, repository.CategoryFilter{
		ParentIDs:           parentIDs,
		IncludeInactive:     filter.IncludeInactive,
		ActiveChildrenOnly:  filter.ActiveChildrenOnly,
		VisibleProductsOnly: filter.VisibleProductsOnly,
	})
	if err != nil {
		return errors.Wrap(err, "failed to list child categories")
	}

	for _, child := range children {
		if child.ParentID == nil {
			continue
		}
		if parent, ok := byID[*child.ParentID]; ok {
			parent.Children = append(parent.Children, child)
		}
	}

	return nil
}

func (srv *categoryService) rename(ctx context.Context, categoryRepo repository.CategoryRepository, category *entity.Category, name string) error {
	if name == category.Name {
		return nil
	}
	if err := validation.Name(name); err != nil {
		return err
	}

	taken, err := categoryRepo.NameExists(ctx, name, category.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check category name")
	}
	if taken {
		return domainerrors.ErrCategoryExists
	}

	slug, err := validation.NextSlug(validation.Slugify(name), func(candidate string) (bool, error) {
		return categoryRepo.SlugExists(ctx, candidate, category.ID)
	})
	if err != nil {
		return err
	}

	category.Name = name
	category.Slug = slug

	return nil
}

// checkParent rejects self-parenting, unknown parents and parents below the category itself.
func checkParent(ctx context.Context, categoryRepo repository.CategoryRepository, id uuid.UUID, parentID *uuid.UUID) error {
	if parentID == nil {
		return nil
	}
	if *parentID == id {
		return domainerrors.ErrCategoryCycle
	}

	if err := categoryRepo.LockHierarchy(ctx); err != nil {
		return errors.WithStack(err)
	}

	ancestors, err := categoryRepo.AncestorIDs(ctx, *parentID)
	if err != nil {
		return findCategoryError(err, domainerrors.ErrParentNotFound)
	}
	if slices.Contains(ancestors, id) {
		return domainerrors.ErrCategoryCycle.WithMessage("Category cannot be moved under its own subcategory")
	}

	return nil
}

func findCategoryError(err error, notFound error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return notFound
	}

	return errors.Wrap(err, "failed to find category")
}

func categoryWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateCategoryName):
		return errors.Wrap(domainerrors.ErrCategoryExists, err.Error())
	case errors.IsAny(err, repository.ErrDuplicateCategorySlug, repository.ErrDuplicate):
		return errors.Wrap(domainerrors.ErrConflict, err.Error())
	case errors.Is(err, repository.ErrCategoryNotFound):
		return domainerrors.ErrCategoryNotFound
	default:
		return errors.Wrap(err, "failed to save category")
	}
}
