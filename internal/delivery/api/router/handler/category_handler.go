package handler

import (
	"log/slog"
	"strings"

	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves the public catalog tree and admin category management.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CreateCategoryRequest is the admin create body.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description" validate:"max=1000"`
	ParentID    string `json:"parentId"`
	SortOrder   int    `json:"sortOrder"`
}

// UpdateCategoryRequest is the admin update body. Absent fields are left untouched and an
// explicit null parentId moves the category to the root.
type UpdateCategoryRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description" validate:"omitempty,max=1000"`
	ParentID    optionalParent `json:"parentId"`
	SortOrder   *int           `json:"sortOrder"`
	IsActive    *bool          `json:"isActive"`
}

// CategoryQuery filters category listings. ParentID "null" selects roots.
type CategoryQuery struct {
	ParentID        string `query:"parentId"`
	IncludeInactive bool   `query:"includeInactive"`
}

// ListActive lists active categories with their active children.
func (h *CategoryHandler) ListActive(c echo.Context) error {
	var query CategoryQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	categories, err := h.categoryUC.ListActive(c.Request().Context(), &usecase.ListCategoriesInput{Parent: query.ParentID})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newCategoryResponses(categories), "Status retrieved")
}

// Tree returns active roots with their active children.
func (h *CategoryHandler) Tree(c echo.Context) error {
	categories, err := h.categoryUC.Tree(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newCategoryResponses(categories), "Status retrieved")
}

// GetPublic returns one active category.
func (h *CategoryHandler) GetPublic(c echo.Context) error {
	return h.get(c, false)
}

// GetAdmin returns one category regardless of its active flag.
func (h *CategoryHandler) GetAdmin(c echo.Context) error {
	return h.get(c, true)
}

// ListAdmin lists categories for management.
func (h *CategoryHandler) ListAdmin(c echo.Context) error {
	var query CategoryQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	categories, err := h.categoryUC.ListAdmin(c.Request().Context(), &usecase.ListCategoriesInput{
		IncludeInactive: query.IncludeInactive,
		Parent:          query.ParentID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newCategoryResponses(categories), "Status retrieved")
}

// Create adds a category.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CreateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
		SortOrder:   req.SortOrder,
	}
	if parent := strings.TrimSpace(req.ParentID); parent != "" {
		parentID, err := uuid.Parse(parent)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithMessage("Invalid parentId")
		}
		input.ParentID = &parentID
	}

	category, err := h.categoryUC.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newCategoryResponse(category), "Category created successfully")
}

// Update changes a category.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.Update(c.Request().Context(), id, &usecase.UpdateCategoryInput{
		Name:        req.Name,
		Description: trimmedPtr(req.Description),
		ParentID:    req.ParentID.ID,
		ParentSet:   req.ParentID.Set,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newCategoryResponse(category), "Category updated successfully")
}

// ToggleStatus flips the active flag.
func (h *CategoryHandler) ToggleStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Category deactivated successfully"
	if category.IsActive {
		message = "Category activated successfully"
	}

	return response.OK(c, newCategoryResponse(category), message)
}

// Delete removes an empty leaf category.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Category deleted successfully")
}

func (h *CategoryHandler) get(c echo.Context, includeInactive bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.Get(c.Request().Context(), id, includeInactive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newCategoryResponse(category), "Status retrieved")
}
