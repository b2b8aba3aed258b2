package handler

import (
	"log/slog"
	"strings"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/policy"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves vendor product management, the public catalog and moderation.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductRequest is the create body. Prices and stock accept numbers or numeric strings.
type ProductRequest struct {
	CategoryID        string     `json:"categoryId"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Price             numberText `json:"price"`
	ComparePrice      numberText `json:"comparePrice"`
	CostPrice         numberText `json:"costPrice"`
	SKU               string     `json:"sku"`
	Stock             numberText `json:"stock"`
	LowStockThreshold *int       `json:"lowStockThreshold"`
	TrackInventory    *bool      `json:"trackInventory"`
	IsFeatured        bool       `json:"isFeatured"`
	Images            []string   `json:"images" validate:"omitempty,max=10,dive,url"`
	FeaturedImage     string     `json:"featuredImage" validate:"omitempty,url"`
	Tags              []string   `json:"tags" validate:"omitempty,max=20"`
	MetaTitle         string     `json:"metaTitle" validate:"max=255"`
	MetaDescription   string     `json:"metaDescription" validate:"max=500"`
	Weight            numberText `json:"weight"`
	Dimensions        string     `json:"dimensions"`
}

// UpdateProductRequest is the update body. Absent fields are left untouched.
type UpdateProductRequest struct {
	CategoryID        *string     `json:"categoryId"`
	Name              *string     `json:"name"`
	Description       *string     `json:"description"`
	Price             *numberText `json:"price"`
	ComparePrice      *numberText `json:"comparePrice"`
	CostPrice         *numberText `json:"costPrice"`
	SKU               *string     `json:"sku"`
	Stock             *numberText `json:"stock"`
	LowStockThreshold *int        `json:"lowStockThreshold"`
	TrackInventory    *bool       `json:"trackInventory"`
	IsActive          *bool       `json:"isActive"`
	IsFeatured        *bool       `json:"isFeatured"`
	Images            []string    `json:"images" validate:"omitempty,max=10,dive,url"`
	FeaturedImage     *string     `json:"featuredImage" validate:"omitempty,url"`
	Tags              []string    `json:"tags" validate:"omitempty,max=20"`
	MetaTitle         *string     `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription   *string     `json:"metaDescription" validate:"omitempty,max=500"`
	Weight            *numberText `json:"weight"`
	Dimensions        *string     `json:"dimensions"`
}

// ProductStatusRequest is a vendor status change.
type ProductStatusRequest struct {
	Status string `json:"status"`
}

// ModerateProductRequest is an admin decision on a product.
type ModerateProductRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason" validate:"max=500"`
}

// ProductListQuery is shared by vendor, public and admin listings.
type ProductListQuery struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	Status     string `query:"status"`
	CategoryID string `query:"categoryId"`
	VendorID   string `query:"vendorId"`
	Search     string `query:"search"`
	Featured   bool   `query:"featured"`
	MinPrice   string `query:"minPrice"`
	MaxPrice   string `query:"maxPrice"`
	SortBy     string `query:"sortBy"`
	SortOrder  string `query:"sortOrder"`
}

// Create adds a product owned by the caller.
func (h *ProductHandler) Create(c echo.Context) error {
	caller, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.Create(c.Request().Context(), caller.ID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newProductResponse(product), "Product created successfully")
}

// ListVendor pages through the caller's products.
func (h *ProductHandler) ListVendor(c echo.Context) error {
	caller, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	query, err := h.query(c)
	if err != nil {
		return err
	}

	page, err := h.productUC.ListVendor(c.Request().Context(), caller.ID, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newProductPageResponse(page, newProductResponse), "Status retrieved")
}

// LowStock lists the caller's products at or below their threshold.
func (h *ProductHandler) LowStock(c echo.Context) error {
	caller, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	products, err := h.productUC.LowStock(c.Request().Context(), caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newProductResponses(products, newProductResponse), "Status retrieved")
}

// Update changes one of the caller's products.
func (h *ProductHandler) Update(c echo.Context) error {
	caller, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.Update(c.Request().Context(), caller.ID, productID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newProductResponse(product), "Product updated successfully")
}

// SetStatus moves one of the caller's products between DRAFT, ACTIVE and INACTIVE.
func (h *ProductHandler) SetStatus(c echo.Context) error {
	caller, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProductStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.SetStatus(c.Request().Context(), caller.ID, productID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newProductResponse(product), "Product status updated successfully")
}

// Delete removes one of the caller's products.
func (h *ProductHandler) Delete(c echo.Context) error {
	caller, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.Delete(c.Request().Context(), caller.ID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Product deleted successfully")
}

// ListPublic pages through publicly visible products.
func (h *ProductHandler) ListPublic(c echo.Context) error {
	query, err := h.query(c)
	if err != nil {
		return err
	}

	page, err := h.productUC.ListPublic(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newProductPageResponse(page, newPublicProductResponse), "Status retrieved")
}

// GetPublic returns one publicly visible product.
func (h *ProductHandler) GetPublic(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetPublic(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newPublicProductResponse(product), "Status retrieved")
}

// ListAdmin pages through every product for moderation.
func (h *ProductHandler) ListAdmin(c echo.Context) error {
	query, err := h.query(c)
	if err != nil {
		return err
	}

	page, err := h.productUC.ListAdmin(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newProductPageResponse(page, newProductResponse), "Status retrieved")
}

// Moderate approves or rejects a product.
func (h *ProductHandler) Moderate(c echo.Context) error {
	admin, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ModerateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.Moderate(c.Request().Context(), admin, productID, &usecase.ModerateProductInput{
		Action: req.Action,
		Reason: strings.TrimSpace(req.Reason),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Product approved successfully"
	if action, _ := policy.ParseModerationAction(req.Action); action == policy.ActionReject {
		message = "Product rejected successfully"
	}

	return response.OK(c, newProductResponse(product), message)
}

func (h *ProductHandler) query(c echo.Context) (*usecase.ProductQuery, error) {
	var q ProductListQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}

	return &usecase.ProductQuery{
		Page:       q.Page,
		Limit:      q.Limit,
		Status:     strings.TrimSpace(q.Status),
		CategoryID: strings.TrimSpace(q.CategoryID),
		VendorID:   strings.TrimSpace(q.VendorID),
		Search:     strings.TrimSpace(q.Search),
		Featured:   q.Featured,
		MinPrice:   strings.TrimSpace(q.MinPrice),
		MaxPrice:   strings.TrimSpace(q.MaxPrice),
		SortBy:     strings.TrimSpace(q.SortBy),
		SortOrder:  strings.TrimSpace(q.SortOrder),
	}, nil
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		CategoryID:        strings.TrimSpace(r.CategoryID),
		Name:              strings.TrimSpace(r.Name),
		Description:       strings.TrimSpace(r.Description),
		Price:             string(r.Price),
		ComparePrice:      string(r.ComparePrice),
		CostPrice:         string(r.CostPrice),
		SKU:               r.SKU,
		Stock:             string(r.Stock),
		LowStockThreshold: r.LowStockThreshold,
		TrackInventory:    r.TrackInventory,
		IsFeatured:        r.IsFeatured,
		Images:            r.Images,
		FeaturedImage:     strings.TrimSpace(r.FeaturedImage),
		Tags:              r.Tags,
		MetaTitle:         strings.TrimSpace(r.MetaTitle),
		MetaDescription:   strings.TrimSpace(r.MetaDescription),
		Weight:            string(r.Weight),
		Dimensions:        strings.TrimSpace(r.Dimensions),
	}
}

func (r *UpdateProductRequest) toInput() *usecase.UpdateProductInput {
	return &usecase.UpdateProductInput{
		CategoryID:        trimmedPtr(r.CategoryID),
		Name:              trimmedPtr(r.Name),
		Description:       trimmedPtr(r.Description),
		Price:             r.Price.ptr(),
		ComparePrice:      r.ComparePrice.ptr(),
		CostPrice:         r.CostPrice.ptr(),
		SKU:               r.SKU,
		Stock:             r.Stock.ptr(),
		LowStockThreshold: r.LowStockThreshold,
		TrackInventory:    r.TrackInventory,
		IsActive:          r.IsActive,
		IsFeatured:        r.IsFeatured,
		Images:            r.Images,
		FeaturedImage:     trimmedPtr(r.FeaturedImage),
		Tags:              r.Tags,
		MetaTitle:         trimmedPtr(r.MetaTitle),
		MetaDescription:   trimmedPtr(r.MetaDescription),
		Weight:            r.Weight.ptr(),
		Dimensions:        trimmedPtr(r.Dimensions),
	}
}
