package handler

import (
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountResponse is the full account view returned to its owner and to admins.
type AccountResponse struct {
	ID              uuid.UUID  `json:"id"`
	DeviceID        *string    `json:"deviceId"`
	Email           *string    `json:"email"`
	Mobile          *string    `json:"mobile"`
	Role            string     `json:"role"`
	Status          string     `json:"status"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	PinCode         string     `json:"pinCode,omitempty"`
	City            string     `json:"city,omitempty"`
	State           string     `json:"state,omitempty"`
	Address         string     `json:"address,omitempty"`
	StoreName       string     `json:"storeName,omitempty"`
	StoreAddress    string     `json:"storeAddress,omitempty"`
	FacebookURL     string     `json:"facebookUrl,omitempty"`
	InstagramURL    string     `json:"instagramUrl,omitempty"`
	YoutubeURL      string     `json:"youtubeUrl,omitempty"`
	ProfilePhoto    string     `json:"profilePhoto,omitempty"`
	CoverPhoto      string     `json:"coverPhoto,omitempty"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	IsPhoneVerified bool       `json:"isPhoneVerified"`
	IsActive        bool       `json:"isActive"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	ReviewNote      string     `json:"reviewNote,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// LifecycleResponse is the compact role/status view used by onboarding routes.
type LifecycleResponse struct {
	ID       uuid.UUID `json:"id"`
	DeviceID *string   `json:"deviceId,omitempty"`
	Email    *string   `json:"email,omitempty"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
}

// CategoryResponse is a category with its derived counts.
type CategoryResponse struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	Slug         string              `json:"slug"`
	Description  string              `json:"description"`
	ParentID     *uuid.UUID          `json:"parentId"`
	Parent       *entity.CategoryRef `json:"parent,omitempty"`
	IsActive     bool                `json:"isActive"`
	SortOrder    int                 `json:"sortOrder"`
	ChildCount   int64               `json:"childCount"`
	ProductCount int64               `json:"productCount"`
	Children     []*CategoryResponse `json:"children,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// ProductResponse is the product view shared by vendor, public and admin routes.
type ProductResponse struct {
	ID                uuid.UUID           `json:"id"`
	VendorID          uuid.UUID           `json:"vendorId"`
	CategoryID        uuid.UUID           `json:"categoryId"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	Slug              string              `json:"slug"`
	SKU               *string             `json:"sku"`
	Price             decimal.Decimal     `json:"price"`
	ComparePrice      *decimal.Decimal    `json:"comparePrice"`
	CostPrice         *decimal.Decimal    `json:"costPrice,omitempty"`
	Stock             int                 `json:"stock"`
	LowStockThreshold int                 `json:"lowStockThreshold"`
	TrackInventory    bool                `json:"trackInventory"`
	Status            string              `json:"status"`
	AdminApproved     bool                `json:"adminApproved"`
	IsActive          bool                `json:"isActive"`
	IsFeatured        bool                `json:"isFeatured"`
	Images            []string            `json:"images"`
	FeaturedImage     string              `json:"featuredImage,omitempty"`
	Tags              []string            `json:"tags"`
	MetaTitle         string              `json:"metaTitle,omitempty"`
	MetaDescription   string              `json:"metaDescription,omitempty"`
	Weight            *decimal.Decimal    `json:"weight,omitempty"`
	Dimensions        string              `json:"dimensions,omitempty"`
	Category          *entity.CategoryRef `json:"category,omitempty"`
	Vendor            *entity.VendorRef   `json:"vendor,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// ProductPageResponse is one page of products.
type ProductPageResponse struct {
	Products   []*ProductResponse `json:"products"`
	Pagination entity.Pagination  `json:"pagination"`
}

// AccountPageResponse is one page of accounts.
type AccountPageResponse struct {
	Vendors    []*AccountResponse `json:"vendors"`
	Pagination entity.Pagination  `json:"pagination"`
}

func newAccountResponse(account *entity.Account) *AccountResponse {
	resp := &AccountResponse{
		ID:              account.ID,
		DeviceID:        account.DeviceID,
		Email:           account.Email,
		Mobile:          account.Mobile,
		Role:            account.Role.String(),
		Status:          account.Status.String(),
		FirstName:       account.FirstName,
		LastName:        account.LastName,
		PinCode:         account.PinCode,
		City:            account.City,
		State:           account.State,
		Address:         account.Address,
		StoreName:       account.Store.Name,
		StoreAddress:    account.Store.Address,
		FacebookURL:     account.Store.FacebookURL,
		InstagramURL:    account.Store.InstagramURL,
		YoutubeURL:      account.Store.YoutubeURL,
		IsEmailVerified: account.IsEmailVerified,
		IsPhoneVerified: account.IsPhoneVerified,
		IsActive:        account.IsActive,
		ReviewedAt:      account.ReviewedAt,
		ReviewNote:      account.ReviewNote,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}
	if account.ProfilePhoto != nil {
		resp.ProfilePhoto = account.ProfilePhoto.URL
	}
	if account.CoverPhoto != nil {
		resp.CoverPhoto = account.CoverPhoto.URL
	}

	return resp
}

// newLifecycleResponse uses the lower camel role/status names clients branch on.
func newLifecycleResponse(account *entity.Account) *LifecycleResponse {
	return &LifecycleResponse{
		ID:       account.ID,
		DeviceID: account.DeviceID,
		Email:    account.Email,
		Role:     account.Role.APIName(),
		Status:   account.Status.APIName(),
	}
}

func newCategoryResponse(category *entity.Category) *CategoryResponse {
	resp := &CategoryResponse{
		ID:           category.ID,
		Name:         category.Name,
		Slug:         category.Slug,
		Description:  category.Description,
		ParentID:     category.ParentID,
		Parent:       category.Parent,
		IsActive:     category.IsActive,
		SortOrder:    category.SortOrder,
		ChildCount:   category.ChildCount,
		ProductCount: category.ProductCount,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
	if category.Children != nil {
		resp.Children = newCategoryResponses(category.Children)
	}

	return resp
}

func newCategoryResponses(categories []*entity.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, newCategoryResponse(category))
	}

	return out
}

func newProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:                product.ID,
		VendorID:          product.VendorID,
		CategoryID:        product.CategoryID,
		Name:              product.Name,
		Description:       product.Description,
		Slug:              product.Slug,
		SKU:               product.SKU,
		Price:             product.Price,
		ComparePrice:      product.ComparePrice,
		CostPrice:         product.CostPrice,
		Stock:             product.Stock,
		LowStockThreshold: product.LowStockThreshold,
		TrackInventory:    product.TrackInventory,
		Status:            string(product.Status),
		AdminApproved:     product.AdminApproved,
		IsActive:          product.IsActive,
		IsFeatured:        product.IsFeatured,
		Images:            nonNil(product.Images),
		FeaturedImage:     product.FeaturedImage,
		Tags:              nonNil(product.Tags),
		MetaTitle:         product.MetaTitle,
		MetaDescription:   product.MetaDescription,
		Weight:            product.Weight,
		Dimensions:        product.Dimensions,
		Category:          product.Category,
		Vendor:            product.Vendor,
		CreatedAt:         product.CreatedAt,
		UpdatedAt:         product.UpdatedAt,
	}
}

// newPublicProductResponse hides the vendor's cost price.
func newPublicProductResponse(product *entity.Product) *ProductResponse {
	resp := newProductResponse(product)
	resp.CostPrice = nil

	return resp
}

func newProductResponses(products []*entity.Product, present func(*entity.Product) *ProductResponse) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, present(product))
	}

	return out
}

func newProductPageResponse(page *usecase.ProductPage, present func(*entity.Product) *ProductResponse) *ProductPageResponse {
	return &ProductPageResponse{
		Products:   newProductResponses(page.Products, present),
		Pagination: page.Pagination,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
