package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// VendorUsecase covers live-vendor profile management and the admin review queue.
type VendorUsecase interface {
	// UpdateProfile applies a partial profile update with optional photo replacements.
	UpdateProfile(ctx context.Context, vendorID uuid.UUID, input *UpdateVendorInput) (*entity.Account, error)

	// ListPending pages through vendor applications awaiting review, oldest first.
	ListPending(ctx context.Context, page entity.PageRequest) (*AccountPage, error)

	// Decide approves or rejects a pending application on behalf of admin.
	Decide(ctx context.Context, admin *entity.Account, input *VendorDecisionInput) (*entity.Account, error)

	// StorefrontQR renders the storefront link of a live vendor.
	StorefrontQR(ctx context.Context, vendorID uuid.UUID) (*StorefrontQROutput, error)
}

// UpdateVendorInput holds the fields to change. Nil pointers are left untouched.
type UpdateVendorInput struct {
	FirstName    *string
	LastName     *string
	Mobile       *string
	Email        *string
	PinCode      *string
	City         *string
	State        *string
	Address      *string
	StoreName    *string
	StoreAddress *string
	FacebookURL  *string
	InstagramURL *string
	YoutubeURL   *string

	ProfilePhoto *FileInput
	CoverPhoto   *FileInput
}

// FileInput is an uploaded file read into memory.
type FileInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// VendorDecisionInput is an admin decision on a vendor application.
type VendorDecisionInput struct {
	VendorID uuid.UUID
	Action   string
	Note     string
}

// AccountPage is one page of accounts.
type AccountPage struct {
	Accounts   []*entity.Account
	Pagination entity.Pagination
}

// StorefrontQROutput is a rendered storefront QR code.
type StorefrontQROutput struct {
	URL string
	PNG []byte
}
