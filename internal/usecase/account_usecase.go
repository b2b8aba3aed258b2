// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase drives the account lifecycle from anonymous guest to vendor application,
// plus identity-based sign in.
type AccountUsecase interface {
	// CreateGuest bootstraps a guest for deviceID, returning the existing account on replay.
	CreateGuest(ctx context.Context, deviceID string) (*GuestOutput, error)

	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*entity.Account, error)

	// RegisterVendor submits a vendor application. Authenticated customers are upgraded in place.
	RegisterVendor(ctx context.Context, input *RegisterVendorInput, caller *entity.Account) (*entity.Account, error)

	UpgradeToVendor(ctx context.Context, input *UpgradeToVendorInput) (*entity.Account, error)

	GetStatus(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	SendOTP(ctx context.Context, mobile string) error
	VerifyOTP(ctx context.Context, mobile, code string) error

	// Login verifies an identity credential and finds, links or creates the matching account.
	Login(ctx context.Context, credential string) (*LoginOutput, error)

	// ResolveCaller maps a bearer credential onto a registered, active account.
	ResolveCaller(ctx context.Context, credential string) (*entity.Account, error)

	Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	Logout(ctx context.Context, account *entity.Account) error
}

// --- Input DTOs ---

// RegisterCustomerInput is the customer sign-up form.
type RegisterCustomerInput struct {
	DeviceID  string
	FirstName string
	LastName  string
	Mobile    string
	Email     string
	PinCode   string
	City      string
	State     string
	Address   string
	OTP       string
}

// StoreInput carries the storefront fields of a vendor application.
type StoreInput struct {
	StoreName    string
	StoreAddress string
	FacebookURL  string
	InstagramURL string
	YoutubeURL   string
}

// RegisterVendorInput is the full vendor application form.
type RegisterVendorInput struct {
	RegisterCustomerInput
	StoreInput
}

// UpgradeToVendorInput turns an existing customer into a vendor applicant.
type UpgradeToVendorInput struct {
	AccountID uuid.UUID
	StoreInput
	OTP string
}

// --- Output DTOs ---

// GuestOutput reports the guest account and whether this call created it.
type GuestOutput struct {
	Account *entity.Account
	Created bool
}

// LoginOutcome says what Login did with the verified identity.
type LoginOutcome int

const (
	// LoginExisting signed in an account already linked to the identity.
	LoginExisting LoginOutcome = iota
	// LoginLinked attached the identity to an account found by email.
	LoginLinked
	// LoginCreated created a fresh USER account.
	LoginCreated
)

// LoginOutput is the account signed in by Login.
type LoginOutput struct {
	Account *entity.Account
	Outcome LoginOutcome
}
