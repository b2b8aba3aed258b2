// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the email is bound to another account.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrDuplicateMobile is returned when the mobile is bound to another account.
	ErrDuplicateMobile = errors.New("mobile already in use")
	// ErrDuplicateDevice is returned when the device id is bound to another account.
	ErrDuplicateDevice = errors.New("device already registered")
	// ErrDuplicateExternalID is returned when the identity subject is linked to another account.
	ErrDuplicateExternalID = errors.New("identity already linked")
	// ErrIllegalAccountState is returned when a write would persist an unreachable (role, status) pair.
	ErrIllegalAccountState = errors.New("illegal account role/status pair")
)

// AccountFilter narrows account listings.
type AccountFilter struct {
	Role   *entity.Role
	Status *entity.Status
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// Create persists a new account and fills in generated fields.
	Create(ctx context.Context, account *entity.Account) error

	// Update writes every mutable column of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIDForUpdate loads the account and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	FindByExternalID(ctx context.Context, externalID string) (*entity.Account, error)
	FindByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	FindByMobile(ctx context.Context, mobile string) (*entity.Account, error)

	// List returns one page of matching accounts ordered oldest first, plus the total count.
	List(ctx context.Context, filter AccountFilter, page entity.PageRequest) ([]*entity.Account, int64, error)
}
