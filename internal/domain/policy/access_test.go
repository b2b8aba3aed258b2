package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
)

func account(role entity.Role, status entity.Status) *entity.Account {
	return &entity.Account{Role: role, Status: status, IsActive: true}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		account    *entity.Account
		capability Capability
		wantErr    error
	}{
		{"anonymous", nil, AnyAccount, domainerrors.ErrUnauthenticated},
		{"guest on any", account(entity.RoleGuest, entity.StatusPending), AnyAccount, nil},
		{"customer on customers", account(entity.RoleCustomer, entity.StatusApproved), Customers, nil},
		{"vendor on customers", account(entity.RoleVendor, entity.StatusLive), Customers, domainerrors.ErrForbidden},
		{"live vendor", account(entity.RoleVendor, entity.StatusLive), Vendors, nil},
		{"admin on vendors", account(entity.RoleAdmin, entity.StatusApproved), Vendors, nil},
		{"pending vendor", account(entity.RoleVendorPending, entity.StatusPending), Vendors, domainerrors.ErrApprovalPending},
		{"vendor not live", account(entity.RoleVendor, entity.StatusApproved), Vendors, domainerrors.ErrApprovalPending},
		{"customer on vendors", account(entity.RoleCustomer, entity.StatusApproved), Vendors, domainerrors.ErrForbidden},
		{"vendor on admins", account(entity.RoleVendor, entity.StatusLive), Admins, domainerrors.ErrForbidden},
		{"admin", account(entity.RoleAdmin, entity.StatusApproved), Admins, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.account, tt.capability)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
