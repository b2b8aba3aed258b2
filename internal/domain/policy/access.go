package policy

import (
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
)

// Capability is the requirement a route places on the resolved caller.
type Capability struct {
	Roles       entity.Roles // allowed roles; empty allows any authenticated account
	RequireLive bool         // vendors must additionally be LIVE
}

// Predefined route capabilities.
var (
	AnyAccount = Capability{}
	Customers  = Capability{Roles: entity.Roles{entity.RoleCustomer}}
	Vendors    = Capability{Roles: entity.Roles{entity.RoleVendor, entity.RoleAdmin}, RequireLive: true}
	Admins     = Capability{Roles: entity.Roles{entity.RoleAdmin}}
)

// Authorize checks the resolved caller against a capability. Vendor gates report
// ErrApprovalPending for vendors that are not yet live so clients can branch on it.
func Authorize(account *entity.Account, capability Capability) error {
	if account == nil {
		return domainerrors.ErrUnauthenticated.WithMessage("Authentication required")
	}

	state := State{Role: account.Role, Status: account.Status}

	if capability.RequireLive && account.Role == entity.RoleVendorPending {
		return ApprovalPending(state)
	}

	if len(capability.Roles) > 0 && !capability.Roles.Contains(account.Role) {
		return forbidden(capability.Roles, account.Role)
	}

	if capability.RequireLive && account.Role == entity.RoleVendor && account.Status != entity.StatusLive {
		return ApprovalPending(state)
	}

	return nil
}
