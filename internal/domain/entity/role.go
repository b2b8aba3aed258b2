// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role is the capability axis of an account.
type Role string

const (
	// RoleGuest is an anonymous, device-identified visitor.
	RoleGuest Role = "GUEST"
	// RoleUser is an identity-verified account that has not chosen a commerce role.
	RoleUser Role = "USER"
	// RoleCustomer is a buyer.
	RoleCustomer Role = "CUSTOMER"
	// RoleVendorPending has submitted a vendor application that awaits an admin decision.
	RoleVendorPending Role = "VENDOR_PENDING"
	// RoleVendor is an approved, operating vendor.
	RoleVendor Role = "VENDOR"
	// RoleAdmin administers the marketplace.
	RoleAdmin Role = "ADMIN"
)

var roleAPINames = map[Role]string{
	RoleGuest:         "guest",
	RoleUser:          "user",
	RoleCustomer:      "customer",
	RoleVendorPending: "vendorPending",
	RoleVendor:        "vendor",
	RoleAdmin:         "admin",
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := roleAPINames[r]

	return ok
}

// APIName is the camel-cased label used in status responses.
func (r Role) APIName() string {
	if name, ok := roleAPINames[r]; ok {
		return name
	}

	return strings.ToLower(string(r))
}

// ParseRole accepts the stored form ("VENDOR_PENDING") case-insensitively.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))

	return role, role.IsValid()
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Status is the approval axis of an account, independent of Role.
type Status string

const (
	// StatusPending awaits review or is not yet meaningful (guests).
	StatusPending Status = "PENDING"
	// StatusApproved is a settled, non-vendor account.
	StatusApproved Status = "APPROVED"
	// StatusLive is an approved vendor allowed to trade.
	StatusLive Status = "LIVE"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusLive:
		return true
	default:
		return false
	}
}

// APIName is the lower-cased label used in status responses.
func (s Status) APIName() string {
	return strings.ToLower(string(s))
}
