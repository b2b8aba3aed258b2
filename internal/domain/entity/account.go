package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the single identity aggregate. Guests, customers, vendors and admins are all accounts
// distinguished by Role and Status.
type Account struct {
	ID         uuid.UUID // Internal identifier.
	ExternalID *string   // Subject id from the identity provider; nil until linked.
	DeviceID   *string   // Anonymous device identifier; nil when the account never acted as a guest.
	Email      *string   // Unique when present.
	Mobile     *string   // Unique when present.

	Role   Role
	Status Status

	FirstName string
	LastName  string
	PinCode   string
	City      string
	State     string
	Address   string

	Store        StoreProfile
	ProfilePhoto *MediaRef // Vendor profile image.
	CoverPhoto   *MediaRef // Vendor banner image.

	IsEmailVerified bool
	IsPhoneVerified bool
	IsActive        bool // Deactivation flag; accounts are never hard-deleted.

	ReviewedAt *time.Time // Set when an admin decides on a vendor application.
	ReviewNote string     // Reason recorded with the last admin decision.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreProfile carries the vendor storefront attributes.
type StoreProfile struct {
	Name         string
	Address      string
	FacebookURL  string
	InstagramURL string
	YoutubeURL   string
}

// MediaRef points at an object in external storage.
type MediaRef struct {
	URL string // Public URL served to clients.
	Key string // Storage key used for deletion.
}

// FullName joins first and last name.
func (a *Account) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}

// IsRejected reports whether a pending application has already been reviewed and declined.
func (a *Account) IsRejected() bool {
	return a.Role == RoleVendorPending && a.ReviewedAt != nil
}

// StringValue dereferences optional string columns.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}

// StringPtr returns nil for empty strings so absent values stay out of unique indexes.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
