// Package service defines interfaces for external collaborators and stateless domain services.
// Implementations live under internal/infra.
package service

import (
	"context"

	"marketplace/internal/errors"
)

// Verification failures an IdentityVerifier reports. Anything else is a provider failure.
var (
	ErrCredentialExpired = errors.New("credential expired")
	ErrCredentialInvalid = errors.New("credential invalid")
)

// VerifiedIdentity is what a successfully verified bearer credential resolves to.
type VerifiedIdentity struct {
	Subject       string // Stable subject id issued by the provider.
	Email         string
	Name          string
	EmailVerified bool
	Provider      string
}

// IdentityVerifier resolves an opaque credential into a verified identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (*VerifiedIdentity, error)
}
