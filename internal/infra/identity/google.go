package identity

import (
	"context"
	"strings"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

const providerGoogle = "google"

// payloadValidator is the part of *idtoken.Validator the verifier depends on.
type payloadValidator interface {
	Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

type googleVerifier struct {
	validator payloadValidator
	audience  string
}

// NewGoogleVerifier verifies Google-issued ID tokens for the given OAuth client id.
func NewGoogleVerifier(ctx context.Context, audience string) (service.IdentityVerifier, error) {
	if audience == "" {
		return nil, errors.New("audience is required for google identity provider")
	}

	validator, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create id token validator")
	}

	return &googleVerifier{validator: validator, audience: audience}, nil
}

func (v *googleVerifier) Verify(ctx context.Context, credential string) (*service.VerifiedIdentity, error) {
	payload, err := v.validator.Validate(ctx, credential, v.audience)
	if err != nil {
		// idtoken reports failures as plain errors; expiry is the only one clients act on.
		if strings.Contains(err.Error(), "expired") {
			return nil, errors.Wrap(service.ErrCredentialExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrCredentialInvalid, err.Error())
	}

	return &service.VerifiedIdentity{
		Subject:       payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		Name:          stringClaim(payload.Claims, "name"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		Provider:      providerGoogle,
	}, nil
}
