// Package identity verifies bearer credentials against Firebase, Google or a local HS256 issuer.
package identity

import (
	"context"

	"marketplace/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// tokenVerifier is the part of *auth.Client the verifier depends on.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseVerifier struct {
	client tokenVerifier
}

// NewFirebaseVerifier verifies Firebase ID tokens. An empty credentialsPath falls back to
// application default credentials.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsPath string) (service.IdentityVerifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, credential string) (*service.VerifiedIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, credential)
	switch {
	case err == nil:
	case auth.IsIDTokenExpired(err):
		return nil, errors.Wrap(service.ErrCredentialExpired, err.Error())
	case auth.IsIDTokenInvalid(err):
		return nil, errors.Wrap(service.ErrCredentialInvalid, err.Error())
	default:
		return nil, errors.Wrap(err, "firebase verify id token")
	}

	return &service.VerifiedIdentity{
		Subject:       token.UID,
		Email:         stringClaim(token.Claims, "email"),
		Name:          stringClaim(token.Claims, "name"),
		EmailVerified: boolClaim(token.Claims, "email_verified"),
		Provider:      token.Firebase.SignInProvider,
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}

	return ""
}

func boolClaim(claims map[string]any, key string) bool {
	if v, ok := claims[key].(bool); ok {
		return v
	}

	return false
}
