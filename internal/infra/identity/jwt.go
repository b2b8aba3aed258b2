package identity

import (
	"context"
	"time"

	"marketplace/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const providerJWT = "jwt"

// Claims is the payload of a locally issued development token.
type Claims struct {
	jwt.RegisteredClaims

	Email         string `json:"email,omitempty"`
	Name          string `json:"name,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// JWTVerifier verifies and issues HS256 tokens signed with a shared secret. It stands in for an
// external identity provider in local environments and tests.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier is the constructor for JWTVerifier.
func NewJWTVerifier(secret, issuer string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &JWTVerifier{secret: []byte(secret), issuer: issuer}, nil
}

// Issue signs a token for subject valid for ttl.
func (v *JWTVerifier) Issue(subject, email, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:         email,
		Name:          name,
		EmailVerified: email != "",
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)

	return signed, errors.WithStack(err)
}

// Verify checks signature, expiry and issuer.
func (v *JWTVerifier) Verify(_ context.Context, credential string) (*service.VerifiedIdentity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(credential, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrCredentialExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrCredentialInvalid, err.Error())
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrCredentialInvalid, "token has no subject")
	}

	return &service.VerifiedIdentity{
		Subject:       claims.Subject,
		Email:         claims.Email,
		Name:          claims.Name,
		EmailVerified: claims.EmailVerified,
		Provider:      providerJWT,
	}, nil
}
