package identity

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type deadlineRecorder struct {
	hadDeadline bool
}

func (d *deadlineRecorder) Verify(ctx context.Context, _ string) (*service.VerifiedIdentity, error) {
	_, d.hadDeadline = ctx.Deadline()

	return &service.VerifiedIdentity{Subject: "s"}, nil
}

func TestWithTimeout(t *testing.T) {
	rec := &deadlineRecorder{}
	verifier := WithTimeout(rec, time.Second)

	_, err := verifier.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.True(t, rec.hadDeadline)

	assert.Same(t, rec, WithTimeout(rec, 0))
}

func TestNew(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("jwt", func(t *testing.T) {
		cfg := &config.Config{Identity: &config.IdentityConfig{Provider: "jwt", JWTSecret: "s", Timeout: time.Second}}
		verifier, err := New(context.Background(), cfg, logger)
		require.NoError(t, err)
		assert.IsType(t, &timeoutVerifier{}, verifier)
	})

	t.Run("jwt without secret", func(t *testing.T) {
		cfg := &config.Config{Identity: &config.IdentityConfig{Provider: "jwt"}}
		_, err := New(context.Background(), cfg, logger)
		require.Error(t, err)
	})

	t.Run("google without audience", func(t *testing.T) {
		cfg := &config.Config{Identity: &config.IdentityConfig{Provider: "google"}}
		_, err := New(context.Background(), cfg, logger)
		require.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &config.Config{Identity: &config.IdentityConfig{Provider: "ldap"}}
		_, err := New(context.Background(), cfg, logger)
		require.Error(t, err)
	})
}

type stubTokenVerifier struct {
	token *auth.Token
	err   error
}

func (s *stubTokenVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	token := &auth.Token{
		UID: "firebase-uid",
		Claims: map[string]any{
			"email":          "jane@example.com",
			"name":           "Jane Doe",
			"email_verified": true,
		},
	}
	token.Firebase.SignInProvider = "google.com"

	verifier := &firebaseVerifier{client: &stubTokenVerifier{token: token}}

	identity, err := verifier.Verify(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid", identity.Subject)
	assert.Equal(t, "jane@example.com", identity.Email)
	assert.Equal(t, "Jane Doe", identity.Name)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "google.com", identity.Provider)
}

func TestFirebaseVerifier_ProviderFailure(t *testing.T) {
	verifier := &firebaseVerifier{client: &stubTokenVerifier{err: errors.New("connection reset")}}

	_, err := verifier.Verify(context.Background(), "id-token")
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrCredentialInvalid))
	assert.False(t, errors.Is(err, service.ErrCredentialExpired))
}

type stubPayloadValidator struct {
	payload *idtoken.Payload
	err     error
}

func (s *stubPayloadValidator) Validate(context.Context, string, string) (*idtoken.Payload, error) {
	return s.payload, s.err
}

func TestGoogleVerifier_Verify(t *testing.T) {
	verifier := &googleVerifier{
		audience: "client-id",
		validator: &stubPayloadValidator{payload: &idtoken.Payload{
			Subject: "google-sub",
			Claims:  map[string]any{"email": "joe@example.com", "email_verified": false},
		}},
	}

	identity, err := verifier.Verify(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub", identity.Subject)
	assert.Equal(t, "joe@example.com", identity.Email)
	assert.False(t, identity.EmailVerified)
	assert.Equal(t, "google", identity.Provider)
}

func TestGoogleVerifier_Errors(t *testing.T) {
	expired := &googleVerifier{validator: &stubPayloadValidator{err: errors.New("idtoken: token expired: now=2, expires=1")}}
	_, err := expired.Verify(context.Background(), "t")
	assert.True(t, errors.Is(err, service.ErrCredentialExpired))

	invalid := &googleVerifier{validator: &stubPayloadValidator{err: errors.New("idtoken: audience provided does not match aud claim")}}
	_, err = invalid.Verify(context.Background(), "t")
	assert.True(t, errors.Is(err, service.ErrCredentialInvalid))
}
