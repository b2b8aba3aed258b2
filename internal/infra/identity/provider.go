package identity

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

const providerFirebase = "firebase"

// timeoutVerifier bounds every verification call.
type timeoutVerifier struct {
	next    service.IdentityVerifier
	timeout time.Duration
}

func (v *timeoutVerifier) Verify(ctx context.Context, credential string) (*service.VerifiedIdentity, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	return v.next.Verify(ctx, credential)
}

// WithTimeout wraps verifier so each call is cancelled after timeout.
func WithTimeout(verifier service.IdentityVerifier, timeout time.Duration) service.IdentityVerifier {
	if timeout <= 0 {
		return verifier
	}

	return &timeoutVerifier{next: verifier, timeout: timeout}
}

// New builds the configured identity verifier.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	idCfg := cfg.Identity
	if idCfg == nil {
		idCfg = &config.IdentityConfig{}
	}

	var (
		verifier service.IdentityVerifier
		err      error
	)

	switch idCfg.Provider {
	case providerFirebase, "":
		verifier, err = NewFirebaseVerifier(ctx, idCfg.ProjectID, idCfg.CredentialsPath)
	case providerGoogle:
		verifier, err = NewGoogleVerifier(ctx, idCfg.Audience)
	case providerJWT:
		verifier, err = NewJWTVerifier(idCfg.JWTSecret, idCfg.JWTIssuer)
	default:
		return nil, errors.Errorf("unknown identity provider: %s", idCfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Identity verifier initialized",
		slog.String("provider", idCfg.Provider),
		slog.Duration("timeout", idCfg.Timeout),
	)

	return WithTimeout(verifier, idCfg.Timeout), nil
}
