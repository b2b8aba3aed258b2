package otp

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"marketplace/internal/domain/service"
)

// DefaultStaticCode is accepted when the static provider has no code configured.
const DefaultStaticCode = "123456"

type staticProvider struct {
	code   string
	logger *slog.Logger
}

// NewStaticProvider accepts one fixed code for every mobile. Intended for local development.
func NewStaticProvider(code string, logger *slog.Logger) service.OTPProvider {
	if code == "" {
		code = DefaultStaticCode
	}

	return &staticProvider{code: code, logger: logger}
}

func (p *staticProvider) Send(_ context.Context, mobile string) error {
	p.logger.Debug("Static OTP provider, nothing sent", slog.String("mobile", mobile))

	return nil
}

func (p *staticProvider) Verify(_ context.Context, _, code string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(code), []byte(p.code)) == 1, nil
}
