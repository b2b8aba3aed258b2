package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/util"

	"github.com/pkg/errors"
)

const (
	codeDigits = 6
	keyPrefix  = "otp:"
)

// Deliverer hands a freshly generated code to the user.
type Deliverer func(ctx context.Context, mobile, code string) error

// LocalOptions tunes the locally generated code flow.
type LocalOptions struct {
	CodeTTL        time.Duration
	ResendInterval time.Duration
	MaxAttempts    int
	Deliver        Deliverer
}

type localProvider struct {
	store  codeStore
	hasher service.CodeHasher
	opts   LocalOptions
	logger *slog.Logger
}

func newLocalProvider(store codeStore, hasher service.CodeHasher, opts LocalOptions, logger *slog.Logger) *localProvider {
	if opts.Deliver == nil {
		opts.Deliver = func(ctx context.Context, mobile, code string) error {
			logger.Info("OTP generated", slog.String("mobile", mobile), slog.String("code", code))

			return nil
		}
	}

	return &localProvider{store: store, hasher: hasher, opts: opts, logger: logger}
}

func codeKey(mobile string) string     { return keyPrefix + "code:" + mobile }
func resendKey(mobile string) string   { return keyPrefix + "resend:" + mobile }
func attemptsKey(mobile string) string { return keyPrefix + "attempts:" + mobile }

// Send generates a code, stores its hash and delivers it. A second send inside the resend
// interval is rejected with ErrOTPThrottled.
func (p *localProvider) Send(ctx context.Context, mobile string) error {
	ok, err := p.store.SetNX(ctx, resendKey(mobile), "1", p.opts.ResendInterval)
	if err != nil {
		return errors.Wrap(err, "otp throttle")
	}
	if !ok {
		return domainerrors.ErrOTPThrottled.WithMessage(
			"OTP already sent. Please wait " + util.FormatDuration(p.opts.ResendInterval) + " before requesting another one.")
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	hash, err := p.hasher.Hash(code)
	if err != nil {
		return errors.Wrap(err, "hash otp")
	}

	if err := p.store.Set(ctx, codeKey(mobile), hash, p.opts.CodeTTL); err != nil {
		return errors.Wrap(err, "store otp")
	}
	if err := p.store.Del(ctx, attemptsKey(mobile)); err != nil {
		return errors.Wrap(err, "reset otp attempts")
	}

	return p.opts.Deliver(ctx, mobile, code)
}

// Verify checks code against the stored hash. A code is single use and is discarded after
// MaxAttempts wrong guesses.
func (p *localProvider) Verify(ctx context.Context, mobile, code string) (bool, error) {
	hash, found, err := p.store.Get(ctx, codeKey(mobile))
	if err != nil {
		return false, errors.Wrap(err, "load otp")
	}
	if !found {
		return false, nil
	}

	if p.hasher.Check(code, hash) {
		if err := p.store.Del(ctx, codeKey(mobile), attemptsKey(mobile)); err != nil {
			p.logger.Warn("Failed to clear used OTP", slog.Any("error", err))
		}

		return true, nil
	}

	attempts, err := p.store.Incr(ctx, attemptsKey(mobile), p.opts.CodeTTL)
	if err != nil {
		return false, errors.Wrap(err, "count otp attempts")
	}
	if p.opts.MaxAttempts > 0 && attempts >= int64(p.opts.MaxAttempts) {
		if err := p.store.Del(ctx, codeKey(mobile), attemptsKey(mobile)); err != nil {
			p.logger.Warn("Failed to discard exhausted OTP", slog.Any("error", err))
		}
	}

	return false, nil
}

func generateCode() (string, error) {
	limit := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", errors.Wrap(err, "generate otp")
	}

	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}
