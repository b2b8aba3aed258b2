package otp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	providerMSG91  = "msg91"
	providerRedis  = "redis"
	providerStatic = "static"
)

// timeoutProvider bounds every provider call.
type timeoutProvider struct {
	next    service.OTPProvider
	timeout time.Duration
}

func (p *timeoutProvider) Send(ctx context.Context, mobile string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.next.Send(ctx, mobile)
}

func (p *timeoutProvider) Verify(ctx context.Context, mobile, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.next.Verify(ctx, mobile, code)
}

// Params holds dependencies for the OTP provider, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Redis  *redis.Client `optional:"true"`
	Hasher service.CodeHasher
	Logger *slog.Logger
}

// New builds the configured OTP provider.
func New(params Params) (service.OTPProvider, error) {
	cfg := params.Config.OTP
	if cfg == nil {
		cfg = &config.OTPConfig{}
	}

	var (
		provider service.OTPProvider
		err      error
	)

	switch cfg.Provider {
	case providerMSG91:
		provider, err = NewMSG91Provider(cfg.MSG91.BaseURL, cfg.MSG91.AuthKey, cfg.MSG91.TemplateID, &http.Client{})
	case providerRedis:
		if params.Redis == nil {
			return nil, errors.New("redis otp provider requires redis.addr")
		}
		provider = newLocalProvider(newRedisCodeStore(params.Redis), params.Hasher, LocalOptions{
			CodeTTL:        cfg.CodeTTL,
			ResendInterval: cfg.ResendInterval,
			MaxAttempts:    cfg.MaxAttempts,
		}, params.Logger)
	case providerStatic, "":
		provider = NewStaticProvider(cfg.StaticCode, params.Logger)
	default:
		return nil, errors.Errorf("unknown otp provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Logger.Info("OTP provider initialized", slog.String("provider", cfg.Provider))

	if cfg.Timeout <= 0 {
		return provider, nil
	}

	return &timeoutProvider{next: provider, timeout: cfg.Timeout}, nil
}
