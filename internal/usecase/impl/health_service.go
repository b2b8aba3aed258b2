package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

const healthPingTimeout = 3 * time.Second

type healthService struct {
	pinger repository.Pinger
	logger *slog.Logger
	now    func() time.Time
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	Pinger repository.Pinger
	Logger *slog.Logger
}

// NewHealthService is the constructor for healthService.
func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		pinger: params.Pinger,
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *healthService) Check(ctx context.Context) (*usecase.HealthStatus, error) {
	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := srv.pinger.Ping(pingCtx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Database ping failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError.WithMessage("Database connection failed"), err.Error())
	}

	return &usecase.HealthStatus{Timestamp: srv.now().UTC()}, nil
}
