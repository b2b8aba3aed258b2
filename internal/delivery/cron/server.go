// Package cron runs the scheduled background jobs of the marketplace.
package cron

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/robfig/cron/v3"
	"github.com/segmentio/ksuid"
	"go.uber.org/fx"
)

const (
	sweepTimeout = 5 * time.Minute

	lowStockTitle = "Low stock alert"
)

type cronServer struct {
	cfg          *config.Config
	logger       *slog.Logger
	scheduler    *cron.Cron
	productUC    usecase.ProductUsecase
	notification service.NotificationService
}

// ServerParams holds dependencies for the scheduler, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	ProductUC    usecase.ProductUsecase
	Notification service.NotificationService
}

// NewServer creates the scheduled-job delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &cronServer{
		cfg:          params.Cfg,
		logger:       params.Logger,
		scheduler:    cron.New(cron.WithSeconds()),
		productUC:    params.ProductUC,
		notification: params.Notification,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve registers the jobs and starts the scheduler. It returns once the scheduler is running.
func (s *cronServer) Serve(ctx context.Context) error {
	if s.cfg.Scheduler == nil || !s.cfg.Scheduler.Enabled {
		s.logger.Info("Scheduler disabled")

		return nil
	}

	spec := s.cfg.Scheduler.LowStockCron
	if _, err := s.scheduler.AddFunc(spec, func() { s.runLowStockSweep(ctx) }); err != nil {
		return errors.Wrapf(err, "invalid low stock schedule %q", spec)
	}

	s.logger.Info("Starting scheduler", slog.String("lowStockCron", spec))
	s.scheduler.Start()

	return nil
}

func (s *cronServer) runLowStockSweep(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, sweepTimeout)
	defer cancel()

	requestID := ksuid.New().String()
	logger := s.logger.With(slog.String("request_id", requestID), slog.String("job", "low_stock"))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	notified, err := s.sweepLowStock(ctx)
	if err != nil {
		logger.Error("Low stock sweep failed", slog.Any("error", err))

		return
	}

	logger.Info("Low stock sweep finished", slog.Int("vendors", notified))
}

// sweepLowStock pushes one alert per vendor with low-stock products. A failed push is logged
// and does not stop the remaining vendors.
func (s *cronServer) sweepLowStock(ctx context.Context) (int, error) {
	digests, err := s.productUC.LowStockDigest(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	notified := 0
	for _, digest := range digests {
		if len(digest.Products) == 0 {
			continue
		}

		productIDs := make([]string, 0, len(digest.Products))
		for _, product := range digest.Products {
			productIDs = append(productIDs, product.ID.String())
		}

		vendorID := digest.VendorID.String()
		body := fmt.Sprintf("%d products are running low on stock", len(digest.Products))
		if len(digest.Products) == 1 {
			body = fmt.Sprintf("%s is running low on stock", digest.Products[0].Name)
		}

		err := s.notification.SendToTopic(ctx, service.VendorTopic(vendorID), lowStockTitle, body, map[string]string{
			"type":       "low_stock",
			"count":      strconv.Itoa(len(digest.Products)),
			"productIds": strings.Join(productIDs, ","),
		})
		if err != nil {
			logger.Warn("Failed to send low stock alert",
				slog.String("vendor_id", vendorID),
				slog.Any("error", err),
			)

			continue
		}
		notified++
	}

	return notified, nil
}

func (s *cronServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Stopping scheduler")

	select {
	case <-s.scheduler.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler jobs did not finish in time")
	}
}
