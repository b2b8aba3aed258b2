package cron

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"
	mockservice "marketplace/internal/mocks/service"
	mockusecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type cronFixtures struct {
	server       *cronServer
	productUC    *mockusecase.MockProductUsecase
	notification *mockservice.MockNotificationService
	lc           *fxtest.Lifecycle
}

func createTestCronServer(t *testing.T, scheduler *config.SchedulerConfig) *cronFixtures {
	t.Helper()

	cfg := &config.Config{Scheduler: scheduler}
	fx := &cronFixtures{
		productUC:    mockusecase.NewMockProductUsecase(t),
		notification: mockservice.NewMockNotificationService(t),
		lc:           fxtest.NewLifecycle(t),
	}

	srv, err := NewServer(ServerParams{
		Lc:           fx.lc,
		Cfg:          cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		ProductUC:    fx.productUC,
		Notification: fx.notification,
	})
	require.NoError(t, err)
	fx.server = srv.(*cronServer)

	return fx
}

func TestServe_Disabled(t *testing.T) {
	fx := createTestCronServer(t, &config.SchedulerConfig{Enabled: false, LowStockCron: "0 0 8 * * *"})

	require.NoError(t, fx.server.Serve(context.Background()))
	assert.Empty(t, fx.server.scheduler.Entries())
}

func TestServe_InvalidSchedule(t *testing.T) {
	fx := createTestCronServer(t, &config.SchedulerConfig{Enabled: true, LowStockCron: "every morning"})

	err := fx.server.Serve(context.Background())

	assert.Error(t, err)
}

func TestServe_RegistersJob(t *testing.T) {
	fx := createTestCronServer(t, &config.SchedulerConfig{Enabled: true, LowStockCron: "0 0 8 * * *"})

	require.NoError(t, fx.server.Serve(context.Background()))
	assert.Len(t, fx.server.scheduler.Entries(), 1)

	fx.lc.RequireStart().RequireStop()
}

func TestSweepLowStock(t *testing.T) {
	vendorA, vendorB, vendorC := uuid.New(), uuid.New(), uuid.New()
	mug := &entity.Product{ID: uuid.New(), VendorID: vendorA, Name: "Mug"}
	lamp := &entity.Product{ID: uuid.New(), VendorID: vendorB, Name: "Lamp"}
	rug := &entity.Product{ID: uuid.New(), VendorID: vendorB, Name: "Rug"}
	vase := &entity.Product{ID: uuid.New(), VendorID: vendorC, Name: "Vase"}

	fx := createTestCronServer(t, nil)
	fx.productUC.EXPECT().LowStockDigest(mock.Anything).Return([]*usecase.LowStockDigest{
		{VendorID: vendorA, Products: []*entity.Product{mug}},
		{VendorID: vendorB, Products: []*entity.Product{lamp, rug}},
		{VendorID: vendorC, Products: []*entity.Product{vase}},
	}, nil)

	fx.notification.EXPECT().
		SendToTopic(mock.Anything, "vendor-"+vendorA.String(), "Low stock alert", "Mug is running low on stock",
			map[string]string{"type": "low_stock", "count": "1", "productIds": mug.ID.String()}).
		Return(nil)
	fx.notification.EXPECT().
		SendToTopic(mock.Anything, "vendor-"+vendorB.String(), "Low stock alert", "2 products are running low on stock",
			map[string]string{"type": "low_stock", "count": "2", "productIds": lamp.ID.String() + "," + rug.ID.String()}).
		Return(nil)
	fx.notification.EXPECT().
		SendToTopic(mock.Anything, "vendor-"+vendorC.String(), mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	notified, err := fx.server.sweepLowStock(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, notified)
}

func TestSweepLowStock_DigestFailure(t *testing.T) {
	fx := createTestCronServer(t, nil)
	fx.productUC.EXPECT().LowStockDigest(mock.Anything).Return(nil, errors.New("db down"))

	notified, err := fx.server.sweepLowStock(context.Background())

	assert.Error(t, err)
	assert.Zero(t, notified)
}
