package usecase

import (
	"context"
	"time"
)

// HealthUsecase reports whether the service can reach its database.
type HealthUsecase interface {
	Check(ctx context.Context) (*HealthStatus, error)
}

// HealthStatus is the result of a successful health check.
type HealthStatus struct {
	Timestamp time.Time
}
