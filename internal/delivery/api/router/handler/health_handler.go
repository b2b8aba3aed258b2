package handler

import (
	"time"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness including database reachability.
type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(healthUC usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{healthUC: healthUC}
}

// HealthResponse is the body of a successful health check.
type HealthResponse struct {
	Timestamp time.Time `json:"timestamp"`
}

// Check pings the database.
func (h *HealthHandler) Check(c echo.Context) error {
	status, err := h.healthUC.Check(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &HealthResponse{Timestamp: status.Timestamp}, "Server is healthy")
}
