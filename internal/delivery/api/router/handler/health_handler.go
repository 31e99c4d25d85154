package handler

import (
	"net/http"

	"waterdrops/internal/delivery/api/response"
	"waterdrops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const banner = "Water Drops Server"

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
}

// HealthHandler serves the liveness banner and the readiness check.
type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{healthUC: params.HealthUC}
}

// Root answers GET / with a fixed banner.
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Text(c, banner)
}

// HealthCheck reports 200 when the store answers a ping, 503 otherwise.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	if err := h.healthUC.Check(c.Request().Context()); err != nil {
		return response.ServiceUnavailable(c, "STORE_UNAVAILABLE", "The data store is unavailable")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
