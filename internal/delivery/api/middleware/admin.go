package middleware

import (
	"log/slog"

	"waterdrops/config"
	"waterdrops/internal/delivery/api/response"
	deliverycontext "waterdrops/internal/delivery/context"
	domainerrors "waterdrops/internal/domain/errors"
	"waterdrops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminMiddlewareParams holds dependencies for AdminMiddleware, injected by Fx.
type AdminMiddlewareParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AdminMiddleware restricts catalogue and fulfilment writes to admins.
type AdminMiddleware struct {
	userUC  usecase.UserUsecase
	enabled bool
	logger  *slog.Logger
}

// NewAdminMiddleware creates the admin guard. It is a pass-through unless
// auth.adminGuard.enabled is set.
func NewAdminMiddleware(params AdminMiddlewareParams) *AdminMiddleware {
	enabled := params.Config.Auth != nil && params.Config.Auth.AdminGuard.Enabled

	return &AdminMiddleware{
		userUC:  params.UserUC,
		enabled: enabled,
		logger:  params.Logger,
	}
}

// Authorize returns nil when the guard is off or when the caller's
// X-User-Email belongs to an admin, ErrForbidden otherwise.
func (m *AdminMiddleware) Authorize(c echo.Context) error {
	if !m.enabled {
		return nil
	}

	email := deliverycontext.GetCallerEmail(c)
	if email == "" {
		return domainerrors.ErrForbidden
	}

	status, err := m.userUC.CheckAdmin(c.Request().Context(), email)
	if err != nil {
		return err
	}
	if !status.Admin {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Warn("Admin route denied", slog.String("email", email), slog.String("path", c.Path()))

		return domainerrors.ErrForbidden
	}

	return nil
}

// RequireAdmin rejects callers that fail Authorize.
func (m *AdminMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := m.Authorize(c); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}
