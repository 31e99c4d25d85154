package handler

import (
	"waterdrops/internal/delivery/api/middleware"
	"waterdrops/internal/delivery/api/response"
	"waterdrops/internal/delivery/api/validator"
	"waterdrops/internal/domain/entity"
	"waterdrops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC     usecase.UserUsecase
	AdminGuard *middleware.AdminMiddleware
}

// UserHandler holds dependencies for account handlers
type UserHandler struct {
	userUC     usecase.UserUsecase
	adminGuard *middleware.AdminMiddleware
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:     params.UserUC,
		adminGuard: params.AdminGuard,
	}
}

// RegisterUserRequest represents the request body for saving a user
type RegisterUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role" validate:"omitempty,oneof=user admin"`
}

// PromoteAdminRequest represents the request body for granting the admin role
type PromoteAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RegisterUser handles POST /users. Creating an admin account is subject
// to the same guard as promoting one.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	if entity.Role(req.Role).IsAdmin() {
		if err := h.adminGuard.Authorize(c); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	result, err := h.userUC.RegisterUser(c.Request().Context(), &entity.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}

// CheckAdmin handles GET /users/:email
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	status, err := h.userUC.CheckAdmin(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, status)
}

// PromoteToAdmin handles PUT /users/admin
func (h *UserHandler) PromoteToAdmin(c echo.Context) error {
	var req PromoteAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid admin input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	result, err := h.userUC.PromoteToAdmin(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}
