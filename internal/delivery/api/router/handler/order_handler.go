package handler

import (
	"log/slog"

	"waterdrops/internal/delivery/api/response"
	"waterdrops/internal/delivery/api/validator"
	"waterdrops/internal/domain/entity"
	"waterdrops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrderRequest represents the request body for placing an order
type PlaceOrderRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name"`
	ProductID   string `json:"productId"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	OrderStatus string `json:"orderStatus"`
}

// UpdateOrderStatusRequest represents the request body for changing an order status
type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" validate:"required"`
}

// PlaceOrder handles POST /orders
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	result, err := h.orderUC.PlaceOrder(c.Request().Context(), &entity.Order{
		Email:       req.Email,
		Name:        req.Name,
		ProductID:   req.ProductID,
		Address:     req.Address,
		Phone:       req.Phone,
		OrderStatus: entity.OrderStatus(req.OrderStatus),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

// ListOrdersByEmail handles GET /orders/by-email/:email
func (h *OrderHandler) ListOrdersByEmail(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	orders, err := h.orderUC.ListOrdersByEmail(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

// UpdateOrderStatus handles PUT /orders/:id
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	id := c.Param("id")
	result, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, entity.OrderStatus(req.OrderStatus))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if result.UpsertedCount > 0 {
		h.logger.Info("Order status upserted a new order", slog.String("order_id", id))
	}

	return response.OK(c, result)
}

// CancelOrder handles DELETE /orders/:id
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	result, err := h.orderUC.CancelOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}
