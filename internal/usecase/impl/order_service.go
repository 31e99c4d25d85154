package impl

import (
	"context"
	"strings"

	"waterdrops/internal/domain/entity"
	domainerrors "waterdrops/internal/domain/errors"
	"waterdrops/internal/domain/repository"
	"waterdrops/internal/errors"
	"waterdrops/internal/usecase"
)

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(orderRepo repository.OrderRepository) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
	}
}

// PlaceOrder stores a new order, defaulting its status to pending
func (s *orderService) PlaceOrder(ctx context.Context, order *entity.Order) (*entity.InsertResult, error) {
	if strings.TrimSpace(string(order.OrderStatus)) == "" {
		order.OrderStatus = entity.OrderStatusPending
	}

	result, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to place order")
	}

	return result, nil
}

// ListOrders returns every order
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListOrdersByEmail returns the orders owned by email
func (s *orderService) ListOrdersByEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	orders, err := s.orderRepo.FindOrdersByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by email")
	}

	return orders, nil
}

// UpdateOrderStatus sets the status of an order, upserting unknown ids
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.UpdateResult, error) {
	if strings.TrimSpace(string(status)) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("orderStatus is required")
	}

	result, err := s.orderRepo.UpsertOrderStatus(ctx, id, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	return result, nil
}

// CancelOrder deletes an order
func (s *orderService) CancelOrder(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := s.orderRepo.DeleteOrder(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}

	return result, nil
}
