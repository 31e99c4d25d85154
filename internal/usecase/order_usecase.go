package usecase

import (
	"context"

	"waterdrops/internal/domain/entity"
)

// OrderUsecase defines the order management use cases.
type OrderUsecase interface {
	// PlaceOrder stores a new order, defaulting its status to pending.
	PlaceOrder(ctx context.Context, order *entity.Order) (*entity.InsertResult, error)

	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// ListOrdersByEmail returns exactly the orders owned by email.
	ListOrdersByEmail(ctx context.Context, email string) ([]*entity.Order, error)

	// UpdateOrderStatus sets the status of an order. Unknown ids are upserted.
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.UpdateResult, error)

	// CancelOrder deletes an order; deleting twice is a successful no-op.
	CancelOrder(ctx context.Context, id string) (*entity.DeleteResult, error)
}
