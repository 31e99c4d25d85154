package repository

import (
	"context"

	"waterdrops/internal/domain/entity"
)

// OrderRepository defines operations on the orders collection.
type OrderRepository interface {
	// CreateOrder inserts an order and reports the generated id.
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.InsertResult, error)

	// FindOrders returns every order.
	FindOrders(ctx context.Context) ([]*entity.Order, error)

	// FindOrdersByEmail returns the orders whose email equals the given value exactly.
	FindOrdersByEmail(ctx context.Context, email string) ([]*entity.Order, error)

	// UpsertOrderStatus sets orderStatus on the order with the given id. When no
	// order matches, a new document holding only the id and status is created.
	UpsertOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.UpdateResult, error)

	// DeleteOrder removes the order with the given id; a missing id is a no-op.
	DeleteOrder(ctx context.Context, id string) (*entity.DeleteResult, error)
}
