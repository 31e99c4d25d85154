package mongodb

import (
	"context"
	"time"

	"waterdrops/internal/domain/entity"
	"waterdrops/internal/domain/repository"
	"waterdrops/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return newOrderRepository(store.Collection(model.OrdersCollection), store.operationTimeout)
}

func newOrderRepository(coll *mongo.Collection, timeout time.Duration) *orderRepository {
	return &orderRepository{
		coll:    coll,
		timeout: timeout,
	}
}

// CreateOrder persists a new order.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.InsertResult, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	res, err := repo.coll.InsertOne(ctx, fromOrderDomain(order))
	if err != nil {
		return nil, translateError(err, "failed to create order")
	}

	result := toInsertResult(res)
	order.ID = result.InsertedID

	return result, nil
}

// FindOrders retrieves every order.
func (repo *orderRepository) FindOrders(ctx context.Context) ([]*entity.Order, error) {
	return repo.find(ctx, bson.M{}, "failed to find orders")
}

// FindOrdersByEmail retrieves the orders owned by email.
func (repo *orderRepository) FindOrdersByEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	return repo.find(ctx, bson.M{"email": email}, "failed to find orders by email")
}

func (repo *orderRepository) find(ctx context.Context, filter bson.M, details string) ([]*entity.Order, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	orders, err := findAll(ctx, repo.coll, filter, toOrderDomain)
	if err != nil {
		return nil, translateError(err, details)
	}

	return orders, nil
}

// UpsertOrderStatus sets orderStatus on the order with the given id, creating
// a bare {_id, orderStatus} document when the id is unknown.
func (repo *orderRepository) UpsertOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"orderStatus": string(status)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, translateError(err, "failed to update order status")
	}

	return toUpdateResult(res), nil
}

// DeleteOrder removes an order by its ObjectID.
func (repo *orderRepository) DeleteOrder(ctx context.Context, id string) (*entity.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, translateError(err, "failed to delete order")
	}

	return toDeleteResult(res), nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:          data.ID.Hex(),
		Email:       data.Email,
		Name:        data.Name,
		ProductID:   data.ProductID,
		Address:     data.Address,
		Phone:       data.Phone,
		OrderStatus: entity.OrderStatus(data.OrderStatus),
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		Email:       data.Email,
		Name:        data.Name,
		ProductID:   data.ProductID,
		Address:     data.Address,
		Phone:       data.Phone,
		OrderStatus: string(data.OrderStatus),
	}
}
