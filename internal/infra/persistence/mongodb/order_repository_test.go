package mongodb

import (
	"context"
	"testing"
	"time"

	"waterdrops/internal/domain/entity"
	domainerrors "waterdrops/internal/domain/errors"
	"waterdrops/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestOrderRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("CreateOrder stores the submitted fields", func(mt *mtest.T) {
		repo := newOrderRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		order := &entity.Order{Email: "a@x.com", OrderStatus: entity.OrderStatusPending}
		result, err := repo.CreateOrder(context.Background(), order)
		require.NoError(mt, err)
		assert.Equal(mt, result.InsertedID, order.ID)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "insert", started.CommandName)
		doc := started.Command.Lookup("documents", "0").Document()
		assert.Equal(mt, "a@x.com", doc.Lookup("email").StringValue())
		assert.Equal(mt, "pending", doc.Lookup("orderStatus").StringValue())
	})

	mt.Run("FindOrdersByEmail filters on email equality", func(mt *mtest.T) {
		repo := newOrderRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "a@x.com"}, {Key: "orderStatus", Value: "shipped"}},
		))

		orders, err := repo.FindOrdersByEmail(context.Background(), "a@x.com")
		require.NoError(mt, err)
		require.Len(mt, orders, 1)
		assert.Equal(mt, entity.OrderStatus("shipped"), orders[0].OrderStatus)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		assert.Equal(mt, "a@x.com", filter.Lookup("email").StringValue())
	})

	mt.Run("FindOrders sends an empty filter", func(mt *mtest.T) {
		repo := newOrderRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		orders, err := repo.FindOrders(context.Background())
		require.NoError(mt, err)
		assert.Empty(mt, orders)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		elems, err := filter.Elements()
		require.NoError(mt, err)
		assert.Empty(mt, elems)
	})

	mt.Run("UpsertOrderStatus updates an existing order", func(mt *mtest.T) {
		repo := newOrderRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		result, err := repo.UpsertOrderStatus(context.Background(), primitive.NewObjectID().Hex(), "shipped")
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), result.MatchedCount)
		assert.Equal(mt, int64(1), result.ModifiedCount)
		assert.Nil(mt, result.UpsertedID)

		update := mt.GetStartedEvent().Command.Lookup("updates", "0")
		assert.True(mt, update.Document().Lookup("upsert").Boolean())
		assert.Equal(mt, "shipped", update.Document().Lookup("u", "$set", "orderStatus").StringValue())
	})

	mt.Run("UpsertOrderStatus creates a document for an unknown id", func(mt *mtest.T) {
		repo := newOrderRepository(mt.Coll, time.Second)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: id}}}},
		))

		result, err := repo.UpsertOrderStatus(context.Background(), id.Hex(), "shipped")
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), result.UpsertedCount)
		require.NotNil(mt, result.UpsertedID)
		assert.Equal(mt, id.Hex(), *result.UpsertedID)
	})

	mt.Run("UpsertOrderStatus rejects malformed ids", func(mt *mtest.T) {
		repo := newOrderRepository(mt.Coll, time.Second)

		_, err := repo.UpsertOrderStatus(context.Background(), "a@x.com", "shipped")
		assert.True(mt, errors.Is(err, domainerrors.ErrInvalidID))
	})

	mt.Run("DeleteOrder on a missing id succeeds with zero count", func(mt *mtest.T) {
		repo := newOrderRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		result, err := repo.DeleteOrder(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), result.DeletedCount)
	})

	mt.Run("command errors become database errors", func(mt *mtest.T) {
		repo := newOrderRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		_, err := repo.FindOrders(context.Background())
		var appErr domainerrors.AppError
		require.True(mt, errors.As(err, &appErr))
		assert.Equal(mt, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	})
}
