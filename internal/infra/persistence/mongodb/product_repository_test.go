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

func TestProductRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("FindProducts applies a positive limit", func(mt *mtest.T) {
		repo := newProductRepository(mt.Coll, time.Second)
		first := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: first}, {Key: "name", Value: "Spring Water"}, {Key: "price", Value: 2.5}},
		))

		products, err := repo.FindProducts(context.Background(), 1)
		require.NoError(mt, err)
		require.Len(mt, products, 1)
		assert.Equal(mt, first.Hex(), products[0].ID)
		assert.Equal(mt, "Spring Water", products[0].Name)
		assert.InDelta(mt, 2.5, products[0].Price, 0.0001)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		limit, ok := started.Command.Lookup("limit").AsInt64OK()
		require.True(mt, ok)
		assert.Equal(mt, int64(1), limit)
	})

	mt.Run("FindProducts without limit returns every document", func(mt *mtest.T) {
		repo := newProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Spring Water"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Mineral Water"}},
		))

		products, err := repo.FindProducts(context.Background(), 0)
		require.NoError(mt, err)
		assert.Len(mt, products, 2)

		_, err = mt.GetStartedEvent().Command.LookupErr("limit")
		assert.Error(mt, err)
	})

	mt.Run("FindProducts on an empty collection is an empty slice", func(mt *mtest.T) {
		repo := newProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		products, err := repo.FindProducts(context.Background(), 0)
		require.NoError(mt, err)
		assert.NotNil(mt, products)
		assert.Empty(mt, products)
	})

	mt.Run("FindProductByID returns the document", func(mt *mtest.T) {
		repo := newProductRepository(mt.Coll, time.Second)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "name", Value: "Alkaline"}, {Key: "img", Value: "https://img/alk.png"}},
		))

		product, err := repo.FindProductByID(context.Background(), id.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, product)
		assert.Equal(mt, id.Hex(), product.ID)
		assert.Equal(mt, "https://img/alk.png", product.Image)
	})

	mt.Run("FindProductByID returns nil when absent", func(mt *mtest.T) {
		repo := newProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		product, err := repo.FindProductByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Nil(mt, product)
	})

	mt.Run("FindProductByID rejects malformed ids without a round trip", func(mt *mtest.T) {
		repo := newProductRepository(mt.Coll, time.Second)

		product, err := repo.FindProductByID(context.Background(), "not-an-id")
		assert.Nil(mt, product)
		assert.True(mt, errors.Is(err, domainerrors.ErrInvalidID))
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("CreateProduct reports the generated id", func(mt *mtest.T) {
		repo := newProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		product := &entity.Product{Name: "Spring Water", Price: 2.5}
		result, err := repo.CreateProduct(context.Background(), product)
		require.NoError(mt, err)
		assert.True(mt, result.Acknowledged)
		assert.Len(mt, result.InsertedID, 24)
		assert.Equal(mt, result.InsertedID, product.ID)
	})

	mt.Run("CreateProduct maps write errors", func(mt *mtest.T) {
		repo := newProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.CreateProduct(context.Background(), &entity.Product{Name: "Spring Water"})
		var appErr domainerrors.AppError
		require.True(mt, errors.As(err, &appErr))
		assert.Equal(mt, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	})

	mt.Run("DeleteProduct twice is a no-op the second time", func(mt *mtest.T) {
		repo := newProductRepository(mt.Coll, time.Second)
		id := primitive.NewObjectID().Hex()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		first, err := repo.DeleteProduct(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), first.DeletedCount)

		second, err := repo.DeleteProduct(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), second.DeletedCount)
		assert.True(mt, second.Acknowledged)
	})
}
