package impl

import (
	"context"
	"testing"

	"waterdrops/internal/domain/entity"
	mockRepo "waterdrops/internal/mocks/repository"
	"waterdrops/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	return productServiceFixtures{
		service:     NewProductService(productRepo),
		productRepo: productRepo,
	}
}

func TestProductService_ListProducts(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	products := []*entity.Product{{ID: "1", Name: "Bottle"}, {ID: "2", Name: "Filter"}}
	fx.productRepo.EXPECT().FindProducts(ctx, int64(2)).Return(products, nil)

	got, err := fx.service.ListProducts(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestProductService_ListProducts_NegativeLimitMeansAll(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindProducts(ctx, int64(0)).Return([]*entity.Product{}, nil)

	got, err := fx.service.ListProducts(ctx, -3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindProductByID(ctx, "64b7f0c2a1b2c3d4e5f60718").Return(nil, nil)

	got, err := fx.service.GetProduct(ctx, "64b7f0c2a1b2c3d4e5f60718")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := &entity.Product{Name: "Bottle", Price: 12.5}
	fx.productRepo.EXPECT().
		CreateProduct(ctx, product).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: "64b7f0c2a1b2c3d4e5f60718"}, nil)

	result, err := fx.service.CreateProduct(ctx, product)
	require.NoError(t, err)
	assert.True(t, result.Acknowledged)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", result.InsertedID)
}

func TestProductService_DeleteProduct_Error(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	dbErr := errors.New("db error")
	fx.productRepo.EXPECT().DeleteProduct(ctx, "64b7f0c2a1b2c3d4e5f60718").Return(nil, dbErr)

	result, err := fx.service.DeleteProduct(ctx, "64b7f0c2a1b2c3d4e5f60718")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}
