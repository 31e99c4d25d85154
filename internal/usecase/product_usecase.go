package usecase

import (
	"context"

	"waterdrops/internal/domain/entity"
)

// ProductUsecase defines the catalogue use cases.
type ProductUsecase interface {
	// ListProducts returns the catalogue, capped at limit when limit > 0.
	ListProducts(ctx context.Context, limit int64) ([]*entity.Product, error)

	// GetProduct returns the product or nil when the id is unknown.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	CreateProduct(ctx context.Context, product *entity.Product) (*entity.InsertResult, error)

	DeleteProduct(ctx context.Context, id string) (*entity.DeleteResult, error)
}
