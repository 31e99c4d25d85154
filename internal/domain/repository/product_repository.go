// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"waterdrops/internal/domain/entity"
)

// ProductRepository defines the catalogue operations on the products collection.
type ProductRepository interface {
	// FindProducts returns products in natural order. A limit <= 0 returns all of them.
	FindProducts(ctx context.Context, limit int64) ([]*entity.Product, error)

	// FindProductByID returns the product or (nil, nil) when no document has that id.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// CreateProduct inserts a product and reports the generated id.
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.InsertResult, error)

	// DeleteProduct removes the product with the given id; a missing id is a no-op.
	DeleteProduct(ctx context.Context, id string) (*entity.DeleteResult, error)
}
