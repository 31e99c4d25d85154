package impl

import (
	"context"

	"waterdrops/internal/domain/entity"
	"waterdrops/internal/domain/repository"
	"waterdrops/internal/errors"
	"waterdrops/internal/usecase"
)

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service instance
func NewProductService(productRepo repository.ProductRepository) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
	}
}

// ListProducts returns the catalogue; limit <= 0 means no cap.
func (s *productService) ListProducts(ctx context.Context, limit int64) ([]*entity.Product, error) {
	if limit < 0 {
		limit = 0
	}

	products, err := s.productRepo.FindProducts(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns nil without error when the product does not exist.
func (s *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.InsertResult, error) {
	result, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return result, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete product")
	}

	return result, nil
}
