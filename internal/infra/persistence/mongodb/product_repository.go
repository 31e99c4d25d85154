package mongodb

import (
	"context"
	"time"

	"waterdrops/internal/domain/entity"
	"waterdrops/internal/domain/repository"
	"waterdrops/internal/errors"
	"waterdrops/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(store *Store) repository.ProductRepository {
	return newProductRepository(store.Collection(model.ProductsCollection), store.operationTimeout)
}

func newProductRepository(coll *mongo.Collection, timeout time.Duration) *productRepository {
	return &productRepository{
		coll:    coll,
		timeout: timeout,
	}
}

// FindProducts returns products in natural order, capped at limit when limit > 0.
func (repo *productRepository) FindProducts(ctx context.Context, limit int64) ([]*entity.Product, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	products, err := findAll(ctx, repo.coll, bson.M{}, toProductDomain, opts)
	if err != nil {
		return nil, translateError(err, "failed to find products")
	}

	return products, nil
}

// FindProductByID retrieves a product by its ObjectID.
func (repo *productRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	var productM model.ProductModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&productM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, translateError(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) (*entity.InsertResult, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	res, err := repo.coll.InsertOne(ctx, fromProductDomain(product))
	if err != nil {
		return nil, translateError(err, "failed to create product")
	}

	result := toInsertResult(res)
	product.ID = result.InsertedID

	return result, nil
}

// DeleteProduct removes a product by its ObjectID.
func (repo *productRepository) DeleteProduct(ctx context.Context, id string) (*entity.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, translateError(err, "failed to delete product")
	}

	return toDeleteResult(res), nil
}

// toProductDomain converts a ProductModel document to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID.Hex(),
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Rating:      data.Rating,
	}
}

// fromProductDomain converts a domain Product entity to a ProductModel document.
// The id is always left for the store to assign.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Rating:      data.Rating,
	}
}
