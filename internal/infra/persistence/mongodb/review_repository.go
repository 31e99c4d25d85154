package mongodb

import (
	"context"
	"time"

	"waterdrops/internal/domain/entity"
	"waterdrops/internal/domain/repository"
	"waterdrops/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type reviewRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return newReviewRepository(store.Collection(model.ReviewsCollection), store.operationTimeout)
}

func newReviewRepository(coll *mongo.Collection, timeout time.Duration) *reviewRepository {
	return &reviewRepository{coll: coll, timeout: timeout}
}

func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) (*entity.InsertResult, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	res, err := repo.coll.InsertOne(ctx, &model.ReviewModel{
		Name:    review.Name,
		Email:   review.Email,
		Rating:  review.Rating,
		Comment: review.Comment,
	})
	if err != nil {
		return nil, translateError(err, "failed to create review")
	}

	result := toInsertResult(res)
	review.ID = result.InsertedID

	return result, nil
}

func (repo *reviewRepository) FindReviews(ctx context.Context) ([]*entity.Review, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	reviews, err := findAll(ctx, repo.coll, bson.M{}, toReviewDomain)
	if err != nil {
		return nil, translateError(err, "failed to find reviews")
	}

	return reviews, nil
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:      data.ID.Hex(),
		Name:    data.Name,
		Email:   data.Email,
		Rating:  data.Rating,
		Comment: data.Comment,
	}
}
