package repository

import (
	"context"

	"waterdrops/internal/domain/entity"
)

// ReviewRepository defines operations on the reviews collection.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review *entity.Review) (*entity.InsertResult, error)
	FindReviews(ctx context.Context) ([]*entity.Review, error)
}
