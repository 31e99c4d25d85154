package usecase

import (
	"context"

	"waterdrops/internal/domain/entity"
)

// ReviewUsecase defines the testimonial use cases.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, review *entity.Review) (*entity.InsertResult, error)
	ListReviews(ctx context.Context) ([]*entity.Review, error)
}
