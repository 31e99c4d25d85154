package impl

import (
	"context"

	"waterdrops/internal/domain/entity"
	"waterdrops/internal/domain/repository"
	"waterdrops/internal/errors"
	"waterdrops/internal/usecase"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(reviewRepo repository.ReviewRepository) usecase.ReviewUsecase {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) CreateReview(ctx context.Context, review *entity.Review) (*entity.InsertResult, error) {
	result, err := s.reviewRepo.CreateReview(ctx, review)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	return result, nil
}

func (s *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindReviews(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
