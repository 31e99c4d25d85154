package impl

import (
	"context"
	"testing"

	"waterdrops/internal/domain/entity"
	mockRepo "waterdrops/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateReview(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := NewReviewService(reviewRepo)
	ctx := context.Background()

	review := &entity.Review{Name: "Ana", Rating: 5, Comment: "Great water"}
	reviewRepo.EXPECT().
		CreateReview(ctx, review).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: "64b7f0c2a1b2c3d4e5f60718"}, nil)

	result, err := service.CreateReview(ctx, review)
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", result.InsertedID)
}

func TestReviewService_ListReviews_Error(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := NewReviewService(reviewRepo)
	ctx := context.Background()

	reviewRepo.EXPECT().FindReviews(ctx).Return(nil, errors.New("db error"))

	reviews, err := service.ListReviews(ctx)
	assert.Error(t, err)
	assert.Nil(t, reviews)
}
