package handler

import (
	"waterdrops/internal/delivery/api/response"
	"waterdrops/internal/delivery/api/validator"
	"waterdrops/internal/domain/entity"
	"waterdrops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

// CreateReviewRequest represents the request body for posting a testimonial
type CreateReviewRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	result, err := h.reviewUC.CreateReview(c.Request().Context(), &entity.Review{
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}

// ListReviews handles GET /reviews
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListReviews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reviews)
}
