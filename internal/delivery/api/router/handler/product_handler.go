package handler

import (
	"log/slog"

	"waterdrops/internal/delivery/api/response"
	"waterdrops/internal/delivery/api/validator"
	"waterdrops/internal/domain/entity"
	"waterdrops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalogue handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for adding a product
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"img"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
}

func (r *CreateProductRequest) toEntity() *entity.Product {
	return &entity.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Rating:      r.Rating,
	}
}

// ListProducts handles GET /products?size=k
func (h *ProductHandler) ListProducts(c echo.Context) error {
	limit := parseSize(c.QueryParam("size"))

	products, err := h.productUC.ListProducts(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// GetProduct handles GET /products/:id. An unknown id answers null.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if product == nil {
		return response.OK(c, nil)
	}

	return response.OK(c, product)
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	result, err := h.productUC.CreateProduct(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	result, err := h.productUC.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}
