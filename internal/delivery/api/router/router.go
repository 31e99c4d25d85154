// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"waterdrops/internal/delivery/api/middleware"
	"waterdrops/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	ProductHandler  *handler.ProductHandler
	ReviewHandler   *handler.ReviewHandler
	OrderHandler    *handler.OrderHandler
	UserHandler     *handler.UserHandler
	AdminMiddleware *middleware.AdminMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	productHandler  *handler.ProductHandler
	reviewHandler   *handler.ReviewHandler
	orderHandler    *handler.OrderHandler
	userHandler     *handler.UserHandler
	adminMiddleware *middleware.AdminMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		productHandler:  params.ProductHandler,
		reviewHandler:   params.ReviewHandler,
		orderHandler:    params.OrderHandler,
		userHandler:     params.UserHandler,
		adminMiddleware: params.AdminMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.HealthCheck)

	requireAdmin := r.adminMiddleware.RequireAdmin

	productsGroup := e.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.POST("", r.productHandler.CreateProduct, requireAdmin)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, requireAdmin)
	}

	reviewsGroup := e.Group("/reviews")
	{
		reviewsGroup.POST("", r.reviewHandler.CreateReview)
		reviewsGroup.GET("", r.reviewHandler.ListReviews)
	}

	ordersGroup := e.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		// A blank email segment gets a 400 instead of falling through.
		ordersGroup.GET("/by-email/", r.orderHandler.ListOrdersByEmail)
		ordersGroup.GET("/by-email/:email", r.orderHandler.ListOrdersByEmail)
		ordersGroup.PUT("/:id", r.orderHandler.UpdateOrderStatus, requireAdmin)
		// Customers cancel their own orders, so deletion stays public.
		ordersGroup.DELETE("/:id", r.orderHandler.CancelOrder)
	}

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("", r.userHandler.RegisterUser)
		usersGroup.PUT("/admin", r.userHandler.PromoteToAdmin, requireAdmin)
		usersGroup.GET("/", r.userHandler.CheckAdmin)
		usersGroup.GET("/:email", r.userHandler.CheckAdmin)
	}
}
