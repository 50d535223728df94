// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shoply/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/users")
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.POST("", r.userHandler.Create)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.PUT("/:id", r.userHandler.Update)
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.POST("", r.categoryHandler.Create)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
		categoryGroup.PUT("/:id", r.categoryHandler.Update)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete)
	}

	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.POST("", r.productHandler.Create)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.DELETE("/:id", r.productHandler.Delete)
	}

	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.PUT("/:id", r.orderHandler.Update)
		orderGroup.DELETE("/:id", r.orderHandler.Delete)
	}
}
