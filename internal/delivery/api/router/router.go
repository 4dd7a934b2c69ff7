// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/internal/delivery/api/middleware"
	"github.com/umithief/motovibe6/internal/delivery/api/router/handler"
	"github.com/umithief/motovibe6/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProductHandler   *handler.ProductHandler
	ContentHandler   *handler.ContentHandler
	OrderHandler     *handler.OrderHandler
	ForumHandler     *handler.ForumHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	productHandler   *handler.ProductHandler
	contentHandler   *handler.ContentHandler
	orderHandler     *handler.OrderHandler
	forumHandler     *handler.ForumHandler
	analyticsHandler *handler.AnalyticsHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		productHandler:   params.ProductHandler,
		contentHandler:   params.ContentHandler,
		orderHandler:     params.OrderHandler,
		forumHandler:     params.ForumHandler,
		analyticsHandler: params.AnalyticsHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authenticated := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, authenticated)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.POST("", r.productHandler.CreateProduct, authenticated, adminOnly)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, authenticated, adminOnly)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, authenticated, adminOnly)
	}

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.GET("", r.contentHandler.ListCategories)
		categoriesGroup.POST("", r.contentHandler.CreateCategory, authenticated, adminOnly)
		categoriesGroup.PUT("/:id", r.contentHandler.UpdateCategory, authenticated, adminOnly)
		categoriesGroup.DELETE("/:id", r.contentHandler.DeleteCategory, authenticated, adminOnly)
	}

	slidesGroup := api.Group("/slides")
	{
		slidesGroup.GET("", r.contentHandler.ListSlides)
		slidesGroup.POST("", r.contentHandler.CreateSlide, authenticated, adminOnly)
		slidesGroup.PUT("/:id", r.contentHandler.UpdateSlide, authenticated, adminOnly)
		slidesGroup.DELETE("/:id", r.contentHandler.DeleteSlide, authenticated, adminOnly)
	}

	// Ownership of individual orders is checked in the handler
	ordersGroup := api.Group("/orders")
	ordersGroup.Use(authenticated)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/qr", r.orderHandler.GetTrackingQR)
		ordersGroup.PUT("/:id", r.orderHandler.UpdateStatus, adminOnly)
	}

	forumGroup := api.Group("/forum/topics")
	{
		forumGroup.GET("", r.forumHandler.ListTopics)
		forumGroup.POST("", r.forumHandler.CreateTopic, authenticated)
		forumGroup.POST("/:id/comments", r.forumHandler.AddComment, authenticated)
		forumGroup.POST("/:id/like", r.forumHandler.LikeTopic)
		forumGroup.POST("/:id/view", r.forumHandler.ViewTopic)
	}

	statsGroup := api.Group("/stats")
	{
		statsGroup.GET("", r.analyticsHandler.GetStats)
		statsGroup.POST("/visit", r.analyticsHandler.RecordVisit)
	}

	analyticsGroup := api.Group("/analytics")
	{
		analyticsGroup.POST("/event", r.analyticsHandler.TrackEvent, r.authMiddleware.Identify)
		analyticsGroup.GET("/dashboard", r.analyticsHandler.GetDashboard, authenticated, adminOnly)
	}

	api.GET("/logs", r.analyticsHandler.ListLogs, authenticated, adminOnly)
}
