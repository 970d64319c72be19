// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/BeMaTech82/hortago/internal/delivery/http/middleware"
	"github.com/BeMaTech82/hortago/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Role strings carried in access tokens.
const (
	roleSeller = "seller"
	roleBuyer  = "buyer"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	SessionHandler *handler.SessionHandler
	ProductHandler *handler.ProductHandler
	SearchHandler  *handler.SearchHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	sessionHandler *handler.SessionHandler
	productHandler *handler.ProductHandler
	searchHandler  *handler.SearchHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		sessionHandler: params.SessionHandler,
		productHandler: params.ProductHandler,
		searchHandler:  params.SearchHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/refresh", r.sessionHandler.RefreshToken)
		authGroup.POST("/logout", r.sessionHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.POST("/location/refresh", r.userHandler.RefreshLocation)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Product listing routes
	productsGroup := apiV1.Group("/products")
	{
		// Browsing is open; publishing and managing require the seller role
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)

		sellerGroup := productsGroup.Group("")
		sellerGroup.Use(r.authMiddleware.Authenticate)
		sellerGroup.Use(r.authMiddleware.RequireRole(roleSeller))
		{
			sellerGroup.POST("", r.productHandler.CreateProduct)
			sellerGroup.PATCH("/:id/status", r.productHandler.UpdateProductStatus)
			sellerGroup.GET("/:id/qr", r.productHandler.GenerateStandQR)
		}
	}

	// Saved search routes (require authentication and buyer role)
	searchesGroup := apiV1.Group("/searches")
	searchesGroup.Use(r.authMiddleware.Authenticate)
	searchesGroup.Use(r.authMiddleware.RequireRole(roleBuyer))
	{
		searchesGroup.POST("", r.searchHandler.CreateSearch)
		searchesGroup.GET("", r.searchHandler.GetUserSearches)
		searchesGroup.DELETE("/:id", r.searchHandler.DeleteSearch)
	}

	// Match history routes
	matchesGroup := apiV1.Group("/matches")
	matchesGroup.Use(r.authMiddleware.Authenticate)
	{
		matchesGroup.GET("", r.searchHandler.GetUserMatches)
	}

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	devicesGroup.Use(r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
