// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dailyfresh/internal/delivery/http/middleware"
	"dailyfresh/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AddressHandler *handler.AddressHandler
	GoodsHandler   *handler.GoodsHandler
	CartHandler    *handler.CartHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	addressHandler *handler.AddressHandler
	goodsHandler   *handler.GoodsHandler
	cartHandler    *handler.CartHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		addressHandler: params.AddressHandler,
		goodsHandler:   params.GoodsHandler,
		cartHandler:    params.CartHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Storefront pages, served to anonymous and authenticated visitors alike
	e.GET("/", r.goodsHandler.Index, r.authMiddleware.OptionalAuthenticate)
	e.GET("/goods/:id", r.goodsHandler.Detail, r.authMiddleware.OptionalAuthenticate)
	e.GET("/goods/:id/qrcode", r.goodsHandler.ShareQR)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.GET("/active/:token", r.userHandler.Activate)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/info", r.goodsHandler.UserCenterInfo)
		userGroup.GET("/address", r.addressHandler.ListAddresses)
		userGroup.POST("/address", r.addressHandler.AddAddress)
		userGroup.POST("/logout_all", r.userHandler.LogoutAll)
	}

	// Cart routes that require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.List)
		cartGroup.GET("/count", r.cartHandler.Count)
		cartGroup.POST("", r.cartHandler.Add)
		cartGroup.PUT("/:sku", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/:sku", r.cartHandler.Remove)
	}
}
