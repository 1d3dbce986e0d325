// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"erpgate/internal/delivery/api/middleware"
	"erpgate/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	PermissionHandler *handler.PermissionHandler
	ResolverHandler   *handler.ResolverHandler
	AuthMiddleware    *middleware.AuthMiddleware
	GuardMiddleware   *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	permissionHandler *handler.PermissionHandler
	resolverHandler   *handler.ResolverHandler
	authMiddleware    *middleware.AuthMiddleware
	guardMiddleware   *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		permissionHandler: params.PermissionHandler,
		resolverHandler:   params.ResolverHandler,
		authMiddleware:    params.AuthMiddleware,
		guardMiddleware:   params.GuardMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential issuing; no bearer token yet
	e.POST("/login", r.authHandler.Login)
	e.POST("/token/rotate", r.authHandler.Rotate)

	// Allow-list management for the calling credential
	tokenGroup := e.Group("/token")
	tokenGroup.Use(r.authMiddleware.RequireCredential)
	{
		tokenGroup.POST("/permissions", r.permissionHandler.Replace)
		tokenGroup.PATCH("/update-permission", r.permissionHandler.Patch)
	}

	// Generic resolver: credential, then endpoint guard; origin and scope are checked by the resolver
	autoGroup := e.Group("/v1/auto")
	autoGroup.Use(r.authMiddleware.RequireCredential)
	autoGroup.Use(r.guardMiddleware.RequireEndpoint)
	{
		for _, path := range []string{
			"/:channel/:resourceType/:action",
			"/:channel/:resourceType/:action/:resourceId",
		} {
			autoGroup.POST(path, r.resolverHandler.Resolve)
			autoGroup.GET(path, r.resolverHandler.Resolve)
			autoGroup.PUT(path, r.resolverHandler.Resolve)
			autoGroup.DELETE(path, r.resolverHandler.Resolve)
		}
	}
}
