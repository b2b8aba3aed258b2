// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/policy"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	VendorHandler   *handler.VendorHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	vendorHandler   *handler.VendorHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		vendorHandler:   params.VendorHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	api := e.Group("/api")

	r.registerAuthRoutes(api)
	r.registerVendorRoutes(api)
	r.registerPublicRoutes(api)
	r.registerAdminRoutes(api)
}

func (r *router) registerAuthRoutes(api *echo.Group) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/guest", r.authHandler.CreateGuest)
		authGroup.POST("/guest/:id", r.authHandler.CreateGuest)
		authGroup.POST("/register/customer", r.authHandler.RegisterCustomer)
		authGroup.POST("/register/vendor", r.authHandler.RegisterVendor, r.authMiddleware.OptionalAuth)
		authGroup.GET("/status/:id", r.authHandler.Status)
		authGroup.POST("/send-otp", r.authHandler.SendOTP)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP)

		// Login resolves the credential itself; the caller may not have an account yet.
		authGroup.POST("/login", r.authHandler.Login)

		// update-role only needs a session; the usecase reports non-customers with a dedicated error.
		authGroup.POST("/update-role", r.authHandler.UpdateRole, r.authMiddleware.Authenticate)
		authGroup.GET("/profile", r.authHandler.Profile, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}
}

func (r *router) registerVendorRoutes(api *echo.Group) {
	vendorGroup := api.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.Authenticate)
	vendorGroup.Use(r.authMiddleware.Require(policy.Vendors))
	{
		vendorGroup.POST("/update", r.vendorHandler.UpdateProfile)
		vendorGroup.GET("/qr", r.vendorHandler.StorefrontQR)

		vendorGroup.POST("/products", r.productHandler.Create)
		vendorGroup.GET("/products", r.productHandler.ListVendor)
		vendorGroup.GET("/products/low-stock", r.productHandler.LowStock)
		vendorGroup.PUT("/products/:id", r.productHandler.Update)
		vendorGroup.PUT("/products/:id/status", r.productHandler.SetStatus)
		vendorGroup.DELETE("/products/:id", r.productHandler.Delete)
	}
}

func (r *router) registerPublicRoutes(api *echo.Group) {
	api.GET("/categories", r.categoryHandler.ListActive)
	api.GET("/categories/tree", r.categoryHandler.Tree)
	api.GET("/categories/:id", r.categoryHandler.GetPublic)

	api.GET("/products", r.productHandler.ListPublic)
	api.GET("/products/:id", r.productHandler.GetPublic)
}

func (r *router) registerAdminRoutes(api *echo.Group) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.Require(policy.Admins))
	{
		adminGroup.POST("/categories", r.categoryHandler.Create)
		adminGroup.GET("/categories", r.categoryHandler.ListAdmin)
		adminGroup.GET("/categories/:id", r.categoryHandler.GetAdmin)
		adminGroup.PUT("/categories/:id", r.categoryHandler.Update)
		adminGroup.PUT("/categories/:id/status", r.categoryHandler.ToggleStatus)
		adminGroup.DELETE("/categories/:id", r.categoryHandler.Delete)

		adminGroup.GET("/products", r.productHandler.ListAdmin)
		adminGroup.PUT("/products/:id/moderate", r.productHandler.Moderate)

		adminGroup.GET("/vendors/pending", r.vendorHandler.ListPending)
		adminGroup.PUT("/vendors/:id/approve", r.vendorHandler.Decide)
	}
}
