// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"sitd/config"
	"sitd/internal/delivery/http/middleware"
	"sitd/internal/delivery/http/router/handler"
	"sitd/internal/domain/entity"
	"sitd/internal/infra/metrics"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	MerchantHandler *handler.MerchantHandler
	EventHandler    *handler.EventHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics `optional:"true"`
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	merchantHandler *handler.MerchantHandler
	eventHandler    *handler.EventHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		merchantHandler: params.MerchantHandler,
		eventHandler:    params.EventHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/token", r.authHandler.Token)
	}

	authenticate := r.authMiddleware.Authenticate
	e.GET("/me", r.authHandler.Me, authenticate)
	e.GET("/admin/ping", r.authHandler.AdminPing, authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))

	merchantsGroup := e.Group("/merchants")
	{
		merchantsGroup.GET("", r.merchantHandler.ListMerchants)
		merchantsGroup.POST("", r.merchantHandler.CreateMerchant,
			authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
		merchantsGroup.GET("/qr/resolve", r.merchantHandler.ResolveMerchantQR)
		merchantsGroup.GET("/:id", r.merchantHandler.GetMerchant)
		merchantsGroup.GET("/:id/qr", r.merchantHandler.MerchantQRCode)
	}

	eventsGroup := e.Group("/events")
	{
		eventsGroup.GET("", r.eventHandler.ListEvents)
		eventsGroup.POST("", r.eventHandler.CreateEvent,
			authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleMerchant))
	}

	r.registerMetricsRoute(e)
}

func (r *router) registerMetricsRoute(e *echo.Echo) {
	if r.metrics == nil {
		return
	}

	path := defaultMetricsPath
	if r.config.Metrics != nil && r.config.Metrics.Path != "" {
		path = r.config.Metrics.Path
	}

	e.GET(path, echo.WrapHandler(r.metrics.Handler()))
}
