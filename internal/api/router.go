package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/cedarhouse/restaurant-api/docs"
	"github.com/cedarhouse/restaurant-api/internal/api/handler"
	"github.com/cedarhouse/restaurant-api/internal/api/metrics"
	"github.com/cedarhouse/restaurant-api/internal/api/middleware"
	"github.com/cedarhouse/restaurant-api/internal/core/ports"
	"github.com/cedarhouse/restaurant-api/internal/infrastructure/http/handlers"
)

// Dependencies are the services and probes the router mounts.
type Dependencies struct {
	Auth     ports.AuthService
	Menu     ports.MenuService
	Messages ports.MessageService
	Stats    ports.StatsService
	Audit    ports.AuditService

	// Readiness is optional; /health/ready is not mounted without it.
	Readiness *handlers.HealthDependenciesHandler

	CORSOrigins []string
	Log         zerolog.Logger

	// Registry receives the HTTP and custom metrics and serves /metrics. Nil
	// means the default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(deps.CORSOrigins),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.BodyLimit("1M"))

	promCfg := echoprometheus.MiddlewareConfig{Subsystem: "restaurant"}
	handlerCfg := echoprometheus.HandlerConfig{}
	if deps.Registry != nil {
		promCfg.Registerer = deps.Registry
		handlerCfg.Gatherer = deps.Registry
		deps.Registry.MustRegister(metrics.Collectors()...)
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	menuHandler := handler.NewMenuHandler(deps.Menu)
	messageHandler := handler.NewMessageHandler(deps.Messages)
	adminHandler := handler.NewAdminHandler(deps.Stats, deps.Audit)

	requireAuth := middleware.Auth(deps.Auth)
	requireAdmin := middleware.RequireAdmin()

	api := e.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/verify", authHandler.Verify, requireAuth)

	// --- Guestbook ---
	api.GET("/messages", messageHandler.List)
	api.POST("/messages", messageHandler.Create)
	api.PUT("/messages/:id", messageHandler.Update, requireAuth, requireAdmin)
	api.DELETE("/messages/:id", messageHandler.Delete, requireAuth, requireAdmin)

	// --- Menu ---
	api.GET("/menu", menuHandler.List)
	api.POST("/menu/:table", menuHandler.Create, requireAuth, requireAdmin)
	api.PUT("/menu/:table/:id", menuHandler.Update, requireAuth, requireAdmin)
	api.DELETE("/menu/:table/:id", menuHandler.Delete, requireAuth, requireAdmin)

	// --- Admin ---
	admin := api.Group("/admin", requireAuth, requireAdmin)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/audit", adminHandler.Audit)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	if deps.Readiness != nil {
		e.GET("/health/ready", deps.Readiness.Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(handlerCfg))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// requestLogger feeds echo's request log values into zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			switch {
			case v.Status >= 500:
				evt = log.Error().Err(v.Error)
			case v.Error != nil:
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
