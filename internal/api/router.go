package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/social-api/docs"
	"github.com/99minutos/social-api/internal/api/handler"
	"github.com/99minutos/social-api/internal/api/middleware"
	"github.com/99minutos/social-api/internal/core/ports"
	"github.com/99minutos/social-api/internal/core/service"
	"github.com/99minutos/social-api/internal/infrastructure/http/handlers"
)

// Dependencies are the adapters the router wires into the services.
type Dependencies struct {
	Users    ports.UserRepository
	Posts    ports.PostRepository
	Sessions ports.SessionStore

	// Pingers are checked by the readiness probe, keyed by name.
	Pingers map[string]handlers.Pinger

	Cookie handler.CookieConfig
	Log    zerolog.Logger

	// Metrics receives the HTTP metrics. Nil means the default registry.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))

	// Metrics wrap the request logger, which renders errors, so the
	// recorded status is the one the client saw.
	promConfig := echoprometheus.MiddlewareConfig{Namespace: "social", Subsystem: "http"}
	promHandler := echoprometheus.NewHandler()
	if deps.Metrics != nil {
		promConfig.Registerer = deps.Metrics
		promHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Metrics})
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promConfig))
	e.Use(middleware.RequestLogger(deps.Log))

	// --- Dependencies ---
	authService := service.NewAuthService(deps.Users, deps.Sessions, deps.Log)
	userService := service.NewUserService(deps.Users, deps.Log)
	postService := service.NewPostService(deps.Posts, deps.Users, deps.Log)

	authHandler := handler.NewAuthHandler(authService, deps.Cookie)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	requireSession := middleware.Session(authService, deps.Cookie.Name)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.POST("/users", userHandler.Create)

	// --- User routes ---
	e.GET("/users", userHandler.List, requireSession)
	e.GET("/users/:id", userHandler.Get, requireSession)
	e.PUT("/users/:id", userHandler.Update, requireSession)
	e.DELETE("/users/:id", userHandler.Delete, requireSession)

	// --- Post routes ---
	e.POST("/posts", postHandler.Create, requireSession)
	e.GET("/posts", postHandler.List, requireSession)
	e.GET("/posts/:id", postHandler.Get, requireSession)
	e.GET("/posts/user/:id", postHandler.ListByUser, requireSession)
	e.PUT("/posts/:id", postHandler.Update, requireSession)
	e.DELETE("/posts/:id", postHandler.Delete, requireSession)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Pingers)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", promHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
