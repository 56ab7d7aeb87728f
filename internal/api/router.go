package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventhub/event-platform/internal/api/handler"
	"github.com/eventhub/event-platform/internal/api/middleware"
	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/service"
	mongodb "github.com/eventhub/event-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/eventhub/event-platform/internal/infrastructure/db/redis"
)

// Options carries the settings the router needs beyond its connections.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("eventhub"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	registrationRepo := mongodb.NewRegistrationRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	tokens := service.NewTokenManager(opts.JWTSecret, opts.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, denylist, auditRepo, log)
	eventService := service.NewEventService(eventRepo, auditRepo, log)
	registrationService := service.NewRegistrationService(registrationRepo, eventRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)

	authGate := middleware.Auth(tokens, userRepo, denylist)
	organizerOnly := middleware.RBAC(domain.RoleOrganizer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authGate)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/me", authHandler.Profile)
	v1.PUT("/me", authHandler.UpdateProfile)

	v1.GET("/events", eventHandler.List)
	v1.GET("/events/mine", eventHandler.Mine, organizerOnly)
	v1.GET("/events/:id", eventHandler.Get)
	v1.POST("/events", eventHandler.Create, organizerOnly)
	v1.PUT("/events/:id", eventHandler.Update, organizerOnly)
	v1.DELETE("/events/:id", eventHandler.Delete, organizerOnly)
	v1.PATCH("/events/:id/status", eventHandler.Review, adminOnly)

	v1.POST("/events/:id/registrations", registrationHandler.Register)
	v1.GET("/registrations/mine", registrationHandler.Mine)
	v1.GET("/registrations", registrationHandler.All, adminOnly)
	v1.DELETE("/registrations/:id", registrationHandler.Cancel)

	v1.PATCH("/users/:id/block", authHandler.ToggleBlock, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
