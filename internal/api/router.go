package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/nevseti/fincloud-system/internal/api/handler"
	"github.com/nevseti/fincloud-system/internal/api/middleware"
	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/service"
	"github.com/nevseti/fincloud-system/internal/infrastructure/client"
	"github.com/nevseti/fincloud-system/internal/infrastructure/config"
	"github.com/nevseti/fincloud-system/internal/infrastructure/db/postgres"
	redisdb "github.com/nevseti/fincloud-system/internal/infrastructure/db/redis"
)

// newEcho builds an Echo instance with the middleware every service shares.
func newEcho(serviceName string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware(serviceName))

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// NewAuthRouter wires the identity service: registration, login, profile,
// and admin-only user management.
func NewAuthRouter(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("auth_service", log)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewHasher(cfg.BcryptCost)

	userRepo := postgres.NewUserRepository(pool)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, hasher, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(tokens)

	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/users/me", authHandler.Me, authMiddleware)

	e.GET("/users", userHandler.List, authMiddleware)
	e.POST("/users", userHandler.Create, authMiddleware)
	e.PUT("/users/:id", userHandler.Update, authMiddleware)
	e.DELETE("/users/:id", userHandler.Delete, authMiddleware)

	registerHealth(e, handler.NewHealthHandler("auth-service"), handler.NewReadinessHandler(pool, nil))
	return e
}

// NewFinanceRouter wires the ledger service: operation recording, scoped
// listing, and balance totals.
func NewFinanceRouter(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("finance_service", log)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	opRepo := postgres.NewOperationRepository(pool)
	opService := service.NewOperationService(opRepo, log)

	opHandler := handler.NewOperationHandler(opService)
	authMiddleware := middleware.Auth(tokens)

	e.POST("/operations", opHandler.Create, authMiddleware)
	e.GET("/operations", opHandler.List, authMiddleware)
	e.GET("/balance", opHandler.Balance, authMiddleware)

	registerHealth(e, handler.NewHealthHandler("finance-service"), handler.NewReadinessHandler(pool, nil))
	return e
}

// NewReportRouter wires the report service: scoped summaries built from the
// finance service's data, cached in Redis.
func NewReportRouter(rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("report_service", log)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	fetcher := client.NewFinanceClient(cfg.FinanceURL)
	cache := redisdb.NewSummaryCache(rdb)
	reportService := service.NewReportService(fetcher, cache, cfg.SummaryCacheTTL, log)

	reportHandler := handler.NewReportHandler(reportService)
	authMiddleware := middleware.Auth(tokens)

	e.GET("/summary", reportHandler.Summary, authMiddleware)

	registerHealth(e, handler.NewHealthHandler("report-service"), handler.NewReadinessHandler(nil, rdb))
	return e
}

func registerHealth(e *echo.Echo, live *handler.HealthHandler, ready *handler.ReadinessHandler) {
	e.GET("/health", live.Liveness)         // liveness  – is the process alive?
	e.GET("/health/ready", ready.Readiness) // readiness – are dependencies up?
}
