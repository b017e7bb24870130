package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cargotrack/cargo-api/internal/api/handler"
	"github.com/cargotrack/cargo-api/internal/api/middleware"
	"github.com/cargotrack/cargo-api/internal/core/service"
	"github.com/cargotrack/cargo-api/internal/infrastructure/config"
	mongodb "github.com/cargotrack/cargo-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cargotrack/cargo-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("cargo"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	statsCache := redisdb.NewStatsCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	productService := service.NewProductService(productRepo, log)
	analyticsService := service.NewAnalyticsService(productRepo, statsCache, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	requireAuth := middleware.Auth(authService)

	// --- Routes ---
	// The auth boundary is declared here and nowhere else: everything under
	// /api/products plus /api/auth/protected requires a verified identity.
	api := e.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/protected", authHandler.Protected, requireAuth)

	products := api.Group("/products", requireAuth)
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.GET("/analytics", analyticsHandler.Snapshot)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
