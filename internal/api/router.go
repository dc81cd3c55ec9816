package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/api/handler"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/api/middleware"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/auth"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/ports"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/service"
	mongoinfra "github.com/OmkarKathile007/ResQ-Bridge/internal/infrastructure/db/mongo"
	redisinfra "github.com/OmkarKathile007/ResQ-Bridge/internal/infrastructure/db/redis"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// audit may be nil, in which case authentication events are not recorded.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("resqbridge"))

	// --- Dependencies ---
	userRepo := mongoinfra.NewUserRepository(db)
	donorRepo := mongoinfra.NewDonorRepository(db)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenCodec(cfg.Auth.JWTSecret)
	identity := service.NewIdentityLoader(userRepo)
	throttle := redisinfra.NewLoginThrottle(rdb, cfg.Auth.LoginMaxFailures, cfg.Auth.LoginFailureWindow)

	authService := service.NewAuthService(userRepo, identity, hasher, tokens, throttle, audit, cfg.Auth.TokenTTL, log)
	donationService := service.NewDonationService(donorRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	donationHandler := handler.NewDonationHandler(donationService)
	accountHandler := handler.NewAccountHandler(userRepo)

	// Runs on every request; populates the security context but never rejects.
	e.Use(middleware.Authenticate(tokens, identity, log))

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Platform routes ---
	g := e.Group("/api")
	g.POST("/donations", donationHandler.Create)
	g.GET("/donors", donationHandler.ListDonors, middleware.RequireAuthenticated())
	g.GET("/me", accountHandler.Me, middleware.RequireAuthenticated())
	g.GET("/admin/users", accountHandler.ListUsers, middleware.RequireAuthority(domain.RoleAdmin.Authority()))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
