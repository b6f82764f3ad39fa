package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/DawoodIsrar/user-management-api/docs"
	"github.com/DawoodIsrar/user-management-api/internal/api/handler"
	"github.com/DawoodIsrar/user-management-api/internal/api/middleware"
	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
	"github.com/DawoodIsrar/user-management-api/internal/core/ports"
	"github.com/DawoodIsrar/user-management-api/internal/core/service"
	"github.com/DawoodIsrar/user-management-api/internal/infrastructure/config"
	mongodb "github.com/DawoodIsrar/user-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/DawoodIsrar/user-management-api/internal/infrastructure/db/redis"
	"github.com/DawoodIsrar/user-management-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuditRecorder) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("user_management"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)

	tokens, err := service.NewTokenService(service.TokenConfig{Secret: cfg.JWTSecret, TTL: cfg.TokenTTL})
	if err != nil {
		return nil, err
	}

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow)
	}

	accountService := service.NewAccountService(userRepo, roleRepo, tokens, throttle, audit, cfg.BcryptCost, log)
	userService := service.NewUserService(userRepo, log)
	roleService := service.NewRoleService(userRepo, roleRepo, audit, log)

	authHandler := handler.NewAuthHandler(accountService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService, log)

	authenticate := middleware.Auth(tokens)

	// --- API routes ---
	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	users := v1.Group("/users")
	users.POST("", userHandler.Create) // public: creates a record without credentials
	users.GET("", userHandler.List, authenticate, middleware.RBAC(domain.RoleAdmin))
	users.GET("/:id", userHandler.Get, authenticate, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))
	users.PUT("/:id", userHandler.Update, authenticate, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))
	users.DELETE("/:id", userHandler.Delete, authenticate, middleware.RBAC(domain.RoleAdmin))

	roles := v1.Group("/roles")
	roles.POST("", roleHandler.Create, authenticate, middleware.RBAC(domain.RoleAdmin))
	roles.POST("/assign", roleHandler.Assign, authenticate, middleware.RBAC(domain.RoleAdmin))
	roles.GET("/:userId", roleHandler.UserRoles, authenticate, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoswagger.WrapHandler)

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e, nil
}
