package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"signly/internal/auth"
	"signly/internal/caching"
	"signly/internal/config"
	"signly/internal/database"
	"signly/internal/handlers"
	"signly/internal/jobs/background"
	"signly/internal/logger"
	"signly/internal/metrics"
	"signly/internal/middleware"
	"signly/internal/models"
	"signly/internal/render"
	"signly/internal/repositories"
	"signly/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	storage, err := services.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		log.Fatal("object storage init failed", zap.Error(err))
	}
	if err := storage.EnsureBucket(ctx); err != nil {
		log.Fatal("bucket setup failed", zap.Error(err))
	}

	// Rate-limit counters live in Redis when an address is configured so
	// limits hold across instances; otherwise in process memory with a
	// periodic sweep.
	var counterStore caching.CounterStore
	var redisStore *caching.RedisCounterStore
	var scheduler *background.JobScheduler
	if cfg.RedisAddr != "" {
		redisStore = caching.NewRedisCounterStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		counterStore = redisStore
		log.Info("rate limiting backed by redis", zap.String("addr", cfg.RedisAddr))
	} else {
		memStore := caching.NewMemoryCounterStore()
		counterStore = memStore
		scheduler, err = background.NewJobScheduler(memStore)
		if err != nil {
			log.Fatal("scheduler init failed", zap.Error(err))
		}
		scheduler.Start()
		defer func() { _ = scheduler.Stop() }()
	}

	// Repositories
	tenantRepo := repositories.NewTenantRepo(pool)
	userRepo := repositories.NewUserRepo(pool)
	templateRepo := repositories.NewTemplateRepo(pool)
	assetRepo := repositories.NewAssetRepo(pool)
	assignmentRepo := repositories.NewAssignmentRepo(pool)

	// Services
	tokens := auth.NewTokenService(userRepo, cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
	tenantService := services.NewTenantService(tenantRepo, tokens)
	templateService := services.NewTemplateService(templateRepo, render.NewRenderer())
	userService := services.NewUserService(userRepo, templateRepo, assignmentRepo, tokens)
	assetService := services.NewAssetService(assetRepo, storage)
	assignmentService := services.NewAssignmentService(assignmentRepo, userRepo, templateRepo)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(tokens, tenantService, userRepo)
	tenantHandlers := handlers.NewTenantHandlers(tenantService)
	templateHandlers := handlers.NewTemplateHandlers(templateService)
	userHandlers := handlers.NewUserHandlers(userService)
	assetHandlers := handlers.NewAssetHandlers(assetService)
	assignmentHandlers := handlers.NewAssignmentHandlers(assignmentService)

	var redisPinger handlers.Pinger
	if redisStore != nil {
		redisPinger = redisStore
	}
	healthHandlers := handlers.NewHealthHandlers(pool, storage, redisPinger)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(metrics.Middleware())

	// Public surface
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/metrics", metrics.Handler())

	authGroup := e.Group("/v1/auth")
	authGroup.POST("/register", authHandlers.Register,
		middleware.RateLimit(counterStore, "register", middleware.RegisterRateLimit, middleware.AuthRateLimitWindow))
	authGroup.POST("/login", authHandlers.Login,
		middleware.RateLimit(counterStore, "login", middleware.LoginRateLimit, middleware.AuthRateLimitWindow))
	authGroup.POST("/refresh", authHandlers.Refresh)

	// Everything below passes the guard: token, then tenant resolution.
	api := e.Group("/v1",
		middleware.Authenticate(tokens),
		middleware.ValidateTenant(userRepo, tenantRepo))
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	api.GET("/me", authHandlers.Me)
	api.POST("/auth/logout-all", authHandlers.LogoutAll)

	api.GET("/tenant", tenantHandlers.GetTenant)
	api.PUT("/tenant", tenantHandlers.UpdateTenant, adminOnly)

	api.POST("/templates", templateHandlers.CreateTemplate)
	api.GET("/templates", templateHandlers.ListTemplates)
	api.GET("/templates/:id", templateHandlers.GetTemplate)
	api.PUT("/templates/:id", templateHandlers.UpdateTemplate)
	api.PUT("/templates/:id/status", templateHandlers.UpdateTemplateStatus)
	api.POST("/templates/:id/default", templateHandlers.SetDefaultTemplate)
	api.DELETE("/templates/:id", templateHandlers.DeleteTemplate, adminOnly)

	api.GET("/users", userHandlers.ListUsers)
	api.GET("/users/:id", userHandlers.GetUser)
	api.POST("/users", userHandlers.CreateUser, adminOnly)
	api.PUT("/users/:id", userHandlers.UpdateUser, adminOnly)
	api.DELETE("/users/:id", userHandlers.DeleteUser, adminOnly)

	api.POST("/assets", assetHandlers.UploadAsset)
	api.GET("/assets", assetHandlers.ListAssets)
	api.GET("/assets/:id", assetHandlers.GetAsset)
	api.DELETE("/assets/:id", assetHandlers.DeleteAsset, adminOnly)

	api.POST("/assignments", assignmentHandlers.CreateAssignment)
	api.GET("/assignments", assignmentHandlers.ListAssignments)
	api.DELETE("/assignments/:id", assignmentHandlers.DeleteAssignment)

	go func() {
		log.Info("server starting", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
