// @title MedMCQ API
// @version 1.0
// @description Generates, parses, stores and exports medical multiple-choice questions.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_SESSION_TOKEN' to authorize. The session cookie set by /auth/login works as well.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"medmcq/internal/adapter"
	"medmcq/internal/adapter/llm"
	"medmcq/internal/adapter/tokenizer"
	"medmcq/internal/cache"
	"medmcq/internal/config"
	"medmcq/internal/database"
	"medmcq/internal/handler"
	"medmcq/internal/logger"
	"medmcq/internal/middleware"
	"medmcq/internal/repository"
	"medmcq/internal/service"

	_ "medmcq/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Connect to database
	db, err := database.Open(startupCtx, cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db.DB, cfg.DB.Driver, database.Up); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
		appLogger.Info("Migrations applied", zap.String("driver", cfg.DB.Driver))
	}

	recordRepository := repository.NewSQLXRecordRepository(db)

	// Initialize Redis Client
	redisClient, err := cache.NewRedisClient(startupCtx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize LLM gateway and token counter
	generator, err := llm.NewGenerator(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM generator", zap.Error(err))
	}
	appLogger.Info("LLM generator initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", generator.Model()))

	estimator := service.NewTokenEstimator(tokenizer.NewLangchainCounter(), cfg.LLM.Model, cfg.LLM.MaxInputTokens)

	// Initialize services
	drafts := service.NewDraftStore(cacheAdapter, cfg.Cache.DraftTTL)
	generationService := service.NewGenerationService(generator, estimator, drafts)
	recordService := service.NewRecordService(recordRepository, drafts)
	exportService := service.NewExportService(recordRepository)
	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app.Group("/api"), handler.Handlers{
		Auth:       handler.NewAuthHandler(authService, cfg.Auth.CookieName),
		Health:     handler.NewHealthHandler(recordRepository, cacheAdapter),
		Generation: handler.NewGenerationHandler(generationService),
		Record:     handler.NewRecordHandler(recordService, exportService),
		Export:     handler.NewExportHandler(exportService),
	}, middleware.Protected(authService, cfg.Auth.CookieName))

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
