package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sparkier.backend/internal/config"
	"sparkier.backend/internal/infrastructure/jobs"
	"sparkier.backend/internal/infrastructure/repositories"
	"sparkier.backend/internal/interfaces/http/handlers"
	"sparkier.backend/internal/interfaces/http/middleware"
	"sparkier.backend/internal/usecases"
	"sparkier.backend/pkg/jwt"
	"sparkier.backend/pkg/logger"
	"sparkier.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	missionRepo := repositories.NewMissionRepository(db)
	sparkRepo := repositories.NewSparkRepository(db)
	clientRepo := repositories.NewClientRepository(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize usecases
	slugResolver := usecases.NewSlugResolver(profileRepo, sparkRepo)
	reviewReconciler := usecases.NewReviewReconciler(reviewRepo)
	missionReconciler := usecases.NewMissionReconciler(missionRepo)
	authUsecase := usecases.NewAuthUsecase(
		userRepo, profileRepo, clientRepo, slugResolver, jwtService,
		sessionStore, cfg.JWT.RefreshExpiry, cfg.Server.RequestTimeout,
	)
	profileUsecase := usecases.NewProfileUsecase(
		profileRepo, reviewRepo, missionRepo, sparkRepo,
		slugResolver, reviewReconciler, missionReconciler,
	)
	sparkUsecase := usecases.NewSparkUsecase(sparkRepo, profileRepo, slugResolver)
	adminUsecase := usecases.NewAdminUsecase(userRepo, profileRepo, clientRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	consultantHandler := handlers.NewConsultantHandler(profileUsecase)
	sparkHandler := handlers.NewSparkHandler(sparkUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanupJob := jobs.NewAccountCleanupJob(userRepo)
	go cleanupJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		consultantHandler: consultantHandler,
		sparkHandler:      sparkHandler,
		adminHandler:      adminHandler,
		authMiddleware:    authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		cleanupJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Sparkier Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
