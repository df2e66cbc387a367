package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/thien06012001/backend/pkg/validator"

	"github.com/thien06012001/backend/internal/adapter/handler"
	"github.com/thien06012001/backend/internal/adapter/repository"
	"github.com/thien06012001/backend/internal/infrastructure/cache"
	"github.com/thien06012001/backend/internal/infrastructure/database"
	"github.com/thien06012001/backend/internal/infrastructure/storage"
	"github.com/thien06012001/backend/internal/usecase/admin"
	"github.com/thien06012001/backend/internal/usecase/auth"
	"github.com/thien06012001/backend/internal/usecase/event"
	"github.com/thien06012001/backend/internal/usecase/invitation"
	"github.com/thien06012001/backend/internal/usecase/notification"
	"github.com/thien06012001/backend/internal/usecase/post"
	"github.com/thien06012001/backend/internal/usecase/request"
	"github.com/thien06012001/backend/internal/usecase/setting"
	"github.com/thien06012001/backend/internal/usecase/user"
	"github.com/thien06012001/backend/pkg/config"
	"github.com/thien06012001/backend/pkg/jwt"
)

// @title           Event Hub API
// @version         1.0
// @description     API for event management with invitations, join requests, discussions and reminders

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize cache: Redis when configured, in-memory otherwise
	var store cache.Store
	if addr := cfg.GetRedisAddr(); addr != "" {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		log.Println("⚠️  Redis not configured, using in-memory cache")
		store = cache.NewMemoryStore()
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	configRepo := repository.NewConfigurationRepository(db)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize services
	log.Println("✨ Initializing services...")
	settingService := setting.NewSettingService(configRepo, store, logger)
	eventService := event.NewEventService(eventRepo, participantRepo, invitationRepo, notificationRepo, settingService, logger)
	authService := auth.NewAuthService(userRepo, jwtManager, logger)
	userService := user.NewUserService(userRepo, eventRepo, logger)
	invitationService := invitation.NewInvitationService(invitationRepo, eventRepo, userRepo, participantRepo, notificationRepo, logger)
	requestService := request.NewRequestService(requestRepo, eventRepo, participantRepo, notificationRepo, logger)
	notificationService := notification.NewNotificationService(notificationRepo, store, logger)
	postService := post.NewPostService(postRepo, commentRepo, eventRepo, participantRepo, logger)
	adminService := admin.NewAdminService(userRepo, eventRepo, logger)

	// Initialize MinIO storage (optional)
	var storageHandler *handler.Storage
	if cfg.Storage.Endpoint != "" {
		log.Println("🗄️  Initializing object storage...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Printf("⚠️  Object storage unavailable, uploads disabled: %v", err)
		} else {
			storageHandler = handler.NewStorageHandler(minioClient, logger)
		}
	}

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuthHandler(authService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	eventHandler := handler.NewEventHandler(eventService, logger)
	invitationHandler := handler.NewInvitationHandler(invitationService, logger)
	requestHandler := handler.NewRequestHandler(requestService, logger)
	postHandler := handler.NewPostHandler(postService, logger)
	notificationHandler := handler.NewNotificationHandler(notificationService, logger)
	settingHandler := handler.NewSettingHandler(settingService, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		jwtManager,
		authHandler,
		userHandler,
		eventHandler,
		invitationHandler,
		requestHandler,
		postHandler,
		notificationHandler,
		settingHandler,
		adminHandler,
		storageHandler,
	)
	router.Setup(e)

	// Background reminder sweep. The external cron hitting the ping
	// endpoint stays the primary trigger; this loop is a fallback for
	// deployments without one.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	if cfg.Reminder.SweepInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Reminder.SweepInterval)
			defer ticker.Stop()
			for {
				select {
				case <-sweepCtx.Done():
					return
				case <-ticker.C:
					if _, err := eventService.RunReminderSweep(sweepCtx, time.Now()); err != nil {
						logger.Error("background reminder sweep failed", zap.Error(err))
					}
				}
			}
		}()
	}

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
