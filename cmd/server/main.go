package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/config"
	"github.com/yourorg/transport-cms/internal/database"
	"github.com/yourorg/transport-cms/internal/events"
	"github.com/yourorg/transport-cms/internal/handler"
	"github.com/yourorg/transport-cms/internal/middleware"
	"github.com/yourorg/transport-cms/internal/repository"
	"github.com/yourorg/transport-cms/internal/service"
	"github.com/yourorg/transport-cms/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set up logger
	logger, err := createLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Set up local upload storage
	store, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Upload.MaxFileSize, cfg.Upload.AllowedExtensions, logger)
	if err != nil {
		logger.Fatal("Failed to set up upload storage", zap.Error(err))
	}

	// Initialize content event publisher (if enabled)
	var publisher *events.Publisher
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		logger.Info("Initialized Kafka publisher", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	// Initialize Redis response cache (if enabled)
	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warn("Redis unavailable, response cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	// Background cleanup of superseded upload files
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	cleanup := service.NewFileCleanup(store, logger)
	cleanup.Start(cleanupCtx)

	// Create repositories
	leaderRepo := repository.NewLeaderRepository(db, logger)
	serviceRepo := repository.NewServiceRepository(db, logger)
	newsRepo := repository.NewNewsRepository(db, logger)
	announcementRepo := repository.NewAnnouncementRepository(db, logger)
	messageRepo := repository.NewMessageRepository(db, logger)
	adminRepo := repository.NewAdminRepository(db, logger)
	settingsRepo := repository.NewSettingsRepository(db, logger)
	statisticsRepo := repository.NewStatisticsRepository(db, logger)
	dashboardRepo := repository.NewDashboardRepository(db, logger)

	// Create services
	var pub service.EventPublisher
	if publisher != nil {
		pub = publisher
	}
	authService := service.NewAuthService(adminRepo, cfg.Auth, logger)
	leaderService := service.NewLeaderService(leaderRepo, store, cleanup, pub, logger)
	bureauService := service.NewBureauService(serviceRepo, store, cleanup, pub, logger)
	newsService := service.NewNewsService(newsRepo, store, cleanup, pub, logger)
	announcementService := service.NewAnnouncementService(announcementRepo, store, cleanup, pub, logger)
	contactService := service.NewContactService(messageRepo, store, cleanup, pub, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)
	statisticsService := service.NewStatisticsService(statisticsRepo, logger)
	dashboardService := service.NewDashboardService(dashboardRepo, messageRepo, newsRepo, logger)

	// Create HTTP server
	router := setupRouter(
		cfg,
		db,
		redisClient,
		authService,
		leaderService,
		bureauService,
		newsService,
		announcementService,
		contactService,
		settingsService,
		statisticsService,
		dashboardService,
		logger,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if publisher != nil {
		publisher.Close()
	}
	if redisClient != nil {
		redisClient.Close()
	}

	// Stop the cleanup worker and let it drain its queue
	cancelCleanup()
	cleanup.Wait()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited properly")
}

func createLogger(level string) (*zap.Logger, error) {
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	config := zap.Config{
		Level:            zapLevel,
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}

func setupRouter(
	cfg *config.Config,
	db *sqlx.DB,
	redisClient *redis.Client,
	authService *service.AuthService,
	leaderService *service.LeaderService,
	bureauService *service.BureauService,
	newsService *service.NewsService,
	announcementService *service.AnnouncementService,
	contactService *service.ContactService,
	settingsService *service.SettingsService,
	statisticsService *service.StatisticsService,
	dashboardService *service.DashboardService,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()

	// Use middlewares
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Uploaded files
	router.Static("/uploads", cfg.Storage.BasePath)

	// ==================== INSTALL ROUTE ====================
	installHandler := handler.NewInstallHandler(db, cfg.Install.Enabled, logger)
	router.POST("/install", installHandler.Install)

	// ==================== PUBLIC API ROUTES ====================
	publicHandler := handler.NewPublicHandler(
		leaderService,
		bureauService,
		newsService,
		announcementService,
		contactService,
		settingsService,
		statisticsService,
		cfg.Server.PublicHost,
		logger,
	)

	api := router.Group("/api")
	if redisClient != nil {
		api.Use(middleware.PublicCache(redisClient, middleware.CacheConfig{
			Enabled:       true,
			DefaultTTL:    cfg.Cache.TTL,
			PrefixKey:     cfg.Cache.PrefixKey,
			ExcludedPaths: []string{"/api/config"},
		}, logger))
	}
	{
		api.GET("/settings", publicHandler.GetSettings)
		api.GET("/statistics", publicHandler.GetStatistics)
		api.GET("/leaders", publicHandler.GetLeaders)
		api.GET("/leadership", publicHandler.GetLeaders)
		api.GET("/services", publicHandler.GetServices)
		api.GET("/news", publicHandler.GetNews)
		api.GET("/news/:id", publicHandler.GetNewsByID)
		api.GET("/announcements", publicHandler.GetAnnouncements)
		api.GET("/config", publicHandler.GetConfig)
		api.POST("/contact", publicHandler.SubmitContact)
	}

	// ==================== ADMIN ROUTES ====================
	authHandler := handler.NewAuthHandler(authService, logger)
	router.POST("/admin/login", authHandler.Login)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth(authService, logger))
	if redisClient != nil {
		admin.Use(middleware.FlushOnWrite(redisClient, cfg.Cache.PrefixKey, logger))
	}
	{
		dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)
		admin.GET("/dashboard", dashboardHandler.Get)

		leaderHandler := handler.NewLeaderHandler(leaderService, logger)
		admin.GET("/leaders", leaderHandler.List)
		admin.POST("/leaders/add", leaderHandler.Create)
		admin.GET("/leaders/edit/:id", leaderHandler.Get)
		admin.POST("/leaders/update/:id", leaderHandler.Update)
		admin.DELETE("/leaders/delete/:id", leaderHandler.Delete)

		serviceHandler := handler.NewServiceHandler(bureauService, logger)
		admin.GET("/services", serviceHandler.List)
		admin.POST("/services/add", serviceHandler.Create)
		admin.GET("/services/edit/:id", serviceHandler.Get)
		admin.POST("/services/update/:id", serviceHandler.Update)
		admin.DELETE("/services/delete/:id", serviceHandler.Delete)

		newsHandler := handler.NewNewsHandler(newsService, logger)
		admin.GET("/news", newsHandler.List)
		admin.POST("/news/add", newsHandler.Create)
		admin.GET("/news/edit/:id", newsHandler.Get)
		admin.POST("/news/update/:id", newsHandler.Update)
		admin.DELETE("/news/delete/:id", newsHandler.Delete)

		announcementHandler := handler.NewAnnouncementHandler(announcementService, logger)
		admin.GET("/announcements", announcementHandler.List)
		admin.POST("/announcements/add", announcementHandler.Create)
		admin.GET("/announcements/edit/:id", announcementHandler.Get)
		admin.POST("/announcements/update/:id", announcementHandler.Update)
		admin.DELETE("/announcements/delete/:id", announcementHandler.Delete)

		statisticsHandler := handler.NewStatisticsHandler(statisticsService, logger)
		admin.GET("/statistics", statisticsHandler.List)
		admin.POST("/statistics/update", statisticsHandler.Update)

		messageHandler := handler.NewMessageHandler(contactService, logger)
		admin.GET("/messages", messageHandler.List)
		admin.GET("/messages/:id", messageHandler.Get)
		admin.DELETE("/messages/delete/:id", messageHandler.Delete)

		settingsHandler := handler.NewSettingsHandler(settingsService, logger)
		admin.GET("/settings", settingsHandler.List)
		admin.POST("/settings/update", settingsHandler.Update)

		admin.GET("/profile", authHandler.GetProfile)
		admin.POST("/profile/update", authHandler.UpdateProfile)
		admin.POST("/profile/password", authHandler.ChangePassword)
	}

	return router
}
