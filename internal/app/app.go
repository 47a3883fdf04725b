package app

import (
	"context"
	"fmt"

	"ldexchange_backend/internal/config"
	"ldexchange_backend/internal/handlers"
	"ldexchange_backend/internal/logger"
	"ldexchange_backend/internal/middleware"
	"ldexchange_backend/internal/models"
	"ldexchange_backend/internal/payments"
	"ldexchange_backend/internal/repositories"
	"ldexchange_backend/internal/routes"
	"ldexchange_backend/internal/scrape"
	"ldexchange_backend/internal/services"
	"ldexchange_backend/internal/validator"
	"ldexchange_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the server: config, database, migrations, wiring, workers.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.Job{},
		&models.PendingJob{},
		&models.FreelancerProfile{},
	); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx := context.Background()
	startWorkers(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Split out so tests can
// run the HTTP surface against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	pendingRepo := repositories.NewPendingJobRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	freelancerRepo := repositories.NewFreelancerRepository(gormDB)

	paymentClient := payments.NewClient(cfg.Payments.SecretKey, cfg.Payments.APIBaseURL)
	if !paymentClient.Configured() {
		logger.Warn("Payment provider not configured; checkout is disabled")
	}

	return &services.ServiceContainer{
		CheckoutService:    services.NewCheckoutService(pendingRepo, paymentClient, cfg.BaseURL),
		FulfillmentService: services.NewFulfillmentService(pendingRepo, jobRepo, freelancerRepo),
		ListingService:     services.NewListingService(jobRepo, freelancerRepo),
	}
}

func initializeHandlers(cfg *config.Config, sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		CheckoutHandler:   handlers.NewCheckoutHandler(base, sc.CheckoutService),
		WebhookHandler:    handlers.NewWebhookHandler(base, sc.FulfillmentService, cfg.Payments.WebhookSecret),
		JobHandler:        handlers.NewJobHandler(base, sc.ListingService),
		FreelancerHandler: handlers.NewFreelancerHandler(base, sc.ListingService),
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	return ginRouter
}

func startWorkers(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) {
	jobRepo := repositories.NewJobRepository(gormDB)
	pendingRepo := repositories.NewPendingJobRepository(gormDB)
	freelancerRepo := repositories.NewFreelancerRepository(gormDB)

	maintenance := workers.NewMaintenanceWorker(jobRepo, pendingRepo, freelancerRepo)
	maintenance.Start(ctx)
	logger.Info("Maintenance worker started")

	if cfg.Scrape.Enabled {
		sources := scrape.Registry(scrape.NewHTTPClient())
		worker := scrape.NewWorker(sources, jobRepo, cfg.Scrape.MaxPerSource)
		scheduler := workers.NewScrapeScheduler(worker, cfg.Scrape.IntervalHours)
		if err := scheduler.Start(ctx); err != nil {
			logger.Fatal("Failed to start scrape scheduler", "error", err)
		}
	} else {
		logger.Info("Scrape ingestion disabled")
	}
}
