package app

import (
	"context"
	"fmt"

	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/handlers"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/push"
	"freelancehub_backend/internal/routes"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/validator"
	"freelancehub_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := migrate(gormDB); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	router, container := SetupRouter(cfg, gormDB)

	reminder := workers.NewMeetingReminderWorker(
		container.MeetingRepository,
		container.ContractRepository,
		container.NotificationService,
		cfg.Notifications,
	)
	go reminder.Run(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Split out so tests can
// stand up the router without starting the listener.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	hub := push.NewHub(cfg.Push.SendBufferSize)
	go hub.Run()

	container := services.NewServiceContainer(cfg, gormDB, hub)
	appHandlers := handlers.NewAppHandlers(container, validator.New())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.Frontend.BaseURL))

	routes.RegisterRoutes(router, appHandlers, hub)

	return router, container
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PortfolioItem{},
		&models.Job{},
		&models.Application{},
		&models.Contract{},
		&models.WorkProgress{},
		&models.Meeting{},
		&models.Message{},
		&models.Notification{},
		&models.NotificationPreference{},
	)
}
