package container

import (
	"context"
	"errors"

	"github.com/joshua-takyi/cinema/internal/config"
	"github.com/joshua-takyi/cinema/internal/handlers"
	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/joshua-takyi/cinema/internal/services"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	DB            *gorm.DB
	MongoDBClient *mongo.Client
	Redis         *redis.Client

	ShowService        *services.ShowService
	ReservationService *services.ReservationService
	CatalogService     *services.CatalogService
	EventLogger        *services.EventLogger
	UserService        *services.UserService
	Reconciler         *services.Reconciler
}

// NewContainer wires repositories and services. Redis may be nil.
func NewContainer(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	mongoDBClient *mongo.Client,
	rdb *redis.Client,
) *Container {
	pg := models.PostgresNewRepo(db)
	mdb := models.MongodbNewRepo(mongoDBClient, cfg.MongoDB)

	eventLogger := services.NewEventLogger(mdb, logger)

	return &Container{
		Config:             cfg,
		Logger:             logger,
		DB:                 db,
		MongoDBClient:      mongoDBClient,
		Redis:              rdb,
		ShowService:        services.NewShowService(pg),
		ReservationService: services.NewReservationService(pg, pg, eventLogger),
		CatalogService:     services.NewCatalogService(mdb),
		EventLogger:        eventLogger,
		UserService:        services.NewUserService(pg, cfg.JWTSecret, cfg.TokenTTL),
		Reconciler:         services.NewReconciler(pg, mdb, cfg.ReconcileLookback, logger),
	}
}

func (c *Container) HealthChecks() map[string]handlers.HealthCheck {
	return map[string]handlers.HealthCheck{
		"postgres": {
			Critical: true,
			Ping: func(ctx context.Context) error {
				sqlDB, err := c.DB.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
		},
		"mongodb": {
			Ping: func(ctx context.Context) error {
				if c.MongoDBClient == nil {
					return errors.New("mongodb client is not initialized")
				}
				return c.MongoDBClient.Ping(ctx, nil)
			},
		},
	}
}
