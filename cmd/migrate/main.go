package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/cinema/internal/config"
	"github.com/joshua-takyi/cinema/internal/connect"
	"github.com/joshua-takyi/cinema/internal/logger"
	"github.com/joshua-takyi/cinema/internal/migrate"
	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/joshua-takyi/cinema/internal/services"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	db, err := connect.PostgresConnect(cfg, lg)
	if err != nil {
		lg.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer func() { _ = connect.PostgresDisconnect(db) }()

	ctx := context.Background()

	if err := migrate.MigrateCinemaDB(ctx, db, lg, migrate.DefaultMigrateOptions()); err != nil {
		lg.Fatal("migration failed", zap.Error(err))
	}

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		users := services.NewUserService(models.PostgresNewRepo(db), cfg.JWTSecret, cfg.TokenTTL)
		admin, err := users.EnsureStaffUser(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail)
		if err != nil {
			lg.Fatal("failed to seed admin user", zap.Error(err))
		}
		lg.Info("admin user ready", zap.String("username", admin.Username))
	}

	lg.Info("migration complete")
}
