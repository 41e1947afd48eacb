package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/cinema/internal/config"
	"github.com/joshua-takyi/cinema/internal/connect"
	"github.com/joshua-takyi/cinema/internal/container"
	"github.com/joshua-takyi/cinema/internal/logger"
	"github.com/joshua-takyi/cinema/internal/reconcile"
	"github.com/joshua-takyi/cinema/internal/routes"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
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
	lg.Info("starting cinema API server", zap.String("environment", cfg.Environment))

	db, err := connect.PostgresConnect(cfg, lg)
	if err != nil {
		lg.Fatal("failed to connect to postgres", zap.Error(err))
	}

	// an unreachable document store is logged inside MongoDBConnect; only a
	// malformed configuration stops startup
	mongoClient, err := connect.MongoDBConnect(cfg, lg)
	if err != nil {
		lg.Fatal("failed to configure mongodb", zap.Error(err))
	}

	rdb := connect.RedisConnect(cfg, lg)

	appContainer := container.NewContainer(cfg, lg, db, mongoClient, rdb)
	appContainer.EventLogger.EnsureIndexes(context.Background())

	var scheduler *reconcile.Scheduler
	if cfg.ReconcileEnabled {
		scheduler, err = reconcile.Start(appContainer.Reconciler, cfg.ReconcileInterval, lg)
		if err != nil {
			lg.Error("reconciler disabled", zap.Error(err))
		}
	}

	router := routes.SetupRoutes(appContainer)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		lg.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info("server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		lg.Error("server forced to shutdown", zap.Error(err))
	}

	scheduler.Stop()

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			lg.Error("error closing redis", zap.Error(err))
		}
	}
	if err := connect.MongoDBDisconnect(mongoClient); err != nil {
		lg.Error("error disconnecting from mongodb", zap.Error(err))
	}
	if err := connect.PostgresDisconnect(db); err != nil {
		lg.Error("error closing postgres", zap.Error(err))
	}

	lg.Info("server exited")
}
