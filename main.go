package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"course_catalog/config"
	"course_catalog/db"
	"course_catalog/logger"
	"course_catalog/middleware"
	"course_catalog/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Error loading configuration: %v", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatalf("Error configuring logger: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}
	defer closeStore()

	opts := routes.Options{
		JWTSecret: []byte(cfg.JWTSecret),
		Metrics:   middleware.NewMetrics(),
		Logger:    log,
	}
	if len(opts.JWTSecret) == 0 {
		log.Warn("JWT_SECRET not set, course updates are not authenticated")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if cfg.RateLimitRPS > 0 {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go sweepRateLimiter(ctx, opts.RateLimiter, log)
	}

	r := routes.NewRouter(store, opts)

	// Run server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.WithFields(logrus.Fields{"port": cfg.ServerPort, "store": cfg.Store}).Info("course catalog listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}
}

// openStore returns the configured backend and a function releasing it.
func openStore(cfg *config.Config, log *logrus.Logger) (db.Store, func(), error) {
	if cfg.Store != "postgres" {
		log.Info("using in-memory store seeded with the fixture catalog")
		return db.NewSeededMemoryStore(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := db.Initialize(ctx, db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	})
	if err != nil {
		return nil, nil, err
	}

	// Initialize database schema
	if err := db.InitSchema(conn.DB); err != nil {
		conn.Close()
		return nil, nil, err
	}

	// Seed initial data
	if err := db.SeedData(conn.DB); err != nil {
		log.WithError(err).Warn("Error seeding initial data")
	}

	return db.NewPostgresStore(conn), func() { conn.Close() }, nil
}

func sweepRateLimiter(ctx context.Context, rl *middleware.RateLimiter, log *logrus.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := rl.Cleanup(10 * time.Minute); n > 0 {
				log.WithField("removed", n).Debug("rate limiter sweep")
			}
		}
	}
}
