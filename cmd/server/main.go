package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"committee-tracker-backend/internal/api/routes"
	"committee-tracker-backend/internal/config"
	"committee-tracker-backend/internal/database"
	"committee-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "committee-tracker-backend/docs" // This is needed for swag
)

const shutdownTimeout = 10 * time.Second

//	@title			Committee Tracker Backend API
//	@version		1.0
//	@description	Backend API for tracking university committee membership, enforcing per-senate-division slot requirements on every assignment.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		MaxOpenConns:    cfg.DatabaseMaxOpenConns,
		MaxIdleConns:    cfg.DatabaseMaxIdleConns,
		ConnMaxLifetime: cfg.DatabaseConnLifetime,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logrus.Infof("Received %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
	logrus.Info("Server stopped")
}
