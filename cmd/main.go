package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/config"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/database"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/logging"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var log = logging.For("main")

// @title Pizza Menu API
// @version 1.0
// @description Pizza catalogue with ingredientes and cardapio, guarded by bearer tokens
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	logging.Setup(configuration.Environment, configuration.LogLevel)
	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize Gin router
	engine, err := router.New(configuration, db)
	exitOnErr(err)

	// Start the server
	runServer(configuration, engine)
}

// exitOnErr logs the error and exits when startup cannot continue
func exitOnErr(err error) {
	if err != nil {
		log.WithError(err).Fatal("Startup failed")
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// loadConfig loads the application configuration from environment variables
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	exitOnErr(err)
	return conf
}

// setupDatabase connects, migrates and, when enabled, seeds the database
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.ConfigFrom(conf))
	exitOnErr(err)

	exitOnErr(database.Migrate(db))

	if conf.SeedData {
		_, err := database.Seed(db)
		exitOnErr(err)
	}
	return db
}

// runServer serves until SIGINT/SIGTERM, then drains in-flight requests
func runServer(conf *config.Config, handler http.Handler) {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", conf.Host, conf.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
