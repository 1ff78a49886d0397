package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nucleav-frontend/internal/api/routes"
	"nucleav-frontend/internal/client"
	"nucleav-frontend/internal/config"
	apperrors "nucleav-frontend/internal/errors"
	"nucleav-frontend/internal/notify"
	"nucleav-frontend/internal/service"
	"nucleav-frontend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			Nucleav Project Resources API
//	@version		1.0
//	@description	Backend-for-frontend that keeps the materials and team of an open project in sync with the platform API.

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// User-facing messages
	var overrides map[apperrors.Kind]string
	if cfg.MessagesFile != "" {
		overrides, err = apperrors.LoadMessages(cfg.MessagesFile)
		if err != nil {
			logrus.Fatal("Failed to load message catalog:", err)
		}
	}
	classifier := apperrors.NewClassifier(overrides)

	// Platform API client; the service token is only used when a request carries none
	var provider session.Provider = session.NewContextProvider()
	if cfg.ServiceAccessToken != "" {
		provider = session.FallbackProvider{
			Primary:  session.NewContextProvider(),
			Fallback: session.NewStaticProvider(cfg.ServiceAccessToken),
		}
	}
	platform, err := client.New(cfg.APIBaseURL, time.Duration(cfg.APITimeoutSec)*time.Second, provider)
	if err != nil {
		logrus.Fatal("Failed to create platform API client:", err)
	}

	buffer := notify.NewBuffer(cfg.NotificationBufferSize)
	registry := service.NewViewRegistry(service.PlatformAPIs{
		ProjectMaterials: platform,
		ProjectUsers:     platform,
		Materials:        platform,
		Users:            platform,
	}, service.Dependencies{
		Validator:            service.NewValidator(),
		Classifier:           classifier,
		Sink:                 notify.Multi{notify.LogSink{}, buffer},
		HydrationConcurrency: cfg.HydrationConcurrency,
	})
	defer registry.CloseAll()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(cfg, routes.Dependencies{
		Registry:      registry,
		Classifier:    classifier,
		Notifications: buffer,
		Platform:      platform,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server shutdown failed: %v", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
