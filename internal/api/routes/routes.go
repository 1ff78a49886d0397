package routes

import (
	"nucleav-frontend/internal/api/handlers"
	"nucleav-frontend/internal/api/middleware"
	"nucleav-frontend/internal/config"
	apperrors "nucleav-frontend/internal/errors"
	"nucleav-frontend/internal/notify"
	"nucleav-frontend/internal/service"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies are the long-lived objects the handlers are built from
type Dependencies struct {
	Registry      *service.ViewRegistry
	Classifier    *apperrors.Classifier
	Notifications *notify.Buffer
	Platform      handlers.Pinger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps Dependencies) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Platform, Version)
	resourceHandler := handlers.NewProjectResourceHandler(deps.Registry, deps.Classifier)
	notificationHandler := handlers.NewNotificationHandler(deps.Notifications)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes. A configured service token makes the browser token optional.
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.ServiceAccessToken != ""))
	{
		projects := v1.Group("/projects/:id")
		{
			projects.POST("/view", resourceHandler.OpenView)
			projects.DELETE("/view", resourceHandler.CloseView)

			projects.GET("/materials", resourceHandler.ListMaterials)
			projects.POST("/materials", resourceHandler.AddMaterial)
			projects.GET("/materials/candidates", resourceHandler.MaterialCandidates)
			projects.GET("/materials/categories", resourceHandler.MaterialCategories)
			projects.DELETE("/materials/:associationId", resourceHandler.RemoveMaterial)

			projects.GET("/users", resourceHandler.ListUsers)
			projects.POST("/users", resourceHandler.AddUser)
			projects.GET("/users/candidates", resourceHandler.UserCandidates)
			projects.DELETE("/users/:associationId", resourceHandler.RemoveUser)
		}

		v1.GET("/notifications", notificationHandler.Drain)
	}

	return router
}
