package api

import (
	"net/http"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Services bundles what the router needs.
type Services struct {
	Auth    service.AuthService
	Chat    service.ChatService
	Fit     service.FitService
	Booking service.BookingService
	Admin   service.AdminService
}

// NewRouter builds the gin engine with recovery, request ids and access logging installed.
func NewRouter(logger *zap.Logger, jwtSecret string, services Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(logger))
	SetupRoutes(router, logger, jwtSecret, services)
	return router
}

func SetupRoutes(router *gin.Engine, logger *zap.Logger, jwtSecret string, services Services) {
	authHandler := NewAuthHandler(services.Auth, logger)
	gymHandler := NewGymHandler(services.Chat, services.Fit, services.Booking)
	adminHandler := NewAdminHandler(services.Admin)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		apiGroup.POST("/chatbot", gymHandler.Chat)
		apiGroup.POST("/find-my-fit", gymHandler.FindMyFit)
		apiGroup.POST("/quick-book", gymHandler.QuickBook)
	}

	protected := apiGroup.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
		})

		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			adminGroup.GET("/dashboard-stats", adminHandler.DashboardStats)
			adminGroup.GET("/members", adminHandler.ListMembers)
			adminGroup.GET("/trainers", adminHandler.ListTrainers)
			adminGroup.GET("/classes", adminHandler.ListClasses)
			adminGroup.GET("/recent-activity", adminHandler.RecentActivity)
			adminGroup.PUT("/toggle-user/:id", adminHandler.ToggleUser)
			adminGroup.PUT("/toggle-trainer/:id", adminHandler.ToggleTrainer)
			adminGroup.POST("/trainers/:id/photo-upload-url", adminHandler.TrainerPhotoUploadURL)
		}
	}
}
