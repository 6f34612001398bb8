package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/studymood/studymood-backend/internal/http/handlers"
	httpMW "github.com/studymood/studymood-backend/internal/http/middleware"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware

	UserHandler       *httpH.UserHandler
	StudyLogHandler   *httpH.StudyLogHandler
	AnalyticsHandler  *httpH.AnalyticsHandler
	StudyGroupHandler *httpH.StudyGroupHandler
	RealtimeHandler   *httpH.RealtimeHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
			api.POST("/auth/refresh", cfg.AuthHandler.Refresh)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/auth/logout", cfg.AuthHandler.Logout)
		}

		// User
		if cfg.UserHandler != nil {
			protected.GET("/users/profile", cfg.UserHandler.GetProfile)
			protected.PUT("/users/favorites", cfg.UserHandler.UpdateFavorites)
			protected.POST("/users/favorites/:subject", cfg.UserHandler.ToggleFavorite)
		}

		// Study logs + analytics
		if cfg.StudyLogHandler != nil {
			protected.GET("/study-logs", cfg.StudyLogHandler.List)
			protected.POST("/study-logs", cfg.StudyLogHandler.Create)
			protected.DELETE("/study-logs/:id", cfg.StudyLogHandler.Delete)
		}
		if cfg.AnalyticsHandler != nil {
			protected.GET("/study-logs/analytics", cfg.AnalyticsHandler.GetAnalytics)
			protected.GET("/study-logs/suggestions", cfg.AnalyticsHandler.GetSuggestions)
		}

		// Study groups
		if cfg.StudyGroupHandler != nil {
			protected.GET("/study-groups", cfg.StudyGroupHandler.List)
			protected.POST("/study-groups", cfg.StudyGroupHandler.Create)
			protected.GET("/study-groups/:id", cfg.StudyGroupHandler.Get)
			protected.POST("/study-groups/:id/invite", cfg.StudyGroupHandler.Invite)
			protected.POST("/study-groups/:id/leave", cfg.StudyGroupHandler.Leave)
		}

		// Live activity feed (SSE)
		if cfg.RealtimeHandler != nil {
			protected.GET("/study-groups/:id/stream", cfg.RealtimeHandler.GroupStream)
		}
	}

	return r
}
