package app

import (
	apphttp "github.com/studymood/studymood-backend/internal/http"
	"github.com/studymood/studymood-backend/internal/http/handlers"
	"github.com/studymood/studymood-backend/internal/http/middleware"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
	"github.com/studymood/studymood-backend/internal/realtime"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	StudyLog   *handlers.StudyLogHandler
	Analytics  *handlers.AnalyticsHandler
	StudyGroup *handlers.StudyGroupHandler
	Realtime   *handlers.RealtimeHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, hub *realtime.Hub) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     handlers.NewHealthHandler(),
		Auth:       handlers.NewAuthHandler(serviceset.Auth),
		User:       handlers.NewUserHandler(serviceset.User),
		StudyLog:   handlers.NewStudyLogHandler(serviceset.StudyLog),
		Analytics:  handlers.NewAnalyticsHandler(serviceset.Analytics),
		StudyGroup: handlers.NewStudyGroupHandler(serviceset.StudyGroup),
		Realtime:   handlers.NewRealtimeHandler(log, hub, serviceset.StudyGroup),
	}
}

func wireMiddleware(log *logger.Logger, serviceset Services) *middleware.AuthMiddleware {
	log.Info("Wiring middleware...")
	return middleware.NewAuthMiddleware(log, serviceset.Auth)
}

func wireServer(log *logger.Logger, handlerset Handlers, authMW *middleware.AuthMiddleware) *apphttp.Server {
	return apphttp.NewServer(apphttp.RouterConfig{
		Log:               log,
		AuthHandler:       handlerset.Auth,
		AuthMiddleware:    authMW,
		UserHandler:       handlerset.User,
		StudyLogHandler:   handlerset.StudyLog,
		AnalyticsHandler:  handlerset.Analytics,
		StudyGroupHandler: handlerset.StudyGroup,
		RealtimeHandler:   handlerset.Realtime,
		HealthHandler:     handlerset.Health,
	})
}
