package app

import (
	"gorm.io/gorm"

	redisclient "github.com/studymood/studymood-backend/internal/clients/redis"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
	"github.com/studymood/studymood-backend/internal/realtime"
	"github.com/studymood/studymood-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	User       services.UserService
	StudyLog   services.StudyLogService
	Analytics  services.AnalyticsService
	StudyGroup services.StudyGroupService
	Activity   services.ActivityService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, hub *realtime.Hub) Services {
	log.Info("Wiring services...")

	// The redis bus is optional; without it activity events stay
	// instance-local.
	var bus redisclient.ActivityBus
	if b, err := redisclient.NewActivityBus(log); err != nil {
		log.Warn("redis activity bus unavailable, using local hub only", "error", err)
	} else {
		bus = b
	}

	activityService := services.NewActivityService(log, hub, bus)
	authService := services.NewAuthService(db, log, reposet.User, reposet.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	userService := services.NewUserService(db, log, reposet.User)
	studyLogService := services.NewStudyLogService(db, log, reposet.StudyLog, reposet.User, reposet.StudyGroup, activityService)
	analyticsService := services.NewAnalyticsService(db, log, reposet.StudyLog, cfg.ReportLocation)
	studyGroupService := services.NewStudyGroupService(db, log, reposet.StudyGroup, reposet.User, reposet.StudyLog, activityService)

	return Services{
		Auth:       authService,
		User:       userService,
		StudyLog:   studyLogService,
		Analytics:  analyticsService,
		StudyGroup: studyGroupService,
		Activity:   activityService,
	}
}
