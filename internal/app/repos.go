package app

import (
	"gorm.io/gorm"

	"github.com/studymood/studymood-backend/internal/data/repos"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
)

type Repos struct {
	User       repos.UserRepo
	UserToken  repos.UserTokenRepo
	StudyLog   repos.StudyLogRepo
	StudyGroup repos.StudyGroupRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:       repos.NewUserRepo(db, log),
		UserToken:  repos.NewUserTokenRepo(db, log),
		StudyLog:   repos.NewStudyLogRepo(db, log),
		StudyGroup: repos.NewStudyGroupRepo(db, log),
	}
}
