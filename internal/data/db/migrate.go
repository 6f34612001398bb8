package db

import (
	"gorm.io/gorm"

	types "github.com/studymood/studymood-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Identity + auth
		&types.User{},
		&types.UserToken{},

		// Study sessions
		&types.StudyLog{},

		// Groups
		&types.StudyGroup{},
		&types.StudyGroupMember{},
		&types.StudyGroupInvitation{},
	)
}
