package domain

import (
	"time"

	"github.com/google/uuid"
)

type StudyGroup struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (StudyGroup) TableName() string { return "study_group" }

type StudyGroupMember struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GroupID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_group_member,priority:1" json:"group_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_group_member,priority:2;index" json:"user_id"`
	JoinedAt time.Time `gorm:"not null;default:now()" json:"joined_at"`
}

func (StudyGroupMember) TableName() string { return "study_group_member" }

type StudyGroupInvitation struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GroupID   uuid.UUID `gorm:"type:uuid;not null;index" json:"group_id"`
	Email     string    `gorm:"not null" json:"email"`
	InvitedBy uuid.UUID `gorm:"type:uuid;not null" json:"invited_by"`
	InvitedAt time.Time `gorm:"not null;default:now()" json:"invited_at"`
}

func (StudyGroupInvitation) TableName() string { return "study_group_invitation" }
