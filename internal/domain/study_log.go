package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudyLog is one user-submitted study session. Immutable once created
// except for deletion.
type StudyLog struct {
	ID       uuid.UUID                           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID   uuid.UUID                           `gorm:"type:uuid;not null;index:idx_study_log_user_time,priority:1" json:"user_id"`
	Subject  string                              `gorm:"not null" json:"subject"`
	Emotions datatypes.JSONSlice[EmotionReading] `gorm:"not null" json:"emotions"`

	StudyTime       time.Time                   `gorm:"not null;index:idx_study_log_user_time,priority:2,sort:desc" json:"study_time"`
	DurationMinutes *int                        `gorm:"column:duration_minutes" json:"duration,omitempty"`
	Notes           string                      `gorm:"size:500" json:"notes,omitempty"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (StudyLog) TableName() string { return "study_log" }

// MaxNotesLength bounds the free-text notes field.
const MaxNotesLength = 500
