package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID               uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email            string                      `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password         string                      `gorm:"not null;column:password" json:"-"`
	Name             string                      `gorm:"not null;column:name" json:"name"`
	FavoriteSubjects datatypes.JSONSlice[string] `gorm:"column:favorite_subjects" json:"favorite_subjects"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }
