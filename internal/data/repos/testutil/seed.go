package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/studymood/studymood-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "pw",
		Name:     "Test User",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedStudyLog(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, subject string, studyTime time.Time, readings ...types.EmotionReading) *types.StudyLog {
	tb.Helper()
	minutes := 30
	l := &types.StudyLog{
		ID:              uuid.New(),
		UserID:          userID,
		Subject:         subject,
		Emotions:        datatypes.JSONSlice[types.EmotionReading](readings),
		StudyTime:       studyTime,
		DurationMinutes: &minutes,
		Tags:            datatypes.JSONSlice[string]{},
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed study log: %v", err)
	}
	return l
}

func SeedStudyGroup(tb testing.TB, ctx context.Context, tx *gorm.DB, createdBy uuid.UUID, name string) *types.StudyGroup {
	tb.Helper()
	g := &types.StudyGroup{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: createdBy,
	}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed study group: %v", err)
	}
	m := &types.StudyGroupMember{
		ID:      uuid.New(),
		GroupID: g.ID,
		UserID:  createdBy,
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed study group member: %v", err)
	}
	return g
}
