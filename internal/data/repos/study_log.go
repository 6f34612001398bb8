package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/studymood/studymood-backend/internal/domain"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
)

// MemberWeeklyProgress is one user's trailing-window activity roll-up, used
// for the study-group member view.
type MemberWeeklyProgress struct {
	UserID        uuid.UUID `json:"user_id"`
	TotalSessions int       `json:"totalSessions"`
	TotalMinutes  int       `json:"totalMinutes"`
}

type StudyLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.StudyLog) ([]*types.StudyLog, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.StudyLog, error)
	DeleteOwned(ctx context.Context, tx *gorm.DB, userID, logID uuid.UUID) (bool, error)
	WeeklyTotalsByUsers(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID, since time.Time) ([]MemberWeeklyProgress, error)
}

type studyLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudyLogRepo(db *gorm.DB, baseLog *logger.Logger) StudyLogRepo {
	repoLog := baseLog.With("repo", "StudyLogRepo")
	return &studyLogRepo{db: db, log: repoLog}
}

func (sr *studyLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.StudyLog) ([]*types.StudyLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(logs) == 0 {
		return []*types.StudyLog{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (sr *studyLogRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.StudyLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []types.StudyLog
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("study_time DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteOwned deletes a log only when it belongs to the user. Returns false
// when nothing matched.
func (sr *studyLogRepo) DeleteOwned(ctx context.Context, tx *gorm.DB, userID, logID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	result := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&types.StudyLog{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (sr *studyLogRepo) WeeklyTotalsByUsers(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID, since time.Time) ([]MemberWeeklyProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []MemberWeeklyProgress
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.StudyLog{}).
		Select("user_id, COUNT(*) AS total_sessions, COALESCE(SUM(duration_minutes), 0) AS total_minutes").
		Where("user_id IN ? AND study_time >= ?", userIDs, since).
		Group("user_id").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
