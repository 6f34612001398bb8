package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/studymood/studymood-backend/internal/data/repos"
	types "github.com/studymood/studymood-backend/internal/domain"
	apperrors "github.com/studymood/studymood-backend/internal/pkg/errors"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
	"github.com/studymood/studymood-backend/internal/realtime"
)

// CreateStudyLogInput is a new session as submitted by the user.
type CreateStudyLogInput struct {
	Subject         string                 `json:"subject"`
	Emotions        []types.EmotionReading `json:"emotions"`
	StudyTime       *time.Time             `json:"study_time"`
	DurationMinutes *int                   `json:"duration"`
	Notes           string                 `json:"notes"`
	Tags            []string               `json:"tags"`
}

type StudyLogService interface {
	List(ctx context.Context) ([]types.StudyLog, error)
	Create(ctx context.Context, input CreateStudyLogInput) (*types.StudyLog, error)
	Delete(ctx context.Context, logID uuid.UUID) error
}

type studyLogService struct {
	db        *gorm.DB
	log       *logger.Logger
	logRepo   repos.StudyLogRepo
	userRepo  repos.UserRepo
	groupRepo repos.StudyGroupRepo
	activity  ActivityService
	now       func() time.Time
}

func NewStudyLogService(
	db *gorm.DB,
	log *logger.Logger,
	logRepo repos.StudyLogRepo,
	userRepo repos.UserRepo,
	groupRepo repos.StudyGroupRepo,
	activity ActivityService,
) StudyLogService {
	serviceLog := log.With("service", "StudyLogService")
	return &studyLogService{
		db:        db,
		log:       serviceLog,
		logRepo:   logRepo,
		userRepo:  userRepo,
		groupRepo: groupRepo,
		activity:  activity,
		now:       time.Now,
	}
}

func (ss *studyLogService) List(ctx context.Context) ([]types.StudyLog, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := ss.logRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list study logs: %w", err)
	}
	if logs == nil {
		logs = []types.StudyLog{}
	}
	return logs, nil
}

func (ss *studyLogService) Create(ctx context.Context, input CreateStudyLogInput) (*types.StudyLog, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	cleaned, err := validateStudyLogInput(input)
	if err != nil {
		return nil, err
	}

	studyTime := ss.now()
	if cleaned.StudyTime != nil {
		studyTime = *cleaned.StudyTime
	}

	record := &types.StudyLog{
		ID:              uuid.New(),
		UserID:          userID,
		Subject:         cleaned.Subject,
		Emotions:        datatypes.JSONSlice[types.EmotionReading](cleaned.Emotions),
		StudyTime:       studyTime,
		DurationMinutes: cleaned.DurationMinutes,
		Notes:           cleaned.Notes,
		Tags:            datatypes.JSONSlice[string](cleaned.Tags),
	}
	if _, err := ss.logRepo.Create(ctx, nil, []*types.StudyLog{record}); err != nil {
		return nil, fmt.Errorf("create study log: %w", err)
	}

	ss.notifyGroups(ctx, userID, record)

	return record, nil
}

func (ss *studyLogService) Delete(ctx context.Context, logID uuid.UUID) error {
	userID, err := requireUserID(ctx)
	if err != nil {
		return err
	}

	deleted, err := ss.logRepo.DeleteOwned(ctx, nil, userID, logID)
	if err != nil {
		return fmt.Errorf("delete study log: %w", err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}

// notifyGroups tells the user's groups about the new session. Best effort:
// a failed lookup never fails the write.
func (ss *studyLogService) notifyGroups(ctx context.Context, userID uuid.UUID, record *types.StudyLog) {
	if ss.activity == nil {
		return
	}

	groups, err := ss.groupRepo.ListByMember(ctx, nil, userID)
	if err != nil {
		ss.log.Warn("group lookup for activity broadcast failed", "error", err)
		return
	}
	if len(groups) == 0 {
		return
	}

	userName := ""
	if users, err := ss.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID}); err == nil && len(users) > 0 {
		userName = users[0].Name
	}

	groupIDs := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		groupIDs = append(groupIDs, g.ID)
	}
	ss.activity.PublishSessionLogged(ctx, groupIDs, realtime.SessionLoggedData{
		UserID:          userID,
		UserName:        userName,
		Subject:         record.Subject,
		DurationMinutes: record.DurationMinutes,
		At:              record.StudyTime,
	})
}

// validateStudyLogInput normalizes and checks a submission. Emotion names
// and score bounds are enforced here, before anything reaches storage.
func validateStudyLogInput(input CreateStudyLogInput) (CreateStudyLogInput, error) {
	out := input

	out.Subject = strings.TrimSpace(input.Subject)
	if out.Subject == "" {
		return out, fmt.Errorf("%w: subject is required", apperrors.ErrInvalidArgument)
	}

	if len(input.Emotions) == 0 {
		return out, fmt.Errorf("%w: at least one emotion is required", apperrors.ErrInvalidArgument)
	}
	for _, reading := range input.Emotions {
		if err := reading.Validate(); err != nil {
			return out, err
		}
	}

	if input.DurationMinutes != nil && *input.DurationMinutes < 1 {
		return out, fmt.Errorf("%w: duration must be a positive number of minutes", apperrors.ErrInvalidArgument)
	}

	out.Notes = strings.TrimSpace(input.Notes)
	if len(out.Notes) > types.MaxNotesLength {
		return out, fmt.Errorf("%w: notes must be at most %d characters", apperrors.ErrInvalidArgument, types.MaxNotesLength)
	}

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	out.Tags = tags

	return out, nil
}
