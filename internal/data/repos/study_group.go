package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/studymood/studymood-backend/internal/domain"
	apperrors "github.com/studymood/studymood-backend/internal/pkg/errors"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
)

type StudyGroupRepo interface {
	Create(ctx context.Context, tx *gorm.DB, group *types.StudyGroup) (*types.StudyGroup, error)
	GetByID(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) (*types.StudyGroup, error)
	ListByMember(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.StudyGroup, error)
	UpdateCreatedBy(ctx context.Context, tx *gorm.DB, groupID, userID uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) error

	MembersByGroup(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) ([]types.StudyGroupMember, error)
	IsMember(ctx context.Context, tx *gorm.DB, groupID, userID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, tx *gorm.DB, member *types.StudyGroupMember) error
	RemoveMember(ctx context.Context, tx *gorm.DB, groupID, userID uuid.UUID) error

	AddInvitation(ctx context.Context, tx *gorm.DB, invitation *types.StudyGroupInvitation) error
}

type studyGroupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudyGroupRepo(db *gorm.DB, baseLog *logger.Logger) StudyGroupRepo {
	repoLog := baseLog.With("repo", "StudyGroupRepo")
	return &studyGroupRepo{db: db, log: repoLog}
}

func (gr *studyGroupRepo) Create(ctx context.Context, tx *gorm.DB, group *types.StudyGroup) (*types.StudyGroup, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	if err := transaction.WithContext(ctx).Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

func (gr *studyGroupRepo) GetByID(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) (*types.StudyGroup, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var result types.StudyGroup
	if err := transaction.WithContext(ctx).
		Where("id = ?", groupID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (gr *studyGroupRepo) ListByMember(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.StudyGroup, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []types.StudyGroup
	if err := transaction.WithContext(ctx).
		Joins("JOIN study_group_member ON study_group_member.group_id = study_group.id").
		Where("study_group_member.user_id = ?", userID).
		Order("study_group.updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (gr *studyGroupRepo) UpdateCreatedBy(ctx context.Context, tx *gorm.DB, groupID, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.StudyGroup{}).
		Where("id = ?", groupID).
		Update("created_by", userID).Error
}

func (gr *studyGroupRepo) Delete(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	if err := transaction.WithContext(ctx).
		Where("group_id = ?", groupID).
		Delete(&types.StudyGroupInvitation{}).Error; err != nil {
		return err
	}
	if err := transaction.WithContext(ctx).
		Where("group_id = ?", groupID).
		Delete(&types.StudyGroupMember{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).
		Where("id = ?", groupID).
		Delete(&types.StudyGroup{}).Error
}

func (gr *studyGroupRepo) MembersByGroup(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) ([]types.StudyGroupMember, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []types.StudyGroupMember
	if err := transaction.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (gr *studyGroupRepo) IsMember(ctx context.Context, tx *gorm.DB, groupID, userID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.StudyGroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (gr *studyGroupRepo) AddMember(ctx context.Context, tx *gorm.DB, member *types.StudyGroupMember) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	return transaction.WithContext(ctx).Create(member).Error
}

func (gr *studyGroupRepo) RemoveMember(ctx context.Context, tx *gorm.DB, groupID, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	return transaction.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&types.StudyGroupMember{}).Error
}

func (gr *studyGroupRepo) AddInvitation(ctx context.Context, tx *gorm.DB, invitation *types.StudyGroupInvitation) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	return transaction.WithContext(ctx).Create(invitation).Error
}
