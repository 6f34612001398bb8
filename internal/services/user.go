package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studymood/studymood-backend/internal/data/repos"
	types "github.com/studymood/studymood-backend/internal/domain"
	"github.com/studymood/studymood-backend/internal/pkg/ctxutil"
	apperrors "github.com/studymood/studymood-backend/internal/pkg/errors"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
)

type UserService interface {
	GetProfile(ctx context.Context) (*types.User, error)
	UpdateFavoriteSubjects(ctx context.Context, subjects []string) ([]string, error)
	ToggleFavoriteSubject(ctx context.Context, subject string) ([]string, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func requireUserID(ctx context.Context) (uuid.UUID, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, apperrors.ErrUnauthorized
	}
	return rd.UserID, nil
}

func (us *userService) GetProfile(ctx context.Context) (*types.User, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	found, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if len(found) == 0 || found[0] == nil {
		return nil, apperrors.ErrNotFound
	}
	return found[0], nil
}

func (us *userService) UpdateFavoriteSubjects(ctx context.Context, subjects []string) ([]string, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}

	if err := us.userRepo.UpdateFavoriteSubjects(ctx, nil, userID, cleaned); err != nil {
		return nil, fmt.Errorf("update favorites: %w", err)
	}
	return cleaned, nil
}

// ToggleFavoriteSubject adds the subject, or removes it when an entry
// already matches case-insensitively.
func (us *userService) ToggleFavoriteSubject(ctx context.Context, subject string) ([]string, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", apperrors.ErrInvalidArgument)
	}

	var updated []string
	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := us.userRepo.GetByIDs(ctx, tx, []uuid.UUID{userID})
		if err != nil {
			return fmt.Errorf("fetch user: %w", err)
		}
		if len(found) == 0 || found[0] == nil {
			return apperrors.ErrNotFound
		}

		current := []string(found[0].FavoriteSubjects)
		next := make([]string, 0, len(current)+1)
		removed := false
		for _, s := range current {
			if strings.EqualFold(s, subject) {
				removed = true
				continue
			}
			next = append(next, s)
		}
		if !removed {
			next = append(next, subject)
		}

		if err := us.userRepo.UpdateFavoriteSubjects(ctx, tx, userID, next); err != nil {
			return fmt.Errorf("update favorites: %w", err)
		}
		updated = next
		return nil
	}); err != nil {
		return nil, err
	}
	return updated, nil
}
