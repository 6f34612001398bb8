package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/studymood/studymood-backend/internal/data/repos"
	types "github.com/studymood/studymood-backend/internal/domain"
	apperrors "github.com/studymood/studymood-backend/internal/pkg/errors"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
	"github.com/studymood/studymood-backend/internal/realtime"
)

// UserSummary is the member-facing slice of a user record.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// GroupMemberView is one member row on the group detail page, with that
// member's trailing-week totals.
type GroupMemberView struct {
	User          UserSummary `json:"user"`
	JoinedAt      time.Time   `json:"joined_at"`
	TotalSessions int         `json:"total_sessions"`
	TotalMinutes  int         `json:"total_minutes"`
}

type GroupDetail struct {
	Group   types.StudyGroup  `json:"group"`
	Members []GroupMemberView `json:"members"`
}

type CreateStudyGroupInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type StudyGroupService interface {
	Create(ctx context.Context, input CreateStudyGroupInput) (*types.StudyGroup, error)
	ListMine(ctx context.Context) ([]types.StudyGroup, error)
	Get(ctx context.Context, groupID uuid.UUID) (*GroupDetail, error)
	Invite(ctx context.Context, groupID uuid.UUID, email string) error
	Leave(ctx context.Context, groupID uuid.UUID) error
	EnsureMember(ctx context.Context, groupID uuid.UUID) error
}

type studyGroupService struct {
	db        *gorm.DB
	log       *logger.Logger
	groupRepo repos.StudyGroupRepo
	userRepo  repos.UserRepo
	logRepo   repos.StudyLogRepo
	activity  ActivityService
	now       func() time.Time
}

func NewStudyGroupService(
	db *gorm.DB,
	log *logger.Logger,
	groupRepo repos.StudyGroupRepo,
	userRepo repos.UserRepo,
	logRepo repos.StudyLogRepo,
	activity ActivityService,
) StudyGroupService {
	serviceLog := log.With("service", "StudyGroupService")
	return &studyGroupService{
		db:        db,
		log:       serviceLog,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		logRepo:   logRepo,
		activity:  activity,
		now:       time.Now,
	}
}

func (gs *studyGroupService) Create(ctx context.Context, input CreateStudyGroupInput) (*types.StudyGroup, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", apperrors.ErrInvalidArgument)
	}

	group := &types.StudyGroup{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		CreatedBy:   userID,
	}
	err = gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := gs.groupRepo.Create(ctx, tx, group); err != nil {
			return err
		}
		return gs.groupRepo.AddMember(ctx, tx, &types.StudyGroupMember{
			ID:      uuid.New(),
			GroupID: group.ID,
			UserID:  userID,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("create study group: %w", err)
	}
	return group, nil
}

func (gs *studyGroupService) ListMine(ctx context.Context) ([]types.StudyGroup, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := gs.groupRepo.ListByMember(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list study groups: %w", err)
	}
	if groups == nil {
		groups = []types.StudyGroup{}
	}
	return groups, nil
}

// Get returns the group plus each member's activity over the trailing week.
// Only members may view a group.
func (gs *studyGroupService) Get(ctx context.Context, groupID uuid.UUID) (*GroupDetail, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := gs.requireMembership(ctx, groupID, userID); err != nil {
		return nil, err
	}

	group, err := gs.groupRepo.GetByID(ctx, nil, groupID)
	if err != nil {
		return nil, err
	}
	members, err := gs.groupRepo.MembersByGroup(ctx, nil, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}

	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.UserID)
	}

	var (
		users    []*types.User
		progress []repos.MemberWeeklyProgress
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		users, err = gs.userRepo.GetByIDs(egCtx, nil, memberIDs)
		return err
	})
	eg.Go(func() error {
		var err error
		since := gs.now().AddDate(0, 0, -7)
		progress, err = gs.logRepo.WeeklyTotalsByUsers(egCtx, nil, memberIDs, since)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("assemble group detail: %w", err)
	}

	usersByID := make(map[uuid.UUID]*types.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	progressByID := make(map[uuid.UUID]repos.MemberWeeklyProgress, len(progress))
	for _, p := range progress {
		progressByID[p.UserID] = p
	}

	views := make([]GroupMemberView, 0, len(members))
	for _, m := range members {
		view := GroupMemberView{JoinedAt: m.JoinedAt}
		if u, ok := usersByID[m.UserID]; ok {
			view.User = UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
		} else {
			view.User = UserSummary{ID: m.UserID}
		}
		if p, ok := progressByID[m.UserID]; ok {
			view.TotalSessions = p.TotalSessions
			view.TotalMinutes = p.TotalMinutes
		}
		views = append(views, view)
	}

	return &GroupDetail{Group: *group, Members: views}, nil
}

// Invite adds an existing user to the group by email. The original product
// had no pending-invite flow: the invitee joins immediately and the
// invitation row is kept as an audit record.
func (gs *studyGroupService) Invite(ctx context.Context, groupID uuid.UUID, email string) error {
	userID, err := requireUserID(ctx)
	if err != nil {
		return err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrInvalidArgument)
	}

	if err := gs.requireMembership(ctx, groupID, userID); err != nil {
		return err
	}

	users, err := gs.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return fmt.Errorf("look up invitee: %w", err)
	}
	if len(users) == 0 {
		return fmt.Errorf("%w: no account with that email", apperrors.ErrNotFound)
	}
	invitee := users[0]

	alreadyMember, err := gs.groupRepo.IsMember(ctx, nil, groupID, invitee.ID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if alreadyMember {
		return fmt.Errorf("%w: user is already a member", apperrors.ErrInvalidArgument)
	}

	err = gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := gs.groupRepo.AddInvitation(ctx, tx, &types.StudyGroupInvitation{
			ID:        uuid.New(),
			GroupID:   groupID,
			Email:     email,
			InvitedBy: userID,
		}); err != nil {
			return err
		}
		return gs.groupRepo.AddMember(ctx, tx, &types.StudyGroupMember{
			ID:      uuid.New(),
			GroupID: groupID,
			UserID:  invitee.ID,
		})
	})
	if err != nil {
		return fmt.Errorf("invite member: %w", err)
	}

	if gs.activity != nil {
		gs.activity.PublishMemberEvent(ctx, groupID, realtime.EventMemberJoined, UserSummary{
			ID:    invitee.ID,
			Name:  invitee.Name,
			Email: invitee.Email,
		})
	}
	return nil
}

// Leave removes the caller from the group. The last member out deletes the
// group; if the creator leaves a non-empty group, ownership passes to the
// longest-standing remaining member.
func (gs *studyGroupService) Leave(ctx context.Context, groupID uuid.UUID) error {
	userID, err := requireUserID(ctx)
	if err != nil {
		return err
	}

	group, err := gs.groupRepo.GetByID(ctx, nil, groupID)
	if err != nil {
		return err
	}
	if err := gs.requireMembership(ctx, groupID, userID); err != nil {
		return err
	}

	err = gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := gs.groupRepo.RemoveMember(ctx, tx, groupID, userID); err != nil {
			return err
		}
		remaining, err := gs.groupRepo.MembersByGroup(ctx, tx, groupID)
		if err != nil {
			return err
		}
		if len(remaining) == 0 {
			return gs.groupRepo.Delete(ctx, tx, groupID)
		}
		if group.CreatedBy == userID {
			return gs.groupRepo.UpdateCreatedBy(ctx, tx, groupID, remaining[0].UserID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("leave study group: %w", err)
	}

	if gs.activity != nil {
		gs.activity.PublishMemberEvent(ctx, groupID, realtime.EventMemberLeft, UserSummary{ID: userID})
	}
	return nil
}

// EnsureMember reports whether the caller belongs to the group, as
// ErrUnauthorized when they do not. The activity stream uses it before
// subscribing a client to a group channel.
func (gs *studyGroupService) EnsureMember(ctx context.Context, groupID uuid.UUID) error {
	userID, err := requireUserID(ctx)
	if err != nil {
		return err
	}
	return gs.requireMembership(ctx, groupID, userID)
}

func (gs *studyGroupService) requireMembership(ctx context.Context, groupID, userID uuid.UUID) error {
	isMember, err := gs.groupRepo.IsMember(ctx, nil, groupID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !isMember {
		return apperrors.ErrUnauthorized
	}
	return nil
}
