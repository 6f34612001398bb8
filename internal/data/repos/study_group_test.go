package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/studymood/studymood-backend/internal/data/repos/testutil"
	types "github.com/studymood/studymood-backend/internal/domain"
)

func TestStudyGroupRepoMembership(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewStudyGroupRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	creator := testutil.SeedUser(t, ctx, tx, "groups-creator@example.com")
	invitee := testutil.SeedUser(t, ctx, tx, "groups-invitee@example.com")
	outsider := testutil.SeedUser(t, ctx, tx, "groups-outsider@example.com")

	group := testutil.SeedStudyGroup(t, ctx, tx, creator.ID, "Evening crew")

	isMember, err := repo.IsMember(ctx, tx, group.ID, creator.ID)
	if err != nil {
		t.Fatalf("IsMember: %v", err)
	}
	if !isMember {
		t.Fatalf("IsMember: creator should be a member")
	}

	if err := repo.AddMember(ctx, tx, &types.StudyGroupMember{
		ID:      uuid.New(),
		GroupID: group.ID,
		UserID:  invitee.ID,
	}); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	members, err := repo.MembersByGroup(ctx, tx, group.ID)
	if err != nil {
		t.Fatalf("MembersByGroup: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("MembersByGroup: expected 2 members, got %d", len(members))
	}

	groups, err := repo.ListByMember(ctx, tx, invitee.ID)
	if err != nil {
		t.Fatalf("ListByMember: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != group.ID {
		t.Fatalf("ListByMember: unexpected result %+v", groups)
	}

	groups, err = repo.ListByMember(ctx, tx, outsider.ID)
	if err != nil {
		t.Fatalf("ListByMember (outsider): %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("ListByMember (outsider): expected no groups, got %+v", groups)
	}

	if err := repo.RemoveMember(ctx, tx, group.ID, invitee.ID); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}
	isMember, err = repo.IsMember(ctx, tx, group.ID, invitee.ID)
	if err != nil {
		t.Fatalf("IsMember after remove: %v", err)
	}
	if isMember {
		t.Fatalf("IsMember after remove: expected false")
	}

	if err := repo.Delete(ctx, tx, group.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, tx, group.ID); err == nil {
		t.Fatalf("GetByID after delete: expected error")
	}
}
