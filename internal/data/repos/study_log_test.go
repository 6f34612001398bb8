package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/studymood/studymood-backend/internal/data/repos/testutil"
	types "github.com/studymood/studymood-backend/internal/domain"
)

func TestStudyLogRepo(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewStudyLogRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, tx, "logrepo@example.com")
	other := testutil.SeedUser(t, ctx, tx, "logrepo-other@example.com")

	now := time.Now().UTC()
	older := testutil.SeedStudyLog(t, ctx, tx, owner.ID, "Math", now.Add(-2*time.Hour),
		types.EmotionReading{Emotion: types.EmotionFocused, Score: 7})
	newer := testutil.SeedStudyLog(t, ctx, tx, owner.ID, "Biology", now.Add(-time.Hour),
		types.EmotionReading{Emotion: types.EmotionTired, Score: 4})
	testutil.SeedStudyLog(t, ctx, tx, other.ID, "Math", now,
		types.EmotionReading{Emotion: types.EmotionHappy, Score: 6})

	logs, err := repo.ListByUser(ctx, tx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("ListByUser: expected 2 logs, got %d", len(logs))
	}
	if logs[0].ID != newer.ID || logs[1].ID != older.ID {
		t.Fatalf("ListByUser: expected newest first, got %v then %v", logs[0].ID, logs[1].ID)
	}
	if len(logs[0].Emotions) != 1 || logs[0].Emotions[0].Emotion != types.EmotionTired {
		t.Fatalf("ListByUser: emotions did not round-trip: %+v", logs[0].Emotions)
	}

	deleted, err := repo.DeleteOwned(ctx, tx, other.ID, older.ID)
	if err != nil {
		t.Fatalf("DeleteOwned (wrong owner): %v", err)
	}
	if deleted {
		t.Fatalf("DeleteOwned: deleted a log owned by someone else")
	}

	deleted, err = repo.DeleteOwned(ctx, tx, owner.ID, older.ID)
	if err != nil {
		t.Fatalf("DeleteOwned: %v", err)
	}
	if !deleted {
		t.Fatalf("DeleteOwned: expected deletion")
	}

	logs, err = repo.ListByUser(ctx, tx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUser after delete: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("ListByUser after delete: expected 1 log, got %d", len(logs))
	}
}

func TestStudyLogRepoWeeklyTotals(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewStudyLogRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	a := testutil.SeedUser(t, ctx, tx, "totals-a@example.com")
	b := testutil.SeedUser(t, ctx, tx, "totals-b@example.com")

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -7)

	testutil.SeedStudyLog(t, ctx, tx, a.ID, "Math", now.Add(-time.Hour),
		types.EmotionReading{Emotion: types.EmotionFocused, Score: 7})
	testutil.SeedStudyLog(t, ctx, tx, a.ID, "Math", now.Add(-3*time.Hour),
		types.EmotionReading{Emotion: types.EmotionCalm, Score: 5})
	// Outside the window: must not count.
	testutil.SeedStudyLog(t, ctx, tx, a.ID, "Math", now.AddDate(0, 0, -10),
		types.EmotionReading{Emotion: types.EmotionHappy, Score: 5})

	totals, err := repo.WeeklyTotalsByUsers(ctx, tx, []uuid.UUID{a.ID, b.ID}, since)
	if err != nil {
		t.Fatalf("WeeklyTotalsByUsers: %v", err)
	}
	if len(totals) != 1 {
		t.Fatalf("WeeklyTotalsByUsers: expected 1 row, got %d (%+v)", len(totals), totals)
	}
	if totals[0].UserID != a.ID || totals[0].TotalSessions != 2 || totals[0].TotalMinutes != 60 {
		t.Fatalf("WeeklyTotalsByUsers: unexpected row %+v", totals[0])
	}
}
