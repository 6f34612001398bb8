package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/studymood/studymood-backend/internal/analytics"
	"github.com/studymood/studymood-backend/internal/data/repos"
	types "github.com/studymood/studymood-backend/internal/domain"
	"github.com/studymood/studymood-backend/internal/pkg/ctxutil"
	apperrors "github.com/studymood/studymood-backend/internal/pkg/errors"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
)

type stubStudyLogRepo struct {
	logs []types.StudyLog
	err  error
}

func (s *stubStudyLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.StudyLog) ([]*types.StudyLog, error) {
	return logs, nil
}

func (s *stubStudyLogRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.StudyLog, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.logs, nil
}

func (s *stubStudyLogRepo) DeleteOwned(ctx context.Context, tx *gorm.DB, userID, logID uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubStudyLogRepo) WeeklyTotalsByUsers(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID, since time.Time) ([]repos.MemberWeeklyProgress, error) {
	return nil, nil
}

func newAnalyticsServiceForTest(t *testing.T, repo repos.StudyLogRepo, now time.Time) *analyticsService {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return &analyticsService{
		log:     log,
		logRepo: repo,
		loc:     time.UTC,
		now:     func() time.Time { return now },
	}
}

func authedContext(userID uuid.UUID) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: userID})
}

func TestAnalyticsServiceRequiresAuth(t *testing.T) {
	svc := newAnalyticsServiceForTest(t, &stubStudyLogRepo{}, time.Now())

	if _, err := svc.GetAnalytics(context.Background()); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("GetAnalytics() error = %v, want %v", err, apperrors.ErrUnauthorized)
	}
	if _, err := svc.GetSuggestions(context.Background()); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("GetSuggestions() error = %v, want %v", err, apperrors.ErrUnauthorized)
	}
}

func TestAnalyticsServiceDataUnavailable(t *testing.T) {
	svc := newAnalyticsServiceForTest(t, &stubStudyLogRepo{err: errors.New("connection refused")}, time.Now())
	ctx := authedContext(uuid.New())

	if _, err := svc.GetAnalytics(ctx); !errors.Is(err, apperrors.ErrDataUnavailable) {
		t.Fatalf("GetAnalytics() error = %v, want %v", err, apperrors.ErrDataUnavailable)
	}
	if _, err := svc.GetSuggestions(ctx); !errors.Is(err, apperrors.ErrDataUnavailable) {
		t.Fatalf("GetSuggestions() error = %v, want %v", err, apperrors.ErrDataUnavailable)
	}
}

func TestAnalyticsServiceReportAndStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	userID := uuid.New()
	logs := []types.StudyLog{
		{
			ID:        uuid.New(),
			UserID:    userID,
			Subject:   "Math",
			StudyTime: now.Add(-2 * time.Hour),
			Emotions:  datatypes.JSONSlice[types.EmotionReading]{{Emotion: types.EmotionFocused, Score: 8}},
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Subject:   "Math",
			StudyTime: now.AddDate(0, 0, -1),
			Emotions:  datatypes.JSONSlice[types.EmotionReading]{{Emotion: types.EmotionFocused, Score: 6}},
		},
	}
	svc := newAnalyticsServiceForTest(t, &stubStudyLogRepo{logs: logs}, now)

	report, err := svc.GetAnalytics(authedContext(userID))
	if err != nil {
		t.Fatalf("GetAnalytics() error = %v", err)
	}
	if report.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", report.TotalSessions)
	}
	if report.Streak != 2 {
		t.Errorf("Streak = %d, want 2", report.Streak)
	}
	if len(report.SubjectEmotions) != 1 {
		t.Fatalf("SubjectEmotions rows = %d, want 1", len(report.SubjectEmotions))
	}
	row := report.SubjectEmotions[0]
	if row.Subject != "Math" || row.Emotion != types.EmotionFocused || row.AvgScore != 7.0 || row.Count != 2 {
		t.Errorf("unexpected subject row: %+v", row)
	}
}

func TestAnalyticsServiceSuggestionsNoData(t *testing.T) {
	svc := newAnalyticsServiceForTest(t, &stubStudyLogRepo{}, time.Now())

	suggestions, err := svc.GetSuggestions(authedContext(uuid.New()))
	if err != nil {
		t.Fatalf("GetSuggestions() error = %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("suggestions = %d, want 1", len(suggestions))
	}
	if suggestions[0].Type != analytics.CategoryInfo {
		t.Errorf("type = %q, want %q", suggestions[0].Type, analytics.CategoryInfo)
	}
	if suggestions[0].Message != "Start logging your study sessions to get personalized suggestions!" {
		t.Errorf("unexpected message: %q", suggestions[0].Message)
	}
}
