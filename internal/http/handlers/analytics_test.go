package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/studymood/studymood-backend/internal/analytics"
	types "github.com/studymood/studymood-backend/internal/domain"
	apperrors "github.com/studymood/studymood-backend/internal/pkg/errors"
)

type stubAnalyticsService struct {
	report      *analytics.Report
	suggestions []analytics.Suggestion
	err         error
}

func (s *stubAnalyticsService) GetAnalytics(ctx context.Context) (*analytics.Report, error) {
	return s.report, s.err
}

func (s *stubAnalyticsService) GetSuggestions(ctx context.Context) ([]analytics.Suggestion, error) {
	return s.suggestions, s.err
}

func newAnalyticsRouter(svc *stubAnalyticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAnalyticsHandler(svc)
	r := gin.New()
	r.GET("/api/study-logs/analytics", h.GetAnalytics)
	r.GET("/api/study-logs/suggestions", h.GetSuggestions)
	return r
}

func TestAnalyticsHandlerPayloadShape(t *testing.T) {
	report := &analytics.Report{
		TotalSessions: 3,
		SubjectEmotions: []analytics.SubjectEmotionStat{
			{Subject: "Math", Emotion: types.EmotionFocused, AvgScore: 7.3, Count: 3, TotalScore: 22},
		},
		WeeklyTrend: []analytics.DailyTrendStat{
			{Date: "2026-03-10", Emotion: types.EmotionFocused, AvgScore: 7.3, Count: 3},
		},
		TimeAnalysis: []analytics.TimeSlotEmotionStat{
			{Hour: 9, Emotion: types.EmotionFocused, AvgScore: 7.3, Count: 3},
		},
		Streak: 2,
	}
	r := newAnalyticsRouter(&stubAnalyticsService{report: report})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/study-logs/analytics", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	for _, key := range []string{"totalSessions", "subjectEmotions", "weeklyTrend", "timeAnalysis", "streak"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("payload missing key %q: %s", key, w.Body.String())
		}
	}

	var row []map[string]any
	if err := json.Unmarshal(payload["subjectEmotions"], &row); err != nil {
		t.Fatalf("unmarshal subjectEmotions: %v", err)
	}
	if len(row) != 1 || row[0]["subject"] != "Math" || row[0]["avgScore"] != 7.3 {
		t.Errorf("unexpected subjectEmotions row: %v", row)
	}
}

func TestAnalyticsHandlerErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unauthorized", err: apperrors.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "data unavailable", err: apperrors.ErrDataUnavailable, wantStatus: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAnalyticsRouter(&stubAnalyticsService{err: tt.err})

			for _, target := range []string{"/api/study-logs/analytics", "/api/study-logs/suggestions"} {
				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, target, nil)
				r.ServeHTTP(w, req)

				if w.Code != tt.wantStatus {
					t.Fatalf("%s: status = %d, want %d", target, w.Code, tt.wantStatus)
				}
			}
		})
	}
}

func TestSuggestionsHandlerEnvelope(t *testing.T) {
	r := newAnalyticsRouter(&stubAnalyticsService{
		suggestions: []analytics.Suggestion{
			{Type: analytics.CategoryWarning, Message: "You seem stressed"},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/study-logs/suggestions", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var payload struct {
		Suggestions []analytics.Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(payload.Suggestions) != 1 || payload.Suggestions[0].Type != analytics.CategoryWarning {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
