package analytics

import (
	"testing"
	"time"

	"github.com/studymood/studymood-backend/internal/domain"
)

func dayLog(year int, month time.Month, day, hour int) domain.StudyLog {
	return newLog("Math", time.Date(year, month, day, hour, 0, 0, 0, time.UTC),
		reading(domain.EmotionFocused, 6))
}

func TestStreakStopsAtGap(t *testing.T) {
	today := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	logs := []domain.StudyLog{
		dayLog(2024, 5, 10, 9),
		dayLog(2024, 5, 9, 21),
		dayLog(2024, 5, 8, 14),
		dayLog(2024, 5, 6, 11), // gap at the 7th
	}

	if got := Streak(logs, today, time.UTC); got != 3 {
		t.Fatalf("Streak = %d, want 3", got)
	}
}

func TestStreakZeroWithoutTodayLog(t *testing.T) {
	today := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	logs := []domain.StudyLog{
		dayLog(2024, 5, 9, 9),
		dayLog(2024, 5, 8, 9),
		dayLog(2024, 5, 7, 9),
	}

	if got := Streak(logs, today, time.UTC); got != 0 {
		t.Fatalf("Streak = %d, want 0 when today has no log", got)
	}
}

func TestStreakEmptyLogs(t *testing.T) {
	today := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	if got := Streak(nil, today, time.UTC); got != 0 {
		t.Fatalf("Streak = %d, want 0 for no logs", got)
	}
}

func TestStreakMultipleLogsSameDay(t *testing.T) {
	today := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	logs := []domain.StudyLog{
		dayLog(2024, 5, 10, 8),
		dayLog(2024, 5, 10, 20),
		dayLog(2024, 5, 9, 9),
	}

	if got := Streak(logs, today, time.UTC); got != 2 {
		t.Fatalf("Streak = %d, want 2 (duplicate days collapse)", got)
	}
}

// A log late on May 9 UTC lands on May 10 in UTC+2, so the streak differs by
// reporting location.
func TestStreakReportingTimezone(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	today := time.Date(2024, 5, 10, 6, 0, 0, 0, time.UTC)
	logs := []domain.StudyLog{
		newLog("Math", time.Date(2024, 5, 9, 23, 30, 0, 0, time.UTC), reading(domain.EmotionCalm, 5)),
	}

	if got := Streak(logs, today, time.UTC); got != 0 {
		t.Fatalf("UTC Streak = %d, want 0", got)
	}
	if got := Streak(logs, today, loc); got != 1 {
		t.Fatalf("UTC+2 Streak = %d, want 1", got)
	}
}
