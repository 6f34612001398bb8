package analytics

import (
	"github.com/studymood/studymood-backend/internal/domain"
)

// SubjectEmotionStat is one (subject, emotion) row of the unwindowed
// per-subject summary.
type SubjectEmotionStat struct {
	Subject    string             `json:"subject"`
	Emotion    domain.EmotionName `json:"emotion"`
	AvgScore   float64            `json:"avgScore"`
	Count      int                `json:"count"`
	TotalScore float64            `json:"totalScore"`
}

// TimeSlotEmotionStat is one (hour-of-day, emotion) row, unwindowed.
type TimeSlotEmotionStat struct {
	Hour     int                `json:"hour"`
	Emotion  domain.EmotionName `json:"emotion"`
	AvgScore float64            `json:"avgScore"`
	Count    int                `json:"count"`
}

// DailyTrendStat is one (calendar date, emotion) row within the trailing
// trend window. Date is "YYYY-MM-DD" in the reporting timezone.
type DailyTrendStat struct {
	Date     string             `json:"date"`
	Emotion  domain.EmotionName `json:"emotion"`
	AvgScore float64            `json:"avgScore"`
	Count    int                `json:"count"`
}

// Report is the full analytics payload for one user. Built fresh on every
// request, never cached.
type Report struct {
	TotalSessions   int                   `json:"totalSessions"`
	SubjectEmotions []SubjectEmotionStat  `json:"subjectEmotions"`
	WeeklyTrend     []DailyTrendStat      `json:"weeklyTrend"`
	TimeAnalysis    []TimeSlotEmotionStat `json:"timeAnalysis"`
	Streak          int                   `json:"streak"`
}

// Suggestion categories, in the payload's "type" field.
const (
	CategoryInfo    = "info"
	CategoryWarning = "warning"
	CategorySuccess = "success"
)

// Suggestion is one advisory message derived from the aggregated stats.
type Suggestion struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
