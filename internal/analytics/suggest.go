package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/studymood/studymood-backend/internal/domain"
)

// Emotion groupings for the emotional-balance rule.
var (
	positiveEmotions = map[domain.EmotionName]struct{}{
		domain.EmotionHappy:     {},
		domain.EmotionExcited:   {},
		domain.EmotionConfident: {},
		domain.EmotionCalm:      {},
		domain.EmotionFocused:   {},
	}
	negativeEmotions = map[domain.EmotionName]struct{}{
		domain.EmotionStressed:   {},
		domain.EmotionAnxious:    {},
		domain.EmotionFrustrated: {},
	}
)

const (
	stressPercentThreshold   = 60.0
	morningShareThreshold    = 50.0
	lateNightTiredThreshold  = 50.0
	lateNightTiredScoreFloor = 5
	positiveAvgThreshold     = 6.0
	negativeAvgThreshold     = 5.0
	boredAvgThreshold        = 5.0
)

// rule is one independent heuristic. Rules run in table order and each may
// contribute any number of suggestions; they are not mutually exclusive.
type rule struct {
	name     string
	evaluate func(report Report, logs []domain.StudyLog, loc *time.Location) []Suggestion
}

var rules = []rule{
	{name: "subject_stress", evaluate: subjectStressRule},
	{name: "morning_focus", evaluate: morningFocusRule},
	{name: "late_night_fatigue", evaluate: lateNightFatigueRule},
	{name: "emotional_balance", evaluate: emotionalBalanceRule},
	{name: "boredom", evaluate: boredomRule},
}

// GenerateSuggestions evaluates the rule table against a computed report and
// the raw logs it was computed from. Deterministic: same input, same output,
// in rule order. loc is the reporting timezone used for hour-of-day checks.
func GenerateSuggestions(report Report, logs []domain.StudyLog, loc *time.Location) []Suggestion {
	if len(logs) == 0 {
		return []Suggestion{{
			Type:    CategoryInfo,
			Message: "Start logging your study sessions to get personalized suggestions!",
		}}
	}
	if loc == nil {
		loc = time.UTC
	}

	out := make([]Suggestion, 0, 4)
	for _, r := range rules {
		out = append(out, r.evaluate(report, logs, loc)...)
	}
	if len(out) == 0 {
		out = append(out, Suggestion{
			Type:    CategoryInfo,
			Message: "Keep tracking your study sessions to discover patterns and improve your study habits!",
		})
	}
	return out
}

// subjectStressRule warns per subject when Stressed readings make up more
// than 60% of that subject's readings.
func subjectStressRule(report Report, _ []domain.StudyLog, _ *time.Location) []Suggestion {
	if len(report.SubjectEmotions) == 0 {
		return nil
	}

	subjects := make([]string, 0)
	totals := make(map[string]int)
	stressed := make(map[string]int)
	for _, stat := range report.SubjectEmotions {
		if _, ok := totals[stat.Subject]; !ok {
			subjects = append(subjects, stat.Subject)
		}
		totals[stat.Subject] += stat.Count
		if stat.Emotion == domain.EmotionStressed {
			stressed[stat.Subject] += stat.Count
		}
	}

	var out []Suggestion
	for _, subject := range subjects {
		pct := float64(stressed[subject]) / float64(totals[subject]) * 100
		if pct > stressPercentThreshold {
			out = append(out, Suggestion{
				Type: CategoryWarning,
				Message: fmt.Sprintf(
					"You seem stressed while studying %s (%.1f%% of sessions). Consider shorter sessions or taking more breaks.",
					subject, pct),
			})
		}
	}
	return out
}

// morningFocusRule fires when the morning share of weighted Focused score
// exceeds 50%. Evening only matches hour >= 18; hours 0-5 fall into no
// bucket, matching the original behavior.
func morningFocusRule(report Report, _ []domain.StudyLog, _ *time.Location) []Suggestion {
	if len(report.TimeAnalysis) == 0 {
		return nil
	}

	var morning, afternoon, evening float64
	for _, stat := range report.TimeAnalysis {
		if stat.Emotion != domain.EmotionFocused {
			continue
		}
		weighted := stat.AvgScore * float64(stat.Count)
		switch {
		case stat.Hour >= 6 && stat.Hour < 12:
			morning += weighted
		case stat.Hour >= 12 && stat.Hour < 18:
			afternoon += weighted
		case stat.Hour >= 18:
			evening += weighted
		}
	}

	total := morning + afternoon + evening
	if total > 0 && morning/total*100 > morningShareThreshold {
		return []Suggestion{{
			Type:    CategorySuccess,
			Message: "You are most focused in the morning! Try scheduling difficult subjects earlier in the day.",
		}}
	}
	return nil
}

// lateNightFatigueRule looks at sessions between 23:00 and 02:00 and warns
// when more than half of them carry a Tired reading above 5.
func lateNightFatigueRule(_ Report, logs []domain.StudyLog, loc *time.Location) []Suggestion {
	lateNight := 0
	tired := 0
	for _, log := range logs {
		hour := log.StudyTime.In(loc).Hour()
		if hour < 23 && hour >= 2 {
			continue
		}
		lateNight++
		for _, reading := range log.Emotions {
			if reading.Emotion == domain.EmotionTired && reading.Score > lateNightTiredScoreFloor {
				tired++
				break
			}
		}
	}

	if lateNight > 0 && float64(tired)/float64(lateNight)*100 > lateNightTiredThreshold {
		return []Suggestion{{
			Type:    CategoryWarning,
			Message: "Late-night study sessions may reduce focus. Consider studying earlier in the day for better productivity.",
		}}
	}
	return nil
}

// emotionalBalanceRule reports overall positive or negative drift. The two
// branches are mutually exclusive with positive checked first.
func emotionalBalanceRule(report Report, _ []domain.StudyLog, _ *time.Location) []Suggestion {
	if len(report.SubjectEmotions) == 0 || report.TotalSessions <= 0 {
		return nil
	}

	var totalPositive, totalNegative float64
	for _, stat := range report.SubjectEmotions {
		weighted := stat.AvgScore * float64(stat.Count)
		if _, ok := positiveEmotions[stat.Emotion]; ok {
			totalPositive += weighted
		}
		if _, ok := negativeEmotions[stat.Emotion]; ok {
			totalNegative += weighted
		}
	}

	positiveAvg := totalPositive / float64(report.TotalSessions)
	negativeAvg := totalNegative / float64(report.TotalSessions)

	if positiveAvg > positiveAvgThreshold {
		return []Suggestion{{
			Type: CategorySuccess,
			Message: fmt.Sprintf(
				"Great emotional balance! Your average positive emotion score is %.1f/10. Keep up the good work!",
				positiveAvg),
		}}
	}
	if negativeAvg > negativeAvgThreshold {
		return []Suggestion{{
			Type: CategoryWarning,
			Message: fmt.Sprintf(
				"Your average negative emotion score is %.1f/10. Consider stress management techniques and regular breaks.",
				negativeAvg),
		}}
	}
	return nil
}

// boredomRule lists subjects whose average Bored score exceeds 5.
func boredomRule(report Report, _ []domain.StudyLog, _ *time.Location) []Suggestion {
	var bored []string
	for _, stat := range report.SubjectEmotions {
		if stat.Emotion == domain.EmotionBored && stat.AvgScore > boredAvgThreshold {
			bored = append(bored, stat.Subject)
		}
	}
	if len(bored) == 0 {
		return nil
	}
	return []Suggestion{{
		Type: CategoryInfo,
		Message: fmt.Sprintf(
			"You seem bored with %s. Try new study methods or break down topics into smaller, engaging tasks.",
			strings.Join(bored, ", ")),
	}}
}
