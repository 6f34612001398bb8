package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/studymood/studymood-backend/internal/domain"
)

// DefaultWindowDays is the trailing window for the daily trend summary.
// The other summaries are unwindowed.
const DefaultWindowDays = 7

const dateLayout = "2006-01-02"

type statAccum struct {
	count int
	total float64
}

// round1 rounds to one decimal, half away from zero. Scores are
// non-negative, so this matches half-up everywhere it is used.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Aggregate computes the three grouped summaries over a user's study logs.
// Calendar dates and hours of day are taken in loc. windowDays <= 0 falls
// back to DefaultWindowDays. The result's Streak is left zero; the caller
// fills it in separately.
func Aggregate(logs []domain.StudyLog, now time.Time, windowDays int, loc *time.Location) Report {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if loc == nil {
		loc = time.UTC
	}
	cutoff := now.Add(-time.Duration(windowDays) * 24 * time.Hour)

	type subjectKey struct {
		subject string
		emotion domain.EmotionName
	}
	type hourKey struct {
		hour    int
		emotion domain.EmotionName
	}
	type dateKey struct {
		date    string
		emotion domain.EmotionName
	}

	subjectAccum := make(map[subjectKey]*statAccum)
	hourAccum := make(map[hourKey]*statAccum)
	dateAccum := make(map[dateKey]*statAccum)

	for _, log := range logs {
		local := log.StudyTime.In(loc)
		inWindow := !log.StudyTime.Before(cutoff) && !log.StudyTime.After(now)

		// A valid log always has at least one reading; an empty slice from
		// storage contributes nothing rather than failing.
		for _, reading := range log.Emotions {
			score := float64(reading.Score)

			sk := subjectKey{subject: log.Subject, emotion: reading.Emotion}
			if a := subjectAccum[sk]; a != nil {
				a.count++
				a.total += score
			} else {
				subjectAccum[sk] = &statAccum{count: 1, total: score}
			}

			hk := hourKey{hour: local.Hour(), emotion: reading.Emotion}
			if a := hourAccum[hk]; a != nil {
				a.count++
				a.total += score
			} else {
				hourAccum[hk] = &statAccum{count: 1, total: score}
			}

			if inWindow {
				dk := dateKey{date: local.Format(dateLayout), emotion: reading.Emotion}
				if a := dateAccum[dk]; a != nil {
					a.count++
					a.total += score
				} else {
					dateAccum[dk] = &statAccum{count: 1, total: score}
				}
			}
		}
	}

	subjectEmotions := make([]SubjectEmotionStat, 0, len(subjectAccum))
	for k, a := range subjectAccum {
		subjectEmotions = append(subjectEmotions, SubjectEmotionStat{
			Subject:    k.subject,
			Emotion:    k.emotion,
			AvgScore:   round1(a.total / float64(a.count)),
			Count:      a.count,
			TotalScore: a.total,
		})
	}
	sort.Slice(subjectEmotions, func(i, j int) bool {
		if subjectEmotions[i].Subject != subjectEmotions[j].Subject {
			return subjectEmotions[i].Subject < subjectEmotions[j].Subject
		}
		return subjectEmotions[i].Emotion < subjectEmotions[j].Emotion
	})

	weeklyTrend := make([]DailyTrendStat, 0, len(dateAccum))
	for k, a := range dateAccum {
		weeklyTrend = append(weeklyTrend, DailyTrendStat{
			Date:     k.date,
			Emotion:  k.emotion,
			AvgScore: round1(a.total / float64(a.count)),
			Count:    a.count,
		})
	}
	sort.Slice(weeklyTrend, func(i, j int) bool {
		if weeklyTrend[i].Date != weeklyTrend[j].Date {
			return weeklyTrend[i].Date < weeklyTrend[j].Date
		}
		return weeklyTrend[i].Emotion < weeklyTrend[j].Emotion
	})

	timeAnalysis := make([]TimeSlotEmotionStat, 0, len(hourAccum))
	for k, a := range hourAccum {
		timeAnalysis = append(timeAnalysis, TimeSlotEmotionStat{
			Hour:     k.hour,
			Emotion:  k.emotion,
			AvgScore: round1(a.total / float64(a.count)),
			Count:    a.count,
		})
	}
	sort.Slice(timeAnalysis, func(i, j int) bool {
		if timeAnalysis[i].Hour != timeAnalysis[j].Hour {
			return timeAnalysis[i].Hour < timeAnalysis[j].Hour
		}
		return timeAnalysis[i].Emotion < timeAnalysis[j].Emotion
	})

	return Report{
		TotalSessions:   len(logs),
		SubjectEmotions: subjectEmotions,
		WeeklyTrend:     weeklyTrend,
		TimeAnalysis:    timeAnalysis,
	}
}
