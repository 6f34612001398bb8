package analytics

import (
	"sort"
	"time"

	"github.com/studymood/studymood-backend/internal/domain"
)

// Streak counts consecutive calendar days ending at today (in loc) that each
// contain at least one log. A missing today yields 0; the first gap anywhere
// in the backward walk ends the streak.
func Streak(logs []domain.StudyLog, today time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}

	seen := make(map[string]struct{})
	for _, log := range logs {
		seen[log.StudyTime.In(loc).Format(dateLayout)] = struct{}{}
	}
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	day := today.In(loc)
	streak := 0
	for i := range dates {
		expected := day.AddDate(0, 0, -i).Format(dateLayout)
		if dates[i] != expected {
			break
		}
		streak++
	}
	return streak
}
