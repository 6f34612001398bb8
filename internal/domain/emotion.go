package domain

import (
	"fmt"

	apperrors "github.com/studymood/studymood-backend/internal/pkg/errors"
)

// EmotionName is one of the ten emotions a study session can be tagged with.
// The set is closed: ingestion rejects anything else before it reaches
// storage or analytics.
type EmotionName string

const (
	EmotionHappy      EmotionName = "Happy"
	EmotionTired      EmotionName = "Tired"
	EmotionStressed   EmotionName = "Stressed"
	EmotionExcited    EmotionName = "Excited"
	EmotionAnxious    EmotionName = "Anxious"
	EmotionFocused    EmotionName = "Focused"
	EmotionBored      EmotionName = "Bored"
	EmotionConfident  EmotionName = "Confident"
	EmotionFrustrated EmotionName = "Frustrated"
	EmotionCalm       EmotionName = "Calm"
)

// Emotions lists the taxonomy in its canonical order.
var Emotions = []EmotionName{
	EmotionHappy,
	EmotionTired,
	EmotionStressed,
	EmotionExcited,
	EmotionAnxious,
	EmotionFocused,
	EmotionBored,
	EmotionConfident,
	EmotionFrustrated,
	EmotionCalm,
}

var emotionSet = func() map[EmotionName]struct{} {
	s := make(map[EmotionName]struct{}, len(Emotions))
	for _, e := range Emotions {
		s[e] = struct{}{}
	}
	return s
}()

func (e EmotionName) Valid() bool {
	_, ok := emotionSet[e]
	return ok
}

// Score bounds for a single emotion reading, inclusive.
const (
	MinEmotionScore = 0
	MaxEmotionScore = 10
)

// EmotionReading pairs an emotion with its intensity for one session.
type EmotionReading struct {
	Emotion EmotionName `json:"emotion"`
	Score   int         `json:"score"`
}

func (r EmotionReading) Validate() error {
	if !r.Emotion.Valid() {
		return fmt.Errorf("%w: unknown emotion %q", apperrors.ErrInvalidEmotionReading, string(r.Emotion))
	}
	if r.Score < MinEmotionScore || r.Score > MaxEmotionScore {
		return fmt.Errorf("%w: score %d for %s out of range [%d,%d]",
			apperrors.ErrInvalidEmotionReading, r.Score, r.Emotion, MinEmotionScore, MaxEmotionScore)
	}
	return nil
}
