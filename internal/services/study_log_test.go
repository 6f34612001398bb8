package services

import (
	"errors"
	"strings"
	"testing"

	types "github.com/studymood/studymood-backend/internal/domain"
	apperrors "github.com/studymood/studymood-backend/internal/pkg/errors"
)

func TestValidateStudyLogInput(t *testing.T) {
	duration := func(m int) *int { return &m }

	tests := []struct {
		name    string
		input   CreateStudyLogInput
		wantErr error
	}{
		{
			name: "valid",
			input: CreateStudyLogInput{
				Subject:  "Math",
				Emotions: []types.EmotionReading{{Emotion: types.EmotionFocused, Score: 7}},
			},
		},
		{
			name: "blank subject",
			input: CreateStudyLogInput{
				Subject:  "   ",
				Emotions: []types.EmotionReading{{Emotion: types.EmotionHappy, Score: 5}},
			},
			wantErr: apperrors.ErrInvalidArgument,
		},
		{
			name:    "no emotions",
			input:   CreateStudyLogInput{Subject: "Math"},
			wantErr: apperrors.ErrInvalidArgument,
		},
		{
			name: "unknown emotion",
			input: CreateStudyLogInput{
				Subject:  "Math",
				Emotions: []types.EmotionReading{{Emotion: "Elated", Score: 5}},
			},
			wantErr: apperrors.ErrInvalidEmotionReading,
		},
		{
			name: "score above range",
			input: CreateStudyLogInput{
				Subject:  "Math",
				Emotions: []types.EmotionReading{{Emotion: types.EmotionHappy, Score: 11}},
			},
			wantErr: apperrors.ErrInvalidEmotionReading,
		},
		{
			name: "score below range",
			input: CreateStudyLogInput{
				Subject:  "Math",
				Emotions: []types.EmotionReading{{Emotion: types.EmotionHappy, Score: -1}},
			},
			wantErr: apperrors.ErrInvalidEmotionReading,
		},
		{
			name: "zero duration",
			input: CreateStudyLogInput{
				Subject:         "Math",
				Emotions:        []types.EmotionReading{{Emotion: types.EmotionHappy, Score: 5}},
				DurationMinutes: duration(0),
			},
			wantErr: apperrors.ErrInvalidArgument,
		},
		{
			name: "notes too long",
			input: CreateStudyLogInput{
				Subject:  "Math",
				Emotions: []types.EmotionReading{{Emotion: types.EmotionHappy, Score: 5}},
				Notes:    strings.Repeat("a", types.MaxNotesLength+1),
			},
			wantErr: apperrors.ErrInvalidArgument,
		},
		{
			name: "notes at limit",
			input: CreateStudyLogInput{
				Subject:  "Math",
				Emotions: []types.EmotionReading{{Emotion: types.EmotionHappy, Score: 5}},
				Notes:    strings.Repeat("a", types.MaxNotesLength),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateStudyLogInput(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("validateStudyLogInput() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("validateStudyLogInput() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateStudyLogInputNormalizes(t *testing.T) {
	cleaned, err := validateStudyLogInput(CreateStudyLogInput{
		Subject:  "  Physics  ",
		Emotions: []types.EmotionReading{{Emotion: types.EmotionCalm, Score: 6}},
		Notes:    "  went well  ",
		Tags:     []string{" exam ", "", "   ", "revision"},
	})
	if err != nil {
		t.Fatalf("validateStudyLogInput() error = %v", err)
	}
	if cleaned.Subject != "Physics" {
		t.Errorf("subject = %q, want %q", cleaned.Subject, "Physics")
	}
	if cleaned.Notes != "went well" {
		t.Errorf("notes = %q, want %q", cleaned.Notes, "went well")
	}
	if len(cleaned.Tags) != 2 || cleaned.Tags[0] != "exam" || cleaned.Tags[1] != "revision" {
		t.Errorf("tags = %v, want [exam revision]", cleaned.Tags)
	}
}
