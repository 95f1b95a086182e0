package feedback

import (
	"strings"
	"testing"

	"github.com/linkedlens/linkedlens/internal/models"
)

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	if prefs.PreferredTone != models.ToneConversational {
		t.Errorf("tone = %q, want Conversational", prefs.PreferredTone)
	}
	if prefs.OptimalLength != models.LengthMedium {
		t.Errorf("length = %q, want medium", prefs.OptimalLength)
	}
	if !prefs.HashtagPreference {
		t.Error("expected hashtag preference on")
	}
}

func TestUpdatePreferences(t *testing.T) {
	liked := func(tone, content string, hashtags bool) models.GeneratedPost {
		return models.GeneratedPost{
			Tone:            tone,
			Content:         content,
			IncludeHashtags: hashtags,
			Feedback:        models.FeedbackPositive,
		}
	}

	t.Run("no positive feedback leaves input unchanged", func(t *testing.T) {
		prefs := DefaultPreferences()
		posts := []models.GeneratedPost{
			{Tone: models.TonePromotional, Feedback: models.FeedbackNegative},
		}
		if got := UpdatePreferences(prefs, posts); got != prefs {
			t.Errorf("UpdatePreferences() = %+v, want unchanged %+v", got, prefs)
		}
	})

	t.Run("most common liked tone wins", func(t *testing.T) {
		posts := []models.GeneratedPost{
			liked(models.ToneProfessional, "a", true),
			liked(models.ToneProfessional, "b", true),
			liked(models.ToneEducational, "c", true),
			{Tone: models.TonePromotional, Feedback: models.FeedbackNegative},
		}
		prefs := UpdatePreferences(DefaultPreferences(), posts)
		if prefs.PreferredTone != models.ToneProfessional {
			t.Errorf("tone = %q, want Professional", prefs.PreferredTone)
		}
	})

	t.Run("tone tie keeps first-seen", func(t *testing.T) {
		posts := []models.GeneratedPost{
			liked(models.ToneInspirational, "a", true),
			liked(models.ToneEducational, "b", true),
		}
		prefs := UpdatePreferences(DefaultPreferences(), posts)
		if prefs.PreferredTone != models.ToneInspirational {
			t.Errorf("tone = %q, want Inspirational", prefs.PreferredTone)
		}
	})

	t.Run("length class follows liked content length", func(t *testing.T) {
		tests := []struct {
			name     string
			content  string
			expected string
		}{
			{"short", strings.Repeat("x", 100), models.LengthShort},
			{"medium", strings.Repeat("x", 300), models.LengthMedium},
			{"long", strings.Repeat("x", 800), models.LengthLong},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				posts := []models.GeneratedPost{liked(models.ToneProfessional, tt.content, true)}
				prefs := UpdatePreferences(DefaultPreferences(), posts)
				if prefs.OptimalLength != tt.expected {
					t.Errorf("length = %q, want %q", prefs.OptimalLength, tt.expected)
				}
			})
		}
	})

	t.Run("hashtag preference needs a strict majority", func(t *testing.T) {
		posts := []models.GeneratedPost{
			liked(models.ToneProfessional, "a", true),
			liked(models.ToneProfessional, "b", false),
		}
		prefs := UpdatePreferences(DefaultPreferences(), posts)
		if prefs.HashtagPreference {
			t.Error("expected hashtag preference off at exactly half")
		}
	})
}
