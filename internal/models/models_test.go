package models

import (
	"testing"
)

func TestEngagementScore(t *testing.T) {
	tests := []struct {
		name                    string
		likes, comments, shares int
		expected                float64
	}{
		{"all zero", 0, 0, 0, 0},
		{"likes only", 10, 0, 0, 10},
		{"comments weighted triple", 0, 4, 0, 12},
		{"shares weighted five", 0, 0, 3, 15},
		{"combined", 10, 2, 1, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EngagementScore(tt.likes, tt.comments, tt.shares); got != tt.expected {
				t.Errorf("EngagementScore(%d, %d, %d) = %v, want %v",
					tt.likes, tt.comments, tt.shares, got, tt.expected)
			}
		})
	}
}

func TestPost_BeforeSave(t *testing.T) {
	p := &Post{Likes: 5, Comments: 1, Shares: 2, Engagement: 999}

	if err := p.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	// Stale score is always replaced by the recomputed one
	if p.Engagement != 18 {
		t.Errorf("engagement = %v, want 18", p.Engagement)
	}
}

func TestValidTone(t *testing.T) {
	for _, tone := range Tones {
		if !ValidTone(tone) {
			t.Errorf("expected %q to be valid", tone)
		}
	}
	for _, tone := range []string{"", "casual", "professional"} {
		if ValidTone(tone) {
			t.Errorf("expected %q to be invalid", tone)
		}
	}
}

func TestValidFeedback(t *testing.T) {
	for _, fb := range []string{FeedbackPositive, FeedbackNegative, FeedbackNeutral} {
		if !ValidFeedback(fb) {
			t.Errorf("expected %q to be valid", fb)
		}
	}
	for _, fb := range []string{"", "liked", "Positive"} {
		if ValidFeedback(fb) {
			t.Errorf("expected %q to be invalid", fb)
		}
	}
}
