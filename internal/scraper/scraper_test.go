package scraper

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/linkedlens/linkedlens/internal/models"
	"github.com/linkedlens/linkedlens/pkg/config"
)

func TestUsernameFromURL(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://linkedin.com/in/jane-doe", "jane-doe"},
		{"https://www.linkedin.com/in/jane-doe/", "jane-doe"},
		{"jane-doe", "jane-doe"},
		{"", ""},
		{"https://linkedin.com/in/", "in"},
	}

	for _, tt := range tests {
		if got := UsernameFromURL(tt.url); got != tt.expected {
			t.Errorf("UsernameFromURL(%q) = %q, want %q", tt.url, got, tt.expected)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		username string
		expected string
	}{
		{"jane-doe", "Jane Doe"},
		{"bob", "Bob"},
		{"mary-jane-watson", "Mary Jane Watson"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.username); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.username, got, tt.expected)
		}
	}
}

func TestSimulated_ScrapeProfile(t *testing.T) {
	cfg := config.ScraperConfig{MinPosts: 15, MaxPosts: 30}
	s := NewSimulated(cfg)

	profile, err := s.ScrapeProfile(context.Background(), "https://linkedin.com/in/jane-doe")
	if err != nil {
		t.Fatalf("ScrapeProfile: %v", err)
	}

	if profile.Username != "jane-doe" || profile.Name != "Jane Doe" {
		t.Errorf("identity = %q / %q", profile.Username, profile.Name)
	}
	if profile.Connections < 500 || profile.Connections > 5000 {
		t.Errorf("connections = %d, want 500..5000", profile.Connections)
	}
	if n := len(profile.Posts); n < cfg.MinPosts || n > cfg.MaxPosts {
		t.Errorf("post count = %d, want %d..%d", n, cfg.MinPosts, cfg.MaxPosts)
	}

	var total float64
	for i, p := range profile.Posts {
		if p.Likes < 10 || p.Likes > 500 {
			t.Errorf("post %d likes = %d, want 10..500", i, p.Likes)
		}
		if p.Comments < 0 || p.Comments > 50 {
			t.Errorf("post %d comments = %d, want 0..50", i, p.Comments)
		}
		if p.Shares < 0 || p.Shares > 20 {
			t.Errorf("post %d shares = %d, want 0..20", i, p.Shares)
		}
		if want := models.EngagementScore(p.Likes, p.Comments, p.Shares); p.Engagement != want {
			t.Errorf("post %d engagement = %v, want %v", i, p.Engagement, want)
		}
		if p.ContentLength != len(p.Content) {
			t.Errorf("post %d content length = %d, actual %d", i, p.ContentLength, len(p.Content))
		}
		// Feature flags must match the content they were derived from
		if p.HasHashtags != strings.Contains(p.Content, "#") {
			t.Errorf("post %d hashtag flag inconsistent with content", i)
		}
		if p.HasQuestions != strings.Contains(p.Content, "?") {
			t.Errorf("post %d question flag inconsistent with content", i)
		}
		hour, err := strconv.Atoi(strings.SplitN(p.Time, ":", 2)[0])
		if err != nil || hour < 7 || hour > 19 {
			t.Errorf("post %d time = %q, want hour 7..19", i, p.Time)
		}
		total += p.Engagement
	}

	wantAvg := total / float64(len(profile.Posts))
	if profile.AvgEngagement != wantAvg {
		t.Errorf("avg engagement = %v, want %v", profile.AvgEngagement, wantAvg)
	}
}

func TestSimulated_ScrapeProfile_BadURL(t *testing.T) {
	s := NewSimulated(config.ScraperConfig{MinPosts: 1, MaxPosts: 2})

	if _, err := s.ScrapeProfile(context.Background(), ""); err == nil {
		t.Error("expected error for an empty url")
	}
}
