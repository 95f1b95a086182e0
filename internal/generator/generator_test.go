package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/linkedlens/linkedlens/internal/feedback"
)

// stubClient returns a fixed response or error and records the prompt
type stubClient struct {
	response string
	err      error
	prompt   string
}

func (s *stubClient) GenerateText(_ context.Context, prompt string, _ int) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestGenerator_GenerateDrafts(t *testing.T) {
	req := DraftRequest{
		Topic:           "remote work",
		Tone:            "Professional",
		MaxLength:       500,
		IncludeHashtags: true,
		NumHashtags:     3,
	}
	prefs := feedback.DefaultPreferences()

	t.Run("successful call", func(t *testing.T) {
		client := &stubClient{response: `{"posts": [{"content": "A", "estimated_engagement": 80}, {"content": "B", "estimated_engagement": 70}, {"content": "C", "estimated_engagement": 60}]}`}
		g := New(client)

		drafts, stage := g.GenerateDrafts(context.Background(), req, prefs)

		if stage != StageStrict {
			t.Errorf("stage = %v, want strict", stage)
		}
		if len(drafts) != 3 {
			t.Errorf("got %d drafts, want 3", len(drafts))
		}
		if !strings.Contains(client.prompt, "remote work") {
			t.Error("prompt missing the topic")
		}
	})

	t.Run("call failure falls back", func(t *testing.T) {
		g := New(&stubClient{err: errors.New("connection refused")})

		drafts, stage := g.GenerateDrafts(context.Background(), req, prefs)

		if stage != StageFallback {
			t.Errorf("stage = %v, want fallback", stage)
		}
		if len(drafts) != 2 {
			t.Fatalf("got %d fallback drafts, want 2", len(drafts))
		}
		for i, d := range drafts {
			if !strings.Contains(d.Content, "remote work") {
				t.Errorf("fallback draft %d does not mention the topic: %q", i, d.Content)
			}
		}
		if drafts[0].EstimatedEngagement != 50 || drafts[1].EstimatedEngagement != 45 {
			t.Errorf("fallback engagement = %d/%d, want 50/45",
				drafts[0].EstimatedEngagement, drafts[1].EstimatedEngagement)
		}
	})

	t.Run("unparseable response falls back", func(t *testing.T) {
		g := New(&stubClient{response: "I'm sorry, I can't produce JSON today."})

		drafts, stage := g.GenerateDrafts(context.Background(), req, prefs)

		if stage != StageFallback {
			t.Errorf("stage = %v, want fallback", stage)
		}
		if len(drafts) != 2 {
			t.Errorf("got %d fallback drafts, want 2", len(drafts))
		}
	})
}

func TestGenerator_GenerateHashtags(t *testing.T) {
	t.Run("successful call", func(t *testing.T) {
		g := New(&stubClient{response: `{"hashtags": ["#AI", "#ML", "#Data"]}`})

		tags, stage := g.GenerateHashtags(context.Background(), "machine learning", 3)

		if stage != StageStrict {
			t.Errorf("stage = %v, want strict", stage)
		}
		if len(tags) != 3 || tags[0] != "#AI" {
			t.Errorf("tags = %v", tags)
		}
	})

	t.Run("call failure falls back", func(t *testing.T) {
		g := New(&stubClient{err: errors.New("timeout")})

		tags, stage := g.GenerateHashtags(context.Background(), "machine learning", 5)

		if stage != StageFallback {
			t.Errorf("stage = %v, want fallback", stage)
		}
		expected := []string{"#machinelearning", "#LinkedIn", "#Professional"}
		if len(tags) != len(expected) {
			t.Fatalf("tags = %v, want %v", tags, expected)
		}
		for i, tag := range tags {
			if tag != expected[i] {
				t.Errorf("tag[%d] = %q, want %q", i, tag, expected[i])
			}
		}
	})

	t.Run("fallback respects the limit", func(t *testing.T) {
		g := New(&stubClient{err: errors.New("timeout")})

		tags, _ := g.GenerateHashtags(context.Background(), "sales", 2)

		if len(tags) != 2 {
			t.Errorf("got %d tags, want 2", len(tags))
		}
	})
}

func TestBuildDraftPrompt(t *testing.T) {
	req := DraftRequest{
		Topic:           "engineering culture",
		Tone:            "Inspirational",
		IncludeCTA:      true,
		MaxLength:       700,
		IncludeHashtags: true,
		NumHashtags:     4,
		Insights:        "Top performing themes: leadership.",
	}
	prefs := feedback.Preferences{
		PreferredTone:     "Professional",
		OptimalLength:     "short",
		HashtagPreference: false,
	}

	prompt := BuildDraftPrompt(req, prefs)

	for _, want := range []string{
		"engineering culture",
		"Tone: Inspirational",
		"Maximum length: 700 characters",
		"Include a call-to-action",
		"Include 4 relevant hashtags",
		"Top performing themes: leadership.",
		"tone Professional, short length, hashtags unwelcome",
		`"posts"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildHashtagPrompt(t *testing.T) {
	prompt := BuildHashtagPrompt("fintech", 5)

	if !strings.Contains(prompt, "5 relevant, professional LinkedIn hashtags") {
		t.Error("prompt missing the hashtag count")
	}
	if !strings.Contains(prompt, "fintech") {
		t.Error("prompt missing the topic")
	}
}
