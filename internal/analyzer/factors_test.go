package analyzer

import (
	"math"
	"strings"
	"testing"

	"github.com/linkedlens/linkedlens/internal/models"
)

func TestBooleanFeatureImpact(t *testing.T) {
	mk := func(questions bool, engagement float64) models.Post {
		return models.Post{HasQuestions: questions, Engagement: engagement}
	}

	t.Run("both groups present", func(t *testing.T) {
		posts := []models.Post{mk(true, 150), mk(true, 150), mk(false, 100)}
		impact, ok := BooleanFeatureImpact(posts, FeatureQuestions)
		if !ok {
			t.Fatal("expected impact")
		}
		if impact.WithMean != 150 || impact.WithoutMean != 100 {
			t.Errorf("means = (%v, %v), want (150, 100)", impact.WithMean, impact.WithoutMean)
		}
		if math.Abs(impact.ImpactPercent-50) > 1e-9 {
			t.Errorf("impact = %v, want 50", impact.ImpactPercent)
		}
	})

	t.Run("missing group omitted", func(t *testing.T) {
		posts := []models.Post{mk(true, 150), mk(true, 100)}
		if _, ok := BooleanFeatureImpact(posts, FeatureQuestions); ok {
			t.Error("expected no impact when one group is empty")
		}
	})

	t.Run("unknown feature", func(t *testing.T) {
		posts := []models.Post{mk(true, 150), mk(false, 100)}
		if _, ok := BooleanFeatureImpact(posts, "has_emoji"); ok {
			t.Error("expected no impact for unknown feature")
		}
	})
}

func TestEngagementFactors(t *testing.T) {
	posts := []models.Post{
		{HasHashtags: true, HasQuestions: true, Engagement: 120},
		{HasHashtags: false, HasQuestions: true, Engagement: 80},
	}

	factors := EngagementFactors(posts)

	if _, ok := factors[FeatureHashtags]; !ok {
		t.Error("expected hashtags factor")
	}
	// Every post has questions, so that factor must be absent
	if _, ok := factors[FeatureQuestions]; ok {
		t.Error("did not expect questions factor with a single group")
	}
}

func TestBinLength(t *testing.T) {
	tests := []struct {
		length   int
		expected string
		ok       bool
	}{
		{0, "", false},
		{1, "Very Short", true},
		{100, "Very Short", true},
		{101, "Short", true},
		{500, "Medium", true},
		{1000, "Long", true},
		{2000, "Very Long", true},
		{2001, "", false},
	}

	for _, tt := range tests {
		label, ok := binLength(tt.length)
		if ok != tt.ok || label != tt.expected {
			t.Errorf("binLength(%d) = (%q, %v), want (%q, %v)", tt.length, label, ok, tt.expected, tt.ok)
		}
	}
}

func TestContentLengthBins(t *testing.T) {
	posts := []models.Post{
		{ContentLength: 50, Engagement: 200},  // Very Short
		{ContentLength: 300, Engagement: 100}, // Medium
		{ContentLength: 1500, Engagement: 20}, // Very Long
	}

	report, ok := ContentLengthBins(posts)
	if !ok {
		t.Fatal("expected report")
	}
	if report.Best != "Very Short" {
		t.Errorf("best = %q, want Very Short", report.Best)
	}
	if report.Worst != "Very Long" {
		t.Errorf("worst = %q, want Very Long", report.Worst)
	}

	if _, ok := ContentLengthBins(nil); ok {
		t.Error("expected no report for empty input")
	}
}

func TestExtractHashtags(t *testing.T) {
	posts := []models.Post{
		{Content: "Growing fast #Leadership #growth"},
		{Content: "More on #leadership today"},
		{Content: "No tags here, just a # alone"},
	}

	tags := ExtractHashtags(posts)

	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d: %v", len(tags), tags)
	}
	if tags[0].Tag != "#leadership" || tags[0].Count != 2 {
		t.Errorf("top tag = %+v, want #leadership x2", tags[0])
	}
	if tags[1].Tag != "#growth" || tags[1].Count != 1 {
		t.Errorf("second tag = %+v, want #growth x1", tags[1])
	}
}

func TestInsightsSummary(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if summary := InsightsSummary(nil); summary != "" {
			t.Errorf("expected empty summary, got %q", summary)
		}
	})

	t.Run("mentions questions when they help", func(t *testing.T) {
		posts := []models.Post{
			{Theme: "leadership", LengthType: models.LengthShort, HasQuestions: true, Engagement: 200, Time: "9:00"},
			{Theme: "hiring", LengthType: models.LengthLong, HasQuestions: false, Engagement: 50, Time: "9:00"},
		}
		summary := InsightsSummary(posts)
		if summary == "" {
			t.Fatal("expected non-empty summary")
		}
		for _, want := range []string{"leadership", "questions perform better", "short length"} {
			if !strings.Contains(summary, want) {
				t.Errorf("summary %q missing %q", summary, want)
			}
		}
	})
}
