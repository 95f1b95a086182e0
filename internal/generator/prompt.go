package generator

import (
	"fmt"
	"strings"

	"github.com/linkedlens/linkedlens/internal/feedback"
)

const systemInstruction = "You are a LinkedIn content expert who creates engaging posts that drive high engagement."

// DraftRequest captures the user's options for a draft generation call
type DraftRequest struct {
	Topic           string `json:"topic"`
	Tone            string `json:"tone"`
	IncludeCTA      bool   `json:"include_cta"`
	MaxLength       int    `json:"max_length"`
	IncludeHashtags bool   `json:"include_hashtags"`
	NumHashtags     int    `json:"num_hashtags"`
	Insights        string `json:"-"`
}

// BuildDraftPrompt assembles the generation instruction from the request,
// the analyzer's insights summary, and the user's learned preferences.
func BuildDraftPrompt(req DraftRequest, prefs feedback.Preferences) string {
	ctaLine := "No call-to-action needed"
	if req.IncludeCTA {
		ctaLine = "Include a call-to-action"
	}
	hashtagLine := "No hashtags needed"
	if req.IncludeHashtags {
		hashtagLine = fmt.Sprintf("Include %d relevant hashtags", req.NumHashtags)
	}

	var b strings.Builder
	b.WriteString(systemInstruction)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Create 3 variations of a LinkedIn post about %s.\n\n", req.Topic)
	b.WriteString("Guidelines:\n")
	fmt.Fprintf(&b, "- Tone: %s\n", req.Tone)
	fmt.Fprintf(&b, "- Maximum length: %d characters\n", req.MaxLength)
	fmt.Fprintf(&b, "- %s\n", ctaLine)
	fmt.Fprintf(&b, "- %s\n\n", hashtagLine)

	if req.Insights != "" {
		fmt.Fprintf(&b, "Insights from performance data:\n%s\n\n", req.Insights)
	}
	fmt.Fprintf(&b, "Reader preferences: tone %s, %s length, hashtags %s.\n\n",
		prefs.PreferredTone, prefs.OptimalLength, preferenceWord(prefs.HashtagPreference))

	b.WriteString("Make sure the posts are professional, engaging, and optimized for LinkedIn's algorithm.\n")
	b.WriteString("Each variation should be different in structure and approach while maintaining the core message.\n\n")
	b.WriteString("Return the posts in this JSON format:\n")
	b.WriteString(`{"posts": [{"content": "Post content here", "estimated_engagement": 0-100}, ...more posts]}`)
	b.WriteString("\n\nOnly return the JSON, nothing else. Make sure the JSON is properly formatted and valid.")

	return b.String()
}

// BuildHashtagPrompt assembles the hashtag generation instruction
func BuildHashtagPrompt(topic string, numHashtags int) string {
	var b strings.Builder
	b.WriteString("You are a social media hashtag expert.\n\n")
	fmt.Fprintf(&b, "Generate %d relevant, professional LinkedIn hashtags for content about %s.\n", numHashtags, topic)
	b.WriteString("Return only the hashtags (with # symbol) as a JSON array with a key called 'hashtags', without any explanation.\n\n")
	b.WriteString(`Example: {"hashtags": ["#Leadership", "#Innovation", "#TechTrends"]}`)
	b.WriteString("\n\nOnly return the JSON, nothing else. Make sure the JSON is properly formatted and valid.")
	return b.String()
}

func preferenceWord(preferred bool) string {
	if preferred {
		return "welcome"
	}
	return "unwelcome"
}
