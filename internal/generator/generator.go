// Package generator drafts LinkedIn posts through an external
// text-generation service. Drafting never hard-fails: any call or parse
// failure degrades to canned fallback content so the UI always has
// something to show.
package generator

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/linkedlens/linkedlens/internal/feedback"
	"github.com/linkedlens/linkedlens/pkg/logging"
	"github.com/linkedlens/linkedlens/pkg/telemetry"
)

// Output token caps per operation
const (
	draftMaxTokens   = 1500
	hashtagMaxTokens = 200
)

// Generator wraps the text client with prompt building, response parsing,
// and fallback handling
type Generator struct {
	client TextClient
	logger *zap.Logger
}

// New creates a generator over the given text client
func New(client TextClient) *Generator {
	return &Generator{
		client: client,
		logger: logging.WithComponent("generator"),
	}
}

// GenerateDrafts produces post variations for the request. On success the
// result has exactly three drafts; when the external call or all parse
// stages fail, two canned drafts built from the topic are returned and the
// stage is StageFallback.
func (g *Generator) GenerateDrafts(ctx context.Context, req DraftRequest, prefs feedback.Preferences) ([]Draft, Stage) {
	ctx, span := telemetry.StartSpan(ctx, "generator.drafts")
	defer span.End()

	prompt := BuildDraftPrompt(req, prefs)

	text, err := g.client.GenerateText(ctx, prompt, draftMaxTokens)
	if err != nil {
		g.logger.Warn("Draft generation call failed, using fallback",
			zap.String("topic", req.Topic), zap.Error(err))
		return fallbackDrafts(req.Topic), StageFallback
	}

	drafts, stage, err := parseDrafts(text)
	if err != nil {
		g.logger.Warn("Draft response unparseable, using fallback",
			zap.String("topic", req.Topic), zap.Error(err))
		return fallbackDrafts(req.Topic), StageFallback
	}

	return drafts, stage
}

// GenerateHashtags produces hashtags for a topic, with the same
// call/parse/fallback behavior as drafts.
func (g *Generator) GenerateHashtags(ctx context.Context, topic string, numHashtags int) ([]string, Stage) {
	ctx, span := telemetry.StartSpan(ctx, "generator.hashtags")
	defer span.End()

	prompt := BuildHashtagPrompt(topic, numHashtags)

	text, err := g.client.GenerateText(ctx, prompt, hashtagMaxTokens)
	if err != nil {
		g.logger.Warn("Hashtag generation call failed, using fallback",
			zap.String("topic", topic), zap.Error(err))
		return fallbackHashtags(topic, numHashtags), StageFallback
	}

	tags, stage, err := parseHashtags(text, numHashtags)
	if err != nil {
		g.logger.Warn("Hashtag response unparseable, using fallback",
			zap.String("topic", topic), zap.Error(err))
		return fallbackHashtags(topic, numHashtags), StageFallback
	}

	return tags, stage
}

func fallbackDrafts(topic string) []Draft {
	return []Draft{
		{
			Content:             fmt.Sprintf("Here's my thoughts on %s. What do you think? #LinkedIn #Professional", topic),
			EstimatedEngagement: 50,
		},
		{
			Content:             fmt.Sprintf("I've been thinking about %s lately and wanted to share my perspective. Would love to hear your thoughts! #Career #Insights", topic),
			EstimatedEngagement: 45,
		},
	}
}

func fallbackHashtags(topic string, numHashtags int) []string {
	tags := []string{
		"#" + strings.ReplaceAll(topic, " ", ""),
		"#LinkedIn",
		"#Professional",
	}
	return capTags(tags, numHashtags)
}
