package generator

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Stage reports which stage of the parse pipeline produced a result
type Stage int

const (
	// StageStrict means the raw response parsed as-is
	StageStrict Stage = iota
	// StageExtracted means a structured block was located inside surrounding text
	StageExtracted
	// StageScavenged means no structured block parsed and hashtag words were
	// picked straight out of the raw text
	StageScavenged
	// StageFallback means parsing failed entirely and canned content was used
	StageFallback
)

// String returns the stage name
func (s Stage) String() string {
	switch s {
	case StageStrict:
		return "strict"
	case StageExtracted:
		return "extracted"
	case StageScavenged:
		return "scavenged"
	case StageFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Draft is one generated post candidate
type Draft struct {
	Content             string `json:"content"`
	EstimatedEngagement int    `json:"estimated_engagement"`
}

type draftsPayload struct {
	Posts []Draft `json:"posts"`
}

type hashtagsPayload struct {
	Hashtags []string `json:"hashtags"`
}

var (
	jsonBlockRe = regexp.MustCompile(`(?s)(\{.*\})`)
	hashtagRe   = regexp.MustCompile(`#\w+`)
)

// parseDrafts runs the strict-then-extracted parse pipeline over a raw
// model response. It never invents content; a total failure is an error
// the caller converts into the fallback stage.
func parseDrafts(text string) ([]Draft, Stage, error) {
	var payload draftsPayload
	if err := json.Unmarshal([]byte(text), &payload); err == nil && len(payload.Posts) > 0 {
		return payload.Posts, StageStrict, nil
	}

	// The model may wrap the JSON in prose or a code fence; find the
	// embedded object and retry.
	if match := jsonBlockRe.FindString(text); match != "" {
		if err := json.Unmarshal([]byte(match), &payload); err == nil && len(payload.Posts) > 0 {
			return payload.Posts, StageExtracted, nil
		}
	}

	return nil, StageFallback, fmt.Errorf("could not parse posts from response")
}

// parseHashtags runs the same pipeline for hashtag responses, with a last
// resort of picking #-words straight out of the text.
func parseHashtags(text string, limit int) ([]string, Stage, error) {
	var payload hashtagsPayload
	if err := json.Unmarshal([]byte(text), &payload); err == nil && len(payload.Hashtags) > 0 {
		return capTags(payload.Hashtags, limit), StageStrict, nil
	}

	if match := jsonBlockRe.FindString(text); match != "" {
		if err := json.Unmarshal([]byte(match), &payload); err == nil && len(payload.Hashtags) > 0 {
			return capTags(payload.Hashtags, limit), StageExtracted, nil
		}
	}

	if tags := hashtagRe.FindAllString(text, -1); len(tags) > 0 {
		return capTags(tags, limit), StageScavenged, nil
	}

	return nil, StageFallback, fmt.Errorf("could not parse hashtags from response")
}

func capTags(tags []string, limit int) []string {
	if limit > 0 && len(tags) > limit {
		return tags[:limit]
	}
	return tags
}
