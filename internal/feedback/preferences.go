package feedback

import (
	"github.com/linkedlens/linkedlens/internal/models"
)

// Preferences captures what the user tends to approve of. It is a plain
// value threaded through prompt building, not ambient process state.
type Preferences struct {
	PreferredTone     string `json:"preferred_tone"`
	OptimalLength     string `json:"optimal_length"`
	HashtagPreference bool   `json:"hashtag_preference"`
}

// DefaultPreferences returns the starting preferences used before any
// positive feedback has been collected
func DefaultPreferences() Preferences {
	return Preferences{
		PreferredTone:     models.ToneConversational,
		OptimalLength:     models.LengthMedium,
		HashtagPreference: true,
	}
}

// UpdatePreferences derives fresh preferences from the positive-feedback
// subset of the snapshot. With no positive feedback the input preferences
// are returned unchanged.
func UpdatePreferences(prefs Preferences, posts []models.GeneratedPost) Preferences {
	var positive []models.GeneratedPost
	for _, p := range posts {
		if p.Feedback == models.FeedbackPositive {
			positive = append(positive, p)
		}
	}
	if len(positive) == 0 {
		return prefs
	}

	// Most common tone among liked drafts; ties keep the tone seen first
	toneCounts := make(map[string]int)
	var toneOrder []string
	for _, p := range positive {
		if _, seen := toneCounts[p.Tone]; !seen {
			toneOrder = append(toneOrder, p.Tone)
		}
		toneCounts[p.Tone]++
	}
	bestTone := toneOrder[0]
	for _, tone := range toneOrder[1:] {
		if toneCounts[tone] > toneCounts[bestTone] {
			bestTone = tone
		}
	}
	prefs.PreferredTone = bestTone

	// Length class from the mean content length of liked drafts
	var totalLength int
	for _, p := range positive {
		totalLength += len(p.Content)
	}
	avgLength := float64(totalLength) / float64(len(positive))
	switch {
	case avgLength < 200:
		prefs.OptimalLength = models.LengthShort
	case avgLength < 500:
		prefs.OptimalLength = models.LengthMedium
	default:
		prefs.OptimalLength = models.LengthLong
	}

	// Hashtag preference by majority of liked drafts
	withHashtags := 0
	for _, p := range positive {
		if p.IncludeHashtags {
			withHashtags++
		}
	}
	prefs.HashtagPreference = float64(withHashtags)/float64(len(positive)) > 0.5

	return prefs
}
