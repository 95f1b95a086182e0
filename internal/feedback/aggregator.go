// Package feedback aggregates user verdicts on generated posts.
// All functions are pure and recompute from a snapshot on every call;
// data volumes are small enough that incremental state is not worth it.
package feedback

import (
	"sort"

	"github.com/linkedlens/linkedlens/internal/models"
)

// ToneEffectiveness pairs a tone with its positive rate, preserving the
// order tones were first seen in the data
type ToneEffectiveness struct {
	Tone         string  `json:"tone"`
	PositiveRate float64 `json:"positive_rate"`
}

// DailyRate is one point of the feedback trend series
type DailyRate struct {
	Date         string  `json:"date"`
	PositiveRate float64 `json:"positive_rate"`
}

// Stats bundles all aggregator outputs for the dashboard
type Stats struct {
	TotalPosts         int                 `json:"total_posts"`
	PositiveCount      int                 `json:"positive_feedback"`
	PositiveRate       float64             `json:"positive_percentage"`
	ToneEffectiveness  []ToneEffectiveness `json:"tone_effectiveness"`
	PreferredTone      string              `json:"preferred_tone,omitempty"`
	Trend              []DailyRate         `json:"feedback_trend"`
	TopicEffectiveness map[string]float64  `json:"topic_effectiveness"`
}

// PositiveRate returns the percentage of posts with positive feedback.
// An empty snapshot yields 0, never NaN.
func PositiveRate(posts []models.GeneratedPost) float64 {
	if len(posts) == 0 {
		return 0
	}
	positive := 0
	for _, p := range posts {
		if p.Feedback == models.FeedbackPositive {
			positive++
		}
	}
	return float64(positive) / float64(len(posts)) * 100
}

// ComputeToneEffectiveness returns the positive rate per tone present in
// the data, in first-seen order.
func ComputeToneEffectiveness(posts []models.GeneratedPost) []ToneEffectiveness {
	positives := make(map[string]int)
	totals := make(map[string]int)
	var order []string

	for _, p := range posts {
		if _, seen := totals[p.Tone]; !seen {
			order = append(order, p.Tone)
		}
		totals[p.Tone]++
		if p.Feedback == models.FeedbackPositive {
			positives[p.Tone]++
		}
	}

	result := make([]ToneEffectiveness, 0, len(order))
	for _, tone := range order {
		result = append(result, ToneEffectiveness{
			Tone:         tone,
			PositiveRate: float64(positives[tone]) / float64(totals[tone]) * 100,
		})
	}
	return result
}

// PreferredTone returns the tone with the highest positive rate. Ties
// break toward the tone seen first. ok is false for an empty input.
func PreferredTone(effectiveness []ToneEffectiveness) (string, bool) {
	if len(effectiveness) == 0 {
		return "", false
	}
	best := effectiveness[0]
	for _, e := range effectiveness[1:] {
		if e.PositiveRate > best.PositiveRate {
			best = e
		}
	}
	return best.Tone, true
}

// DailyTrend returns the positive rate per calendar day of generation,
// ascending by date.
func DailyTrend(posts []models.GeneratedPost) []DailyRate {
	positives := make(map[string]int)
	totals := make(map[string]int)

	for _, p := range posts {
		date := p.GenerationTime.Format("2006-01-02")
		totals[date]++
		if p.Feedback == models.FeedbackPositive {
			positives[date]++
		}
	}

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	trend := make([]DailyRate, 0, len(dates))
	for _, date := range dates {
		trend = append(trend, DailyRate{
			Date:         date,
			PositiveRate: float64(positives[date]) / float64(totals[date]) * 100,
		})
	}
	return trend
}

// TopicEffectiveness returns the positive rate per distinct topic
func TopicEffectiveness(posts []models.GeneratedPost) map[string]float64 {
	positives := make(map[string]int)
	totals := make(map[string]int)

	for _, p := range posts {
		totals[p.Topic]++
		if p.Feedback == models.FeedbackPositive {
			positives[p.Topic]++
		}
	}

	result := make(map[string]float64, len(totals))
	for topic, total := range totals {
		result[topic] = float64(positives[topic]) / float64(total) * 100
	}
	return result
}

// ComputeStats assembles the full dashboard payload from a snapshot
func ComputeStats(posts []models.GeneratedPost) Stats {
	positive := 0
	for _, p := range posts {
		if p.Feedback == models.FeedbackPositive {
			positive++
		}
	}

	effectiveness := ComputeToneEffectiveness(posts)
	preferred, _ := PreferredTone(effectiveness)

	return Stats{
		TotalPosts:         len(posts),
		PositiveCount:      positive,
		PositiveRate:       PositiveRate(posts),
		ToneEffectiveness:  effectiveness,
		PreferredTone:      preferred,
		Trend:              DailyTrend(posts),
		TopicEffectiveness: TopicEffectiveness(posts),
	}
}
