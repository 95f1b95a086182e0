// Package analyzer computes descriptive statistics over scraped posts.
// All functions are pure: they take a snapshot of posts and never touch
// storage. Empty or partially malformed input degrades to empty results
// or the insufficient-data sentinel rather than an error.
package analyzer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/linkedlens/linkedlens/internal/models"
)

// InsufficientData is returned when no parseable signal exists in the input
const InsufficientData = "insufficient data"

// Significance thresholds. Themes use the wider band; length-class and
// hashtag comparisons use the narrower one. Both are kept distinct on
// purpose: the bands mean different things to the report reader.
const (
	themeHighFactor = 1.2
	themeLowFactor  = 0.8
	minorHighFactor = 1.1
	minorLowFactor  = 0.9
)

// TypeEngagement pairs a post type with its mean engagement
type TypeEngagement struct {
	Type string  `json:"type"`
	Mean float64 `json:"mean"`
}

// AverageEngagementByType returns mean engagement per post type,
// sorted descending by mean. Empty input yields an empty slice.
func AverageEngagementByType(posts []models.Post) []TypeEngagement {
	means, order := groupMeans(posts, func(p models.Post) (string, bool) {
		return p.Type, true
	})

	result := make([]TypeEngagement, 0, len(order))
	for _, typ := range order {
		result = append(result, TypeEngagement{Type: typ, Mean: means[typ]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Mean > result[j].Mean
	})
	return result
}

// AverageEngagementByHour returns mean engagement per posting hour (0-23).
// The hour is the leading integer of the time field before the colon;
// records that do not parse are excluded rather than failing the whole
// computation.
func AverageEngagementByHour(posts []models.Post) map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, p := range posts {
		hour, ok := parseHour(p.Time)
		if !ok {
			continue
		}
		sums[hour] += p.Engagement
		counts[hour]++
	}

	means := make(map[int]float64, len(sums))
	for hour, sum := range sums {
		means[hour] = sum / float64(counts[hour])
	}
	return means
}

// OptimalHour returns the hour with the highest mean engagement as a
// 12-hour clock label. Ties break toward the lowest hour. When no record
// has a parseable time the insufficient-data sentinel is returned.
func OptimalHour(posts []models.Post) string {
	means := AverageEngagementByHour(posts)
	if len(means) == 0 {
		return InsufficientData
	}

	hours := make([]int, 0, len(means))
	for hour := range means {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	best := hours[0]
	for _, hour := range hours[1:] {
		if means[hour] > means[best] {
			best = hour
		}
	}
	return formatHour(best)
}

// ThemeStats describes one theme's engagement performance
type ThemeStats struct {
	Mean        float64 `json:"mean"`
	Count       int     `json:"count"`
	Observation string  `json:"observation"`
}

// ThemeReport returns per-theme mean engagement, post count, and a
// qualitative observation relative to the overall mean. A theme mean
// exactly at a threshold falls on the non-extreme side.
func ThemeReport(posts []models.Post) map[string]ThemeStats {
	if len(posts) == 0 {
		return map[string]ThemeStats{}
	}

	overall := meanEngagement(posts)
	means, order := groupMeans(posts, func(p models.Post) (string, bool) {
		return p.Theme, true
	})
	counts := make(map[string]int)
	for _, p := range posts {
		counts[p.Theme]++
	}

	report := make(map[string]ThemeStats, len(order))
	for _, theme := range order {
		mean := means[theme]
		var observation string
		switch {
		case mean > overall*themeHighFactor:
			observation = fmt.Sprintf("High engagement (%.1f). Consider creating more content on this theme.", mean)
		case mean < overall*themeLowFactor:
			observation = fmt.Sprintf("Low engagement (%.1f). This theme may not resonate with your audience.", mean)
		default:
			observation = fmt.Sprintf("Average engagement (%.1f). Consistent performer.", mean)
		}
		report[theme] = ThemeStats{Mean: mean, Count: counts[theme], Observation: observation}
	}
	return report
}

// LengthClassStats describes one length class's engagement performance
type LengthClassStats struct {
	Mean        float64 `json:"mean"`
	Observation string  `json:"observation"`
}

// LengthClassReport returns mean engagement per content length class
// (short/medium/long) with observations against the overall mean,
// using the narrower significance band than the theme report.
func LengthClassReport(posts []models.Post) map[string]LengthClassStats {
	if len(posts) == 0 {
		return map[string]LengthClassStats{}
	}

	overall := meanEngagement(posts)
	means, order := groupMeans(posts, func(p models.Post) (string, bool) {
		return p.LengthType, p.LengthType != ""
	})

	report := make(map[string]LengthClassStats, len(order))
	for _, class := range order {
		mean := means[class]
		title := titleCase(class)
		var observation string
		switch {
		case mean > overall*minorHighFactor:
			observation = fmt.Sprintf("%s posts perform well (%.1f)", title, mean)
		case mean < overall*minorLowFactor:
			observation = fmt.Sprintf("%s posts underperform (%.1f)", title, mean)
		default:
			observation = fmt.Sprintf("%s posts have average performance (%.1f)", title, mean)
		}
		report[class] = LengthClassStats{Mean: mean, Observation: observation}
	}
	return report
}

// HashtagComparison contrasts posts with and without hashtags
type HashtagComparison struct {
	WithMean    float64 `json:"with_hashtags"`
	WithoutMean float64 `json:"without_hashtags"`
	Observation string  `json:"observation"`
}

// CompareHashtagUsage contrasts mean engagement of posts with hashtags
// against those without. Both groups must be present; otherwise ok is false.
func CompareHashtagUsage(posts []models.Post) (HashtagComparison, bool) {
	withMean, withoutMean, ok := splitMeans(posts, func(p models.Post) bool { return p.HasHashtags })
	if !ok {
		return HashtagComparison{}, false
	}

	var observation string
	switch {
	case withMean > withoutMean*minorHighFactor:
		observation = fmt.Sprintf("Posts with hashtags perform better (%.1f vs %.1f)", withMean, withoutMean)
	case withoutMean > withMean*minorHighFactor:
		observation = fmt.Sprintf("Posts without hashtags perform better (%.1f vs %.1f)", withoutMean, withMean)
	default:
		observation = fmt.Sprintf("Hashtags don't significantly impact engagement (%.1f vs %.1f)", withMean, withoutMean)
	}
	return HashtagComparison{WithMean: withMean, WithoutMean: withoutMean, Observation: observation}, true
}

// meanEngagement computes the overall mean engagement across all posts
func meanEngagement(posts []models.Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	var sum float64
	for _, p := range posts {
		sum += p.Engagement
	}
	return sum / float64(len(posts))
}

// groupMeans computes mean engagement per group key, preserving first-seen
// key order. Records for which key() reports false are excluded.
func groupMeans(posts []models.Post, key func(models.Post) (string, bool)) (map[string]float64, []string) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, p := range posts {
		k, ok := key(p)
		if !ok {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		sums[k] += p.Engagement
		counts[k]++
	}

	means := make(map[string]float64, len(order))
	for _, k := range order {
		means[k] = sums[k] / float64(counts[k])
	}
	return means, order
}

// splitMeans computes mean engagement for posts matching and not matching
// the predicate. ok is false when either group is empty.
func splitMeans(posts []models.Post, pred func(models.Post) bool) (withMean, withoutMean float64, ok bool) {
	var withSum, withoutSum float64
	var withCount, withoutCount int
	for _, p := range posts {
		if pred(p) {
			withSum += p.Engagement
			withCount++
		} else {
			withoutSum += p.Engagement
			withoutCount++
		}
	}
	if withCount == 0 || withoutCount == 0 {
		return 0, 0, false
	}
	return withSum / float64(withCount), withoutSum / float64(withoutCount), true
}

// parseHour extracts the leading hour from a clock string like "14:30"
func parseHour(clock string) (int, bool) {
	idx := strings.Index(clock, ":")
	if idx <= 0 {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(clock[:idx]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// titleCase upper-cases the first letter of a label
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatHour converts a 0-23 hour to a 12-hour clock label
func formatHour(hour int) string {
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}
