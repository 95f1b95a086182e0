package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/linkedlens/linkedlens/internal/models"
)

// Boolean content-feature names
const (
	FeatureHashtags  = "has_hashtags"
	FeatureLinks     = "has_links"
	FeatureQuestions = "has_questions"
	FeatureMentions  = "has_mentions"
)

var booleanFeatures = map[string]func(models.Post) bool{
	FeatureHashtags:  func(p models.Post) bool { return p.HasHashtags },
	FeatureLinks:     func(p models.Post) bool { return p.HasLinks },
	FeatureQuestions: func(p models.Post) bool { return p.HasQuestions },
	FeatureMentions:  func(p models.Post) bool { return p.HasMentions },
}

// FeatureImpact contrasts posts with and without a boolean content feature
type FeatureImpact struct {
	WithMean      float64 `json:"with"`
	WithoutMean   float64 `json:"without"`
	ImpactPercent float64 `json:"impact_percent"`
}

// BooleanFeatureImpact computes the relative engagement impact of a single
// content feature. ok is false for unknown features or when either group
// is empty (no division by zero).
func BooleanFeatureImpact(posts []models.Post, feature string) (FeatureImpact, bool) {
	pred, known := booleanFeatures[feature]
	if !known {
		return FeatureImpact{}, false
	}
	withMean, withoutMean, ok := splitMeans(posts, pred)
	if !ok {
		return FeatureImpact{}, false
	}
	return FeatureImpact{
		WithMean:      withMean,
		WithoutMean:   withoutMean,
		ImpactPercent: (withMean/withoutMean - 1) * 100,
	}, true
}

// EngagementFactors computes feature impact for every boolean content
// feature that has both groups present in the data.
func EngagementFactors(posts []models.Post) map[string]FeatureImpact {
	factors := make(map[string]FeatureImpact)
	for feature := range booleanFeatures {
		if impact, ok := BooleanFeatureImpact(posts, feature); ok {
			factors[feature] = impact
		}
	}
	return factors
}

// Content length bins over the raw character count
var lengthBins = []struct {
	label string
	max   int
}{
	{"Very Short", 100},
	{"Short", 250},
	{"Medium", 500},
	{"Long", 1000},
	{"Very Long", 2000},
}

// LengthBinReport summarizes engagement by binned content length
type LengthBinReport struct {
	Best  string             `json:"best"`
	Worst string             `json:"worst"`
	Means map[string]float64 `json:"means"`
}

// ContentLengthBins bins posts by raw content length and reports the best
// and worst performing bins. ok is false when no post falls in any bin.
func ContentLengthBins(posts []models.Post) (LengthBinReport, bool) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range posts {
		label, ok := binLength(p.ContentLength)
		if !ok {
			continue
		}
		sums[label] += p.Engagement
		counts[label]++
	}
	if len(counts) == 0 {
		return LengthBinReport{}, false
	}

	means := make(map[string]float64, len(counts))
	labels := make([]string, 0, len(counts))
	for label := range counts {
		means[label] = sums[label] / float64(counts[label])
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if means[labels[i]] != means[labels[j]] {
			return means[labels[i]] > means[labels[j]]
		}
		return labels[i] < labels[j]
	})

	return LengthBinReport{
		Best:  labels[0],
		Worst: labels[len(labels)-1],
		Means: means,
	}, true
}

func binLength(length int) (string, bool) {
	prev := 0
	for _, bin := range lengthBins {
		if length > prev && length <= bin.max {
			return bin.label, true
		}
		prev = bin.max
	}
	return "", false
}

// HashtagCount pairs a hashtag with its occurrence count
type HashtagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ExtractHashtags collects hashtags from post content, lower-cased, and
// returns the 20 most frequent. Ties break alphabetically so the order
// is stable.
func ExtractHashtags(posts []models.Post) []HashtagCount {
	counts := make(map[string]int)
	for _, p := range posts {
		for _, word := range strings.Fields(p.Content) {
			if strings.HasPrefix(word, "#") && len(word) > 1 {
				counts[strings.ToLower(word)]++
			}
		}
	}

	tags := make([]HashtagCount, 0, len(counts))
	for tag, count := range counts {
		tags = append(tags, HashtagCount{Tag: tag, Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})

	if len(tags) > 20 {
		tags = tags[:20]
	}
	return tags
}

// InsightsSummary condenses what performs well into a short free-text
// string suitable for embedding into a generation prompt.
func InsightsSummary(posts []models.Post) string {
	if len(posts) == 0 {
		return ""
	}

	var b strings.Builder

	themes := ThemeReport(posts)
	if len(themes) > 0 {
		names := make([]string, 0, len(themes))
		for theme := range themes {
			names = append(names, theme)
		}
		sort.Slice(names, func(i, j int) bool {
			if themes[names[i]].Mean != themes[names[j]].Mean {
				return themes[names[i]].Mean > themes[names[j]].Mean
			}
			return names[i] < names[j]
		})
		if len(names) > 3 {
			names = names[:3]
		}
		fmt.Fprintf(&b, "Top performing themes: %s. ", strings.Join(names, ", "))
	}

	if impact, ok := BooleanFeatureImpact(posts, FeatureQuestions); ok && impact.WithMean > impact.WithoutMean {
		b.WriteString("Posts with questions perform better. ")
	}

	classes := LengthClassReport(posts)
	if len(classes) > 0 {
		best := ""
		for class, stats := range classes {
			if best == "" || stats.Mean > classes[best].Mean || (stats.Mean == classes[best].Mean && class < best) {
				best = class
			}
		}
		fmt.Fprintf(&b, "Posts with %s length perform best. ", best)
	}

	return strings.TrimSpace(b.String())
}
