package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkedlens/linkedlens/internal/analyzer"
)

// getInsights renders all analyzer outputs over the full post snapshot
func (r *Router) getInsights(c *gin.Context) {
	posts, err := r.posts.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if len(posts) == 0 {
		// Explicit no-data state; not an error
		c.JSON(http.StatusOK, gin.H{
			"posts":   0,
			"message": "No data available. Please scrape LinkedIn profiles first.",
		})
		return
	}

	response := gin.H{
		"posts":              len(posts),
		"engagement_by_type": analyzer.AverageEngagementByType(posts),
		"engagement_by_hour": analyzer.AverageEngagementByHour(posts),
		"optimal_hour":       analyzer.OptimalHour(posts),
		"themes":             analyzer.ThemeReport(posts),
		"length_classes":     analyzer.LengthClassReport(posts),
		"engagement_factors": analyzer.EngagementFactors(posts),
		"top_hashtags":       analyzer.ExtractHashtags(posts),
		"summary":            analyzer.InsightsSummary(posts),
	}

	if comparison, ok := analyzer.CompareHashtagUsage(posts); ok {
		response["hashtag_usage"] = comparison
	}
	if bins, ok := analyzer.ContentLengthBins(posts); ok {
		response["length_bins"] = bins
	}

	c.JSON(http.StatusOK, response)
}
