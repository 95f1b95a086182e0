package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type analyzeProfileRequest struct {
	ProfileURL string `json:"profile_url" binding:"required"`
}

// analyzeProfile scrapes a profile and persists it with its post batch
func (r *Router) analyzeProfile(c *gin.Context) {
	var req analyzeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewError(http.StatusBadRequest, "profile_url is required"))
		return
	}

	profile, err := r.source.ScrapeProfile(c.Request.Context(), req.ProfileURL)
	if err != nil {
		r.logger.Error("Profile scrape failed", zap.String("url", req.ProfileURL), zap.Error(err))
		respondError(c, NewError(http.StatusBadGateway, "failed to scrape profile"))
		return
	}

	if err := r.profiles.Save(c.Request.Context(), profile); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"profile_url":    profile.ProfileURL,
			"username":       profile.Username,
			"name":           profile.Name,
			"headline":       profile.Headline,
			"location":       profile.Location,
			"connections":    profile.Connections,
			"avg_engagement": profile.AvgEngagement,
		},
		"posts_scraped": len(profile.Posts),
	})
}

// listProfiles returns all previously analyzed profiles
func (r *Router) listProfiles(c *gin.Context) {
	profiles, err := r.profiles.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}
