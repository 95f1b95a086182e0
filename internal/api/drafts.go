package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/linkedlens/linkedlens/internal/analyzer"
	"github.com/linkedlens/linkedlens/internal/feedback"
	"github.com/linkedlens/linkedlens/internal/generator"
	"github.com/linkedlens/linkedlens/internal/models"
)

// generateDrafts produces post variations for a topic. Generation failures
// are invisible here: the fallback drafts come back with stage "fallback".
func (r *Router) generateDrafts(c *gin.Context) {
	var req generator.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Topic == "" {
		respondError(c, NewError(http.StatusBadRequest, "topic is required"))
		return
	}
	if req.Tone == "" {
		req.Tone = models.ToneConversational
	}
	if !models.ValidTone(req.Tone) {
		respondError(c, NewError(http.StatusBadRequest, "unknown tone"))
		return
	}
	if req.MaxLength <= 0 {
		req.MaxLength = 500
	}
	if req.IncludeHashtags && req.NumHashtags <= 0 {
		req.NumHashtags = 3
	}

	// Analyzer insights and learned preferences feed the prompt; failures
	// to load them degrade to a plain prompt rather than blocking drafting.
	prefs := feedback.DefaultPreferences()
	if posts, err := r.posts.ListAll(c.Request.Context()); err == nil {
		req.Insights = analyzer.InsightsSummary(posts)
	} else {
		r.logger.Warn("Could not load posts for prompt insights", zap.Error(err))
	}
	if rated, err := r.generated.ListAll(c.Request.Context()); err == nil {
		prefs = feedback.UpdatePreferences(prefs, rated)
	} else {
		r.logger.Warn("Could not load feedback for preferences", zap.Error(err))
	}

	drafts, stage := r.generator.GenerateDrafts(c.Request.Context(), req, prefs)

	c.JSON(http.StatusOK, gin.H{
		"drafts": drafts,
		"stage":  stage.String(),
	})
}

type rateDraftRequest struct {
	Content         string `json:"content" binding:"required"`
	Topic           string `json:"topic" binding:"required"`
	Tone            string `json:"tone"`
	IncludeCTA      bool   `json:"include_cta"`
	IncludeHashtags bool   `json:"include_hashtags"`
	Feedback        string `json:"feedback"`
}

// rateDraft persists an accepted draft together with the user's verdict
func (r *Router) rateDraft(c *gin.Context) {
	var req rateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewError(http.StatusBadRequest, "content and topic are required"))
		return
	}
	if req.Tone == "" {
		req.Tone = models.ToneConversational
	}
	if !models.ValidTone(req.Tone) {
		respondError(c, NewError(http.StatusBadRequest, "unknown tone"))
		return
	}
	if req.Feedback != "" && !models.ValidFeedback(req.Feedback) {
		respondError(c, NewError(http.StatusBadRequest, "unknown feedback label"))
		return
	}

	id, err := r.generated.Create(c.Request.Context(), &models.GeneratedPost{
		Content:         req.Content,
		Topic:           req.Topic,
		Tone:            req.Tone,
		IncludeCTA:      req.IncludeCTA,
		IncludeHashtags: req.IncludeHashtags,
		Feedback:        req.Feedback,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	r.invalidateStats()
	c.JSON(http.StatusOK, gin.H{"id": id})
}

type updateFeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// updateFeedback changes the verdict on a stored draft. An unknown id is
// accepted silently; the UI treats rating as best-effort.
func (r *Router) updateFeedback(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, NewError(http.StatusBadRequest, "invalid id"))
		return
	}

	var req updateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidFeedback(req.Feedback) {
		respondError(c, NewError(http.StatusBadRequest, "feedback must be positive, negative, or neutral"))
		return
	}

	if err := r.generated.UpdateFeedback(c.Request.Context(), id, req.Feedback); err != nil {
		respondError(c, err)
		return
	}

	r.invalidateStats()
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

type scheduleDraftRequest struct {
	ScheduledTime time.Time `json:"scheduled_time" binding:"required"`
}

// scheduleDraft sets or overwrites a draft's scheduled publish time
func (r *Router) scheduleDraft(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, NewError(http.StatusBadRequest, "invalid id"))
		return
	}

	var req scheduleDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewError(http.StatusBadRequest, "scheduled_time is required"))
		return
	}

	if err := r.generated.Schedule(c.Request.Context(), id, req.ScheduledTime); err != nil {
		respondError(c, err)
		return
	}

	r.invalidateStats()
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// listDrafts returns every stored generated post
func (r *Router) listDrafts(c *gin.Context) {
	drafts, err := r.generated.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}

// listScheduledDrafts returns drafts with a scheduled publish time
func (r *Router) listScheduledDrafts(c *gin.Context) {
	drafts, err := r.generated.ListScheduled(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}

type hashtagsRequest struct {
	Topic       string `json:"topic" binding:"required"`
	NumHashtags int    `json:"num_hashtags"`
}

// generateHashtags produces hashtags for a topic with the same fallback
// behavior as drafts
func (r *Router) generateHashtags(c *gin.Context) {
	var req hashtagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewError(http.StatusBadRequest, "topic is required"))
		return
	}
	if req.NumHashtags <= 0 {
		req.NumHashtags = 3
	}

	tags, stage := r.generator.GenerateHashtags(c.Request.Context(), req.Topic, req.NumHashtags)

	c.JSON(http.StatusOK, gin.H{
		"hashtags": tags,
		"stage":    stage.String(),
	})
}
