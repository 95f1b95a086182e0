package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/linkedlens/linkedlens/internal/cache"
	"github.com/linkedlens/linkedlens/internal/feedback"
)

// feedbackStats renders the feedback dashboard payload. The aggregate is
// cached briefly in Redis; every generated-post write invalidates it.
func (r *Router) feedbackStats(c *gin.Context) {
	// First visit bootstraps demonstration data so the dashboard isn't blank
	if err := r.generated.SeedSampleFeedback(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	if cached, err := r.cache.Get(statsCacheKey); err == nil {
		var stats feedback.Stats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			c.JSON(http.StatusOK, stats)
			return
		}
	} else if err != cache.ErrCacheDisabled && err != redis.Nil {
		r.logger.Warn("Stats cache read failed", zap.Error(err))
	}

	posts, err := r.generated.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	stats := feedback.ComputeStats(posts)

	if payload, err := json.Marshal(stats); err == nil {
		if err := r.cache.Set(statsCacheKey, payload, statsCacheTTL); err != nil && err != cache.ErrCacheDisabled {
			r.logger.Warn("Stats cache write failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, stats)
}
