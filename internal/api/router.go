package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/linkedlens/linkedlens/internal/cache"
	"github.com/linkedlens/linkedlens/internal/db"
	"github.com/linkedlens/linkedlens/internal/generator"
	"github.com/linkedlens/linkedlens/internal/scraper"
	"github.com/linkedlens/linkedlens/pkg/logging"
)

// Feedback-stats cache settings
const (
	statsCacheKey = "feedback:stats"
	statsCacheTTL = time.Minute
)

// Router sets up API routes
type Router struct {
	profiles  *db.ProfileRepository
	posts     *db.PostRepository
	generated *db.GeneratedPostRepository
	source    scraper.Source
	generator *generator.Generator
	cache     *cache.Cache
	logger    *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache, source scraper.Source, gen *generator.Generator) *Router {
	repo := db.NewRepository(database.DB)
	return &Router{
		profiles:  db.NewProfileRepository(repo),
		posts:     db.NewPostRepository(repo),
		generated: db.NewGeneratedPostRepository(repo),
		source:    source,
		generator: gen,
		cache:     redisCache,
		logger:    logging.WithComponent("api-router"),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	api := engine.Group("/api")
	{
		// Profile analysis view
		api.POST("/profiles/analyze", r.analyzeProfile)
		api.GET("/profiles", r.listProfiles)

		// Content insights view
		api.GET("/insights", r.getInsights)

		// Post generator view
		api.POST("/drafts", r.generateDrafts)
		api.POST("/drafts/rate", r.rateDraft)
		api.POST("/drafts/:id/feedback", r.updateFeedback)
		api.POST("/drafts/:id/schedule", r.scheduleDraft)
		api.GET("/drafts", r.listDrafts)
		api.GET("/drafts/scheduled", r.listScheduledDrafts)
		api.POST("/hashtags", r.generateHashtags)

		// Feedback dashboard view
		api.GET("/feedback/stats", r.feedbackStats)
	}
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "OK",
		"service": "linkedlens-api",
	})
}

// invalidateStats drops the cached feedback stats after any generated-post
// write so the dashboard never serves stale aggregates
func (r *Router) invalidateStats() {
	if err := r.cache.Delete(statsCacheKey); err != nil && err != cache.ErrCacheDisabled {
		r.logger.Warn("Failed to invalidate stats cache", zap.Error(err))
	}
}
