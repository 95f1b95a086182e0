package db

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/linkedlens/linkedlens/internal/models"
	"github.com/linkedlens/linkedlens/pkg/telemetry"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ProfileRepository provides profile-related database operations
type ProfileRepository struct {
	*Repository
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(repo *Repository) *ProfileRepository {
	return &ProfileRepository{Repository: repo}
}

// Save upserts a profile by URL and appends its current post batch.
// Posts from earlier scrapes are kept; they accumulate across re-scrapes.
func (r *ProfileRepository) Save(ctx context.Context, profile *models.Profile) error {
	ctx, span := telemetry.StartSpan(ctx, "db.save_profile")
	defer span.End()

	profile.LastUpdated = time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Posts").
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "profile_url"}},
				UpdateAll: true,
			}).
			Create(profile).Error; err != nil {
			return err
		}

		if len(profile.Posts) == 0 {
			return nil
		}
		for i := range profile.Posts {
			profile.Posts[i].ID = 0
			profile.Posts[i].ProfileURL = profile.ProfileURL
		}
		return tx.Create(&profile.Posts).Error
	})
	return storageErr("save_profile", err)
}

// ListAll retrieves all profiles
func (r *ProfileRepository) ListAll(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).Order("last_updated DESC").Find(&profiles).Error; err != nil {
		return nil, storageErr("list_profiles", err)
	}
	return profiles, nil
}

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// ListAll retrieves all posts across all profiles
func (r *PostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, storageErr("list_posts", err)
	}
	return posts, nil
}

// GeneratedPostRepository provides generated-post database operations
type GeneratedPostRepository struct {
	*Repository
}

// NewGeneratedPostRepository creates a new generated-post repository
func NewGeneratedPostRepository(repo *Repository) *GeneratedPostRepository {
	return &GeneratedPostRepository{Repository: repo}
}

// Create inserts a generated post and returns its id.
// The generation timestamp is assigned at insert time; feedback defaults to neutral.
func (r *GeneratedPostRepository) Create(ctx context.Context, post *models.GeneratedPost) (int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "db.save_generated_post")
	defer span.End()

	if post.GenerationTime.IsZero() {
		post.GenerationTime = time.Now().UTC()
	}
	if post.Feedback == "" {
		post.Feedback = models.FeedbackNeutral
	}
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return 0, storageErr("save_generated_post", err)
	}
	return post.ID, nil
}

// UpdateFeedback sets the feedback label for a generated post.
// A missing id is a no-op, matching a best-effort UI.
func (r *GeneratedPostRepository) UpdateFeedback(ctx context.Context, id int64, feedback string) error {
	err := r.db.WithContext(ctx).
		Model(&models.GeneratedPost{}).
		Where("id = ?", id).
		Update("feedback", feedback).Error
	return storageErr("update_feedback", err)
}

// Schedule sets or overwrites the scheduled publish time for a generated post
func (r *GeneratedPostRepository) Schedule(ctx context.Context, id int64, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&models.GeneratedPost{}).
		Where("id = ?", id).
		Update("scheduled_time", sql.NullTime{Time: at, Valid: true}).Error
	return storageErr("schedule", err)
}

// ListAll retrieves all generated posts
func (r *GeneratedPostRepository) ListAll(ctx context.Context) ([]models.GeneratedPost, error) {
	var posts []models.GeneratedPost
	if err := r.db.WithContext(ctx).Order("generation_time ASC").Find(&posts).Error; err != nil {
		return nil, storageErr("list_generated_posts", err)
	}
	return posts, nil
}

// ListScheduled retrieves generated posts with a scheduled publish time
func (r *GeneratedPostRepository) ListScheduled(ctx context.Context) ([]models.GeneratedPost, error) {
	var posts []models.GeneratedPost
	if err := r.db.WithContext(ctx).
		Where("scheduled_time IS NOT NULL").
		Order("scheduled_time ASC").
		Find(&posts).Error; err != nil {
		return nil, storageErr("list_scheduled_posts", err)
	}
	return posts, nil
}

// Count returns the number of generated posts
func (r *GeneratedPostRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.GeneratedPost{}).Count(&count).Error; err != nil {
		return 0, storageErr("count_generated_posts", err)
	}
	return count, nil
}
