package models

import "gorm.io/gorm"

// Post type labels
const (
	PostTypeText     = "text"
	PostTypeArticle  = "article"
	PostTypeImage    = "image"
	PostTypeVideo    = "video"
	PostTypePoll     = "poll"
	PostTypeDocument = "document"
)

// Content length classes
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// Engagement score weights
const (
	CommentWeight = 3
	ShareWeight   = 5
)

// Post represents a single scraped post belonging to a profile
type Post struct {
	ID            int64   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProfileURL    string  `gorm:"index;column:profile_url" json:"profile_url"`
	Date          string  `gorm:"type:varchar(10);column:date" json:"date"`
	Time          string  `gorm:"type:varchar(5);column:time" json:"time"`
	Content       string  `gorm:"type:text;column:content" json:"content"`
	Type          string  `gorm:"type:varchar(16);column:type" json:"type"`
	Theme         string  `gorm:"type:varchar(64);column:theme" json:"theme"`
	ContentLength int     `gorm:"column:content_length" json:"content_length"`
	LengthType    string  `gorm:"type:varchar(8);column:content_length_type" json:"content_length_type"`
	Likes         int     `gorm:"column:likes" json:"likes"`
	Comments      int     `gorm:"column:comments" json:"comments"`
	Shares        int     `gorm:"column:shares" json:"shares"`
	Engagement    float64 `gorm:"column:engagement" json:"engagement"`
	HasHashtags   bool    `gorm:"column:has_hashtags" json:"has_hashtags"`
	HasLinks      bool    `gorm:"column:has_links" json:"has_links"`
	HasQuestions  bool    `gorm:"column:has_questions" json:"has_questions"`
	HasMentions   bool    `gorm:"column:has_mentions" json:"has_mentions"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// EngagementScore computes the weighted engagement score from raw counters
func EngagementScore(likes, comments, shares int) float64 {
	return float64(likes + comments*CommentWeight + shares*ShareWeight)
}

// BeforeSave recomputes the engagement score so it never drifts from its inputs
func (p *Post) BeforeSave(_ *gorm.DB) error {
	p.Engagement = EngagementScore(p.Likes, p.Comments, p.Shares)
	return nil
}
