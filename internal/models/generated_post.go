package models

import (
	"database/sql"
	"time"
)

// Tones a generated post can be requested in
const (
	ToneProfessional   = "Professional"
	ToneConversational = "Conversational"
	ToneInspirational  = "Inspirational"
	ToneEducational    = "Educational"
	TonePromotional    = "Promotional"
)

// Feedback labels
const (
	FeedbackPositive = "positive"
	FeedbackNegative = "negative"
	FeedbackNeutral  = "neutral"
)

// Tones lists the allowed tone labels
var Tones = []string{
	ToneProfessional,
	ToneConversational,
	ToneInspirational,
	ToneEducational,
	TonePromotional,
}

// ValidTone reports whether the given label is a known tone
func ValidTone(tone string) bool {
	for _, t := range Tones {
		if t == tone {
			return true
		}
	}
	return false
}

// ValidFeedback reports whether the given label is a known feedback value
func ValidFeedback(feedback string) bool {
	switch feedback {
	case FeedbackPositive, FeedbackNegative, FeedbackNeutral:
		return true
	}
	return false
}

// GeneratedPost represents an AI-drafted post and the user's verdict on it
type GeneratedPost struct {
	ID              int64        `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Content         string       `gorm:"type:text;column:content" json:"content"`
	Topic           string       `gorm:"type:varchar(255);column:topic" json:"topic"`
	Tone            string       `gorm:"type:varchar(32);column:tone" json:"tone"`
	IncludeCTA      bool         `gorm:"column:include_cta" json:"include_cta"`
	IncludeHashtags bool         `gorm:"column:include_hashtags" json:"include_hashtags"`
	Feedback        string       `gorm:"type:varchar(16);default:'neutral';column:feedback" json:"feedback"`
	GenerationTime  time.Time    `gorm:"column:generation_time" json:"generation_time"`
	ScheduledTime   sql.NullTime `gorm:"column:scheduled_time" json:"scheduled_time"`
}

// TableName specifies the table name for GeneratedPost
func (GeneratedPost) TableName() string {
	return "generated_posts"
}
