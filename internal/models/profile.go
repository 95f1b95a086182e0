package models

import (
	"time"
)

// Profile represents a scraped LinkedIn profile
type Profile struct {
	ProfileURL    string    `gorm:"primaryKey;column:profile_url" json:"profile_url"`
	Username      string    `gorm:"type:varchar(100);column:username" json:"username"`
	Name          string    `gorm:"type:varchar(100);column:name" json:"name"`
	Headline      string    `gorm:"type:varchar(255);column:headline" json:"headline"`
	Location      string    `gorm:"type:varchar(100);column:location" json:"location"`
	Connections   int       `gorm:"column:connections" json:"connections"`
	AvgEngagement float64   `gorm:"column:avg_engagement" json:"avg_engagement"`
	LastUpdated   time.Time `gorm:"column:last_updated" json:"last_updated"`

	// Current post batch; persisted alongside the profile on save
	Posts []Post `gorm:"foreignKey:ProfileURL;references:ProfileURL" json:"posts,omitempty"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
