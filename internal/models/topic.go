package models

import (
	"time"
)

type TopicType string

const (
	TopicTypeTopic  TopicType = "topic"  // general discussion subject
	TopicTypeRegion TopicType = "region" // regional issue
	TopicTypePledge TopicType = "pledge" // campaign pledge
)

type Topic struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Category  string    `gorm:"index" json:"category"` // politics, economy, society, culture, it, world
	Region    string    `gorm:"index" json:"region"`
	District  string    `gorm:"index" json:"district"`
	TopicType TopicType `gorm:"type:varchar(20);index" json:"topic_type"`
	CreatedAt time.Time `json:"created_at"`
}
