package models

import (
	"time"
)

type Claim struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TopicID   uint      `gorm:"not null;index" json:"topic_id"`
	Topic     Topic     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Type      string    `gorm:"size:10" json:"type"` // pro, con
	Votes     int       `gorm:"default:0" json:"votes"`
	Sticker   string    `gorm:"size:20" json:"sticker"` // Best, Debate
	CreatedAt time.Time `json:"created_at"`

	// 填充字段，不入库
	RebuttalCount int `gorm:"-" json:"rebuttal_count"`
}
