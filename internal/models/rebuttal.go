package models

import (
	"time"
)

// Rebuttal threads are stored flat: ParentID is a weak back-reference
// into the same table, and the tree view is reconstructed per claim.
type Rebuttal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClaimID   uint      `gorm:"not null;index" json:"claim_id"`
	Claim     Claim     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ParentID  *uint     `gorm:"index" json:"parent_id"` // Nullable for top-level rebuttals
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Type      string    `gorm:"size:10" json:"type"` // rebuttal, counter
	Votes     int       `gorm:"default:0" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
