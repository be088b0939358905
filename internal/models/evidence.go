package models

import (
	"time"
)

// Evidence cites a source for either a claim or a rebuttal; exactly one
// of ClaimID/RebuttalID is set by the handlers.
type Evidence struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ClaimID    *uint     `gorm:"index" json:"claim_id"`
	RebuttalID *uint     `gorm:"index" json:"rebuttal_id"`
	Source     string    `gorm:"not null" json:"source"`
	Publisher  string    `gorm:"not null" json:"publisher"`
	Text       string    `gorm:"type:text" json:"text"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"created_at"`
}
