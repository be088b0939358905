package models

import (
	"time"
)

type VoteType string

const (
	VoteLike    VoteType = "like"
	VoteDislike VoteType = "dislike"
)

// Unit returns the vote's contribution to the target counter.
func (t VoteType) Unit() int {
	if t == VoteDislike {
		return -1
	}
	return 1
}

func (t VoteType) Valid() bool {
	return t == VoteLike || t == VoteDislike
}

// Vote records one directional vote by one user on one target. Exactly
// one of ClaimID/RebuttalID is set. The composite unique indexes keep
// at most one row per (user, target) pair; Postgres and SQLite both
// treat rows with a NULL component as non-conflicting, so a user's
// claim votes never collide with their rebuttal votes.
type Vote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index;uniqueIndex:idx_user_claim_vote;uniqueIndex:idx_user_rebuttal_vote" json:"user_id"`
	ClaimID    *uint     `gorm:"index;uniqueIndex:idx_user_claim_vote" json:"claim_id"`
	RebuttalID *uint     `gorm:"index;uniqueIndex:idx_user_rebuttal_vote" json:"rebuttal_id"`
	VoteType   VoteType  `gorm:"type:varchar(10);not null" json:"vote_type"`
	CreatedAt  time.Time `json:"created_at"`
}
