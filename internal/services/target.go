package services

import (
	"toron/internal/models"
)

type TargetKind string

const (
	TargetClaim    TargetKind = "claim"
	TargetRebuttal TargetKind = "rebuttal"
)

// TargetRef identifies the single object a vote applies to. Modeling
// the claim/rebuttal choice as a tagged variant means the both-set and
// neither-set states of the wire format cannot reach the engine.
type TargetRef struct {
	Kind TargetKind
	ID   uint
}

func ClaimTarget(id uint) TargetRef {
	return TargetRef{Kind: TargetClaim, ID: id}
}

func RebuttalTarget(id uint) TargetRef {
	return TargetRef{Kind: TargetRebuttal, ID: id}
}

// ParseTarget builds a TargetRef from the two optional ids of a request
// body, rejecting the zero-or-both cases.
func ParseTarget(claimID, rebuttalID *uint) (TargetRef, error) {
	switch {
	case claimID != nil && rebuttalID != nil:
		return TargetRef{}, ErrInvalidTarget
	case claimID != nil:
		return ClaimTarget(*claimID), nil
	case rebuttalID != nil:
		return RebuttalTarget(*rebuttalID), nil
	}
	return TargetRef{}, ErrInvalidTarget
}

func (t TargetRef) valid() bool {
	return (t.Kind == TargetClaim || t.Kind == TargetRebuttal) && t.ID != 0
}

// model returns an empty record of the target's table for counter updates.
func (t TargetRef) model() interface{} {
	if t.Kind == TargetRebuttal {
		return &models.Rebuttal{}
	}
	return &models.Claim{}
}

// voteColumn is the Vote column discriminating this target kind.
func (t TargetRef) voteColumn() string {
	if t.Kind == TargetRebuttal {
		return "rebuttal_id"
	}
	return "claim_id"
}

// newVote builds the ledger row for a first-time vote on this target.
func (t TargetRef) newVote(userID uint, voteType models.VoteType) models.Vote {
	v := models.Vote{UserID: userID, VoteType: voteType}
	id := t.ID
	if t.Kind == TargetRebuttal {
		v.RebuttalID = &id
	} else {
		v.ClaimID = &id
	}
	return v
}
