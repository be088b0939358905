package services

import (
	"errors"
	"toron/internal/db"
	"toron/internal/models"

	"gorm.io/gorm"
)

// VoteResult is what a successful cast reports back: the target's
// counter after the mutation and the caller's vote state (nil after a
// toggle-off).
type VoteResult struct {
	Votes    int
	UserVote *models.VoteType
	Action   VoteAction
}

type VoteAction string

const (
	VoteCreated   VoteAction = "created"
	VoteChanged   VoteAction = "changed"
	VoteCancelled VoteAction = "cancelled"
)

// CastVote applies one user's vote to one target. The ledger row and
// the denormalized counter move together in a single transaction:
//
//	existing | requested | ledger        | counter
//	none     | like      | create        | +1
//	none     | dislike   | create        | -1
//	same     | same      | delete        | -unit
//	like     | dislike   | flip          | -2
//	dislike  | like      | flip          | +2
//
// The counter is only ever moved by a relative SQL update, and the
// delete/flip writes are keyed on the vote state read inside the same
// transaction. A concurrent request that touched the same (user,
// target) pair first makes those writes affect zero rows; the whole
// transaction rolls back with ErrConflict and the caller can retry
// against the fresh state. Votes on different targets never contend.
func CastVote(userID uint, target TargetRef, voteType models.VoteType) (VoteResult, error) {
	if userID == 0 {
		return VoteResult{}, ErrUnauthorized
	}
	if !target.valid() {
		return VoteResult{}, ErrInvalidTarget
	}
	if !voteType.Valid() {
		return VoteResult{}, ErrInvalidVote
	}

	var result VoteResult
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := targetExists(tx, target); err != nil {
			return err
		}

		existing, found, err := findVote(tx, userID, target)
		if err != nil {
			return err
		}

		var delta int
		switch {
		case !found:
			vote := target.newVote(userID, voteType)
			if err := tx.Create(&vote).Error; err != nil {
				// The unique (user, target) index catches a concurrent
				// first vote by the same user.
				return ErrConflict
			}
			delta = voteType.Unit()
			result.Action = VoteCreated
			result.UserVote = &voteType

		case existing.VoteType == voteType:
			// Same direction again cancels the vote.
			res := tx.Where("id = ? AND vote_type = ?", existing.ID, existing.VoteType).
				Delete(&models.Vote{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != 1 {
				return ErrConflict
			}
			delta = -existing.VoteType.Unit()
			result.Action = VoteCancelled
			result.UserVote = nil

		default:
			// Flip removes the old direction and adds the new one in
			// one step, so the counter moves by twice the unit.
			res := tx.Model(&models.Vote{}).
				Where("id = ? AND vote_type = ?", existing.ID, existing.VoteType).
				Update("vote_type", voteType)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != 1 {
				return ErrConflict
			}
			delta = 2 * voteType.Unit()
			result.Action = VoteChanged
			result.UserVote = &voteType
		}

		if err := tx.Model(target.model()).Where("id = ?", target.ID).
			UpdateColumn("votes", gorm.Expr("votes + ?", delta)).Error; err != nil {
			return err
		}

		return tx.Model(target.model()).Where("id = ?", target.ID).
			Select("votes").Scan(&result.Votes).Error
	})
	if err != nil {
		return VoteResult{}, err
	}
	return result, nil
}

// UserVote resolves the caller's current vote on a target, nil when the
// user never voted on it or cancelled.
func UserVote(userID uint, target TargetRef) (*models.VoteType, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if !target.valid() {
		return nil, ErrInvalidTarget
	}

	if err := targetExists(db.DB, target); err != nil {
		return nil, err
	}

	vote, found, err := findVote(db.DB, userID, target)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	voteType := vote.VoteType
	return &voteType, nil
}

// findVote is the vote ledger resolver: at most one row exists per
// (user, target) pair, enforced by the unique indexes on votes.
func findVote(tx *gorm.DB, userID uint, target TargetRef) (models.Vote, bool, error) {
	var vote models.Vote
	err := tx.Where("user_id = ? AND "+target.voteColumn()+" = ?", userID, target.ID).
		First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Vote{}, false, nil
	}
	if err != nil {
		return models.Vote{}, false, err
	}
	return vote, true, nil
}

func targetExists(tx *gorm.DB, target TargetRef) error {
	var count int64
	if err := tx.Model(target.model()).Where("id = ?", target.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
