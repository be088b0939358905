package handlers

import (
	"net/http"
	"toron/internal/middleware"
	"toron/internal/models"
	"toron/internal/services"
	"toron/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

type voteRequest struct {
	ClaimID    *uint           `json:"claim_id"`
	RebuttalID *uint           `json:"rebuttal_id"`
	VoteType   models.VoteType `json:"vote_type"`
}

// Cast handles like/dislike voting on a claim or a rebuttal. Casting
// the same direction again cancels the vote; the opposite direction
// flips it.
func (h *VoteHandler) Cast(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	target, err := services.ParseTarget(req.ClaimID, req.RebuttalID)
	if err != nil {
		ServiceError(c, err)
		return
	}

	result, err := services.CastVote(userID, target, req.VoteType)
	if err != nil {
		ServiceError(c, err)
		return
	}

	message := "vote recorded"
	switch result.Action {
	case services.VoteChanged:
		message = "vote changed"
	case services.VoteCancelled:
		message = "vote cancelled"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   message,
		"votes":     result.Votes,
		"user_vote": result.UserVote,
	})
}

// ClaimVote returns the caller's vote on a claim.
func (h *VoteHandler) ClaimVote(c *gin.Context) {
	h.userVote(c, services.ClaimTarget(utils.StringToUint(c.Param("id"))))
}

// RebuttalVote returns the caller's vote on a rebuttal.
func (h *VoteHandler) RebuttalVote(c *gin.Context) {
	h.userVote(c, services.RebuttalTarget(utils.StringToUint(c.Param("id"))))
}

func (h *VoteHandler) userVote(c *gin.Context, target services.TargetRef) {
	userID := middleware.CurrentUserID(c)

	vote, err := services.UserVote(userID, target)
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_vote": vote})
}
