package handlers

import (
	"fmt"
	"net/http"
	"toron/internal/db"
	"toron/internal/middleware"
	"toron/internal/models"
	"toron/internal/services"
	"toron/internal/utils"

	"github.com/gin-gonic/gin"
)

type RebuttalHandler struct{}

func NewRebuttalHandler() *RebuttalHandler {
	return &RebuttalHandler{}
}

type RebuttalResponse struct {
	models.Rebuttal
	Author   *AuthorSummary   `json:"author,omitempty"`
	UserVote *models.VoteType `json:"user_vote"`
}

func rebuttalUserVotes(userID uint, rebuttals []models.Rebuttal) map[uint]models.VoteType {
	votes := make(map[uint]models.VoteType)
	if userID == 0 || len(rebuttals) == 0 {
		return votes
	}

	ids := make([]uint, len(rebuttals))
	for i, r := range rebuttals {
		ids[i] = r.ID
	}

	var rows []models.Vote
	db.DB.Where("user_id = ? AND rebuttal_id IN ?", userID, ids).Find(&rows)
	for _, v := range rows {
		if v.RebuttalID != nil {
			votes[*v.RebuttalID] = v.VoteType
		}
	}
	return votes
}

// ListByClaim returns a claim's rebuttals as a flat list in creation
// order; clients rebuild the thread from parent_id.
func (h *RebuttalHandler) ListByClaim(c *gin.Context) {
	claimID := utils.StringToUint(c.Param("claimID"))
	userID := middleware.CurrentUserID(c)

	var rebuttals []models.Rebuttal
	db.DB.Preload("User").
		Where("claim_id = ?", claimID).
		Order("created_at ASC, id ASC").
		Find(&rebuttals)

	votes := rebuttalUserVotes(userID, rebuttals)

	result := make([]RebuttalResponse, len(rebuttals))
	for i, r := range rebuttals {
		resp := RebuttalResponse{Rebuttal: r, Author: authorSummary(&r.User)}
		if v, ok := votes[r.ID]; ok {
			voteType := v
			resp.UserVote = &voteType
		}
		result[i] = resp
	}
	c.JSON(http.StatusOK, result)
}

type rebuttalCreateRequest struct {
	ClaimID  uint   `json:"claim_id" binding:"required"`
	ParentID *uint  `json:"parent_id"`
	Content  string `json:"content" binding:"required"`
	Type     string `json:"type"` // rebuttal, counter
}

func (h *RebuttalHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req rebuttalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "claim_id and content are required")
		return
	}

	var claim models.Claim
	if err := db.DB.First(&claim, req.ClaimID).Error; err != nil {
		JSONError(c, http.StatusNotFound, "claim not found")
		return
	}

	if req.ParentID != nil {
		var parent models.Rebuttal
		if err := db.DB.First(&parent, *req.ParentID).Error; err != nil || parent.ClaimID != claim.ID {
			JSONError(c, http.StatusBadRequest, "parent rebuttal not found under this claim")
			return
		}
	}

	rebuttal := models.Rebuttal{
		ClaimID:  req.ClaimID,
		ParentID: req.ParentID,
		UserID:   user.ID,
		Content:  req.Content,
		Type:     req.Type,
	}
	if err := db.DB.Create(&rebuttal).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	// Notify the person being answered; never notify yourself.
	go func(actorID uint, r models.Rebuttal, cl models.Claim) {
		if r.ParentID != nil {
			var parent models.Rebuttal
			if err := db.DB.First(&parent, *r.ParentID).Error; err == nil && parent.UserID != actorID {
				db.DB.Create(&models.Notification{
					UserID:  parent.UserID,
					ActorID: &actorID,
					Type:    models.NotificationTypeRebuttalReplied,
					Reason:  fmt.Sprintf("replied to your rebuttal under the claim \"%s\"", cl.Title),
				})
			}
			return
		}
		if cl.UserID != actorID {
			db.DB.Create(&models.Notification{
				UserID:  cl.UserID,
				ActorID: &actorID,
				Type:    models.NotificationTypeClaimRebutted,
				Reason:  fmt.Sprintf("posted a rebuttal to your claim \"%s\"", cl.Title),
			})
		}
	}(user.ID, rebuttal, claim)

	c.JSON(http.StatusOK, RebuttalResponse{Rebuttal: rebuttal, Author: authorSummary(user)})
}

func (h *RebuttalHandler) Get(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	userID := middleware.CurrentUserID(c)

	var rebuttal models.Rebuttal
	if err := db.DB.Preload("User").First(&rebuttal, id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "rebuttal not found")
		return
	}

	resp := RebuttalResponse{Rebuttal: rebuttal, Author: authorSummary(&rebuttal.User)}
	if userID != 0 {
		if v, err := services.UserVote(userID, services.RebuttalTarget(rebuttal.ID)); err == nil {
			resp.UserVote = v
		}
	}
	c.JSON(http.StatusOK, resp)
}
