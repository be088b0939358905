package handlers

import (
	"html/template"
	"net/http"
	"toron/internal/db"
	"toron/internal/middleware"
	"toron/internal/models"
	"toron/internal/services"
	"toron/internal/utils"

	"github.com/gin-gonic/gin"
)

type ClaimHandler struct{}

func NewClaimHandler() *ClaimHandler {
	return &ClaimHandler{}
}

type ClaimResponse struct {
	models.Claim
	Author      *AuthorSummary    `json:"author,omitempty"`
	UserVote    *models.VoteType  `json:"user_vote"`
	ContentHTML template.HTML     `json:"content_html,omitempty"`
	Evidence    []models.Evidence `json:"evidence,omitempty"`
}

// fillRebuttalCounts 批量填充主张的反驳数量
func fillRebuttalCounts(claims []models.Claim) {
	if len(claims) == 0 {
		return
	}

	claimIDs := make([]uint, len(claims))
	for i, cl := range claims {
		claimIDs[i] = cl.ID
	}

	type countResult struct {
		ClaimID uint
		Count   int
	}
	var results []countResult
	db.DB.Model(&models.Rebuttal{}).
		Select("claim_id, COUNT(*) as count").
		Where("claim_id IN ?", claimIDs).
		Group("claim_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.ClaimID] = r.Count
	}

	for i := range claims {
		claims[i].RebuttalCount = countMap[claims[i].ID]
	}
}

// claimUserVotes batch-loads the caller's votes for a claim list.
func claimUserVotes(userID uint, claims []models.Claim) map[uint]models.VoteType {
	votes := make(map[uint]models.VoteType)
	if userID == 0 || len(claims) == 0 {
		return votes
	}

	claimIDs := make([]uint, len(claims))
	for i, cl := range claims {
		claimIDs[i] = cl.ID
	}

	var rows []models.Vote
	db.DB.Where("user_id = ? AND claim_id IN ?", userID, claimIDs).Find(&rows)
	for _, v := range rows {
		if v.ClaimID != nil {
			votes[*v.ClaimID] = v.VoteType
		}
	}
	return votes
}

// ListByTopic returns a topic's claims in ranked order, enriched with
// the author summary and the caller's own vote.
func (h *ClaimHandler) ListByTopic(c *gin.Context) {
	topicID := utils.StringToUint(c.Param("topicID"))
	sortBy := c.Query("sort_by")
	userID := middleware.CurrentUserID(c)

	claims, err := services.GetRankingService().ClaimsByTopic(topicID, sortBy)
	if err != nil {
		ServiceError(c, err)
		return
	}

	fillRebuttalCounts(claims)
	votes := claimUserVotes(userID, claims)

	result := make([]ClaimResponse, len(claims))
	for i, cl := range claims {
		resp := ClaimResponse{Claim: cl, Author: authorSummary(&cl.User)}
		if v, ok := votes[cl.ID]; ok {
			voteType := v
			resp.UserVote = &voteType
		}
		result[i] = resp
	}
	c.JSON(http.StatusOK, result)
}

type evidenceInput struct {
	Source    string `json:"source"`
	Publisher string `json:"publisher"`
	Text      string `json:"text"`
	URL       string `json:"url"`
}

type claimCreateRequest struct {
	TopicID  uint            `json:"topic_id" binding:"required"`
	Title    string          `json:"title" binding:"required"`
	Content  string          `json:"content" binding:"required"`
	Type     string          `json:"type" binding:"required"` // pro, con
	Evidence []evidenceInput `json:"evidence"`
}

func (h *ClaimHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req claimCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "topic_id, title, content and type are required")
		return
	}
	if req.Type != "pro" && req.Type != "con" {
		JSONError(c, http.StatusBadRequest, "type must be pro or con")
		return
	}

	var topic models.Topic
	if err := db.DB.First(&topic, req.TopicID).Error; err != nil {
		JSONError(c, http.StatusNotFound, "topic not found")
		return
	}

	claim := models.Claim{
		TopicID: req.TopicID,
		UserID:  user.ID,
		Title:   req.Title,
		Content: req.Content,
		Type:    req.Type,
	}
	if err := db.DB.Create(&claim).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	for _, ev := range req.Evidence {
		claimID := claim.ID
		db.DB.Create(&models.Evidence{
			ClaimID:   &claimID,
			Source:    ev.Source,
			Publisher: ev.Publisher,
			Text:      ev.Text,
			URL:       ev.URL,
		})
	}

	c.JSON(http.StatusOK, ClaimResponse{Claim: claim, Author: authorSummary(user)})
}

func (h *ClaimHandler) Get(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	userID := middleware.CurrentUserID(c)

	var claim models.Claim
	if err := db.DB.Preload("User").First(&claim, id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "claim not found")
		return
	}

	resp := ClaimResponse{
		Claim:       claim,
		Author:      authorSummary(&claim.User),
		ContentHTML: utils.RenderMarkdown(claim.Content),
	}

	db.DB.Where("claim_id = ?", claim.ID).Find(&resp.Evidence)

	if userID != 0 {
		if v, err := services.UserVote(userID, services.ClaimTarget(claim.ID)); err == nil {
			resp.UserVote = v
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ClaimHandler) EvidenceList(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var claim models.Claim
	if err := db.DB.First(&claim, id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "claim not found")
		return
	}

	var evidence []models.Evidence
	db.DB.Where("claim_id = ?", claim.ID).Order("id ASC").Find(&evidence)
	c.JSON(http.StatusOK, evidence)
}
