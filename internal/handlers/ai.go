package handlers

import (
	"net/http"
	"toron/internal/services"

	"github.com/gin-gonic/gin"
)

type AIHandler struct{}

func NewAIHandler() *AIHandler {
	return &AIHandler{}
}

type searchEvidenceRequest struct {
	Query       string `json:"query" binding:"required"`
	SearchDepth string `json:"search_depth"`
}

// SearchEvidence suggests citations for a claim draft via the external
// search API.
func (h *AIHandler) SearchEvidence(c *gin.Context) {
	svc := services.GetEvidenceSearchService()
	if !svc.Configured() {
		JSONError(c, http.StatusInternalServerError, "search API key is not configured")
		return
	}

	var req searchEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "query is required")
		return
	}

	items, err := svc.SearchEvidence(req.Query, req.SearchDepth)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "evidence search failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"evidence": items, "query": req.Query})
}

type improveTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// ImproveText augments a draft with a references block from the top
// search hits.
func (h *AIHandler) ImproveText(c *gin.Context) {
	svc := services.GetEvidenceSearchService()
	if !svc.Configured() {
		JSONError(c, http.StatusInternalServerError, "search API key is not configured")
		return
	}

	var req improveTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "text is required")
		return
	}

	improved, err := svc.ImproveText(req.Text)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "text improvement failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"improved_text": improved, "original_text": req.Text})
}
