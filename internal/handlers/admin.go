package handlers

import (
	"net/http"
	"toron/internal/db"
	"toron/internal/models"
	"toron/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

type stickerRequest struct {
	Sticker string `json:"sticker"` // "", Best, Debate
}

// SetSticker assigns or clears a claim's badge. Router gates this
// behind AdminRequired.
func (h *AdminHandler) SetSticker(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var req stickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Sticker != "" && req.Sticker != "Best" && req.Sticker != "Debate" {
		JSONError(c, http.StatusBadRequest, "sticker must be empty, Best or Debate")
		return
	}

	var claim models.Claim
	if err := db.DB.First(&claim, id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "claim not found")
		return
	}

	if err := db.DB.Model(&claim).Update("sticker", req.Sticker).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}
	claim.Sticker = req.Sticker
	c.JSON(http.StatusOK, claim)
}
