package handlers

import (
	"fmt"
	"net/http"
	"toron/internal/db"
	"toron/internal/middleware"
	"toron/internal/models"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

type reportRequest struct {
	ItemType string `json:"item_type" binding:"required"` // claim, rebuttal
	ItemID   uint   `json:"item_id" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// Create flags a claim or rebuttal for moderation and notifies every
// administrator.
func (h *ReportHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "item_type, item_id and reason are required")
		return
	}

	var desc string
	switch req.ItemType {
	case "claim":
		var claim models.Claim
		if err := db.DB.First(&claim, req.ItemID).Error; err != nil {
			JSONError(c, http.StatusNotFound, "claim not found")
			return
		}
		desc = fmt.Sprintf("the claim \"%s\"", claim.Title)
	case "rebuttal":
		var rebuttal models.Rebuttal
		if err := db.DB.First(&rebuttal, req.ItemID).Error; err != nil {
			JSONError(c, http.StatusNotFound, "rebuttal not found")
			return
		}
		desc = "a rebuttal"
	default:
		JSONError(c, http.StatusBadRequest, "item_type must be claim or rebuttal")
		return
	}

	report := models.Report{
		UserID:   user.ID,
		ItemType: req.ItemType,
		ItemID:   req.ItemID,
		Reason:   req.Reason,
	}
	if err := db.DB.Create(&report).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	// Fan out a notification to all admins.
	go func(actorID uint, desc, reason string) {
		var admins []models.User
		if err := db.DB.Where("level >= ?", models.LevelAdmin).Find(&admins).Error; err != nil {
			return
		}
		for _, admin := range admins {
			db.DB.Create(&models.Notification{
				UserID:  admin.ID,
				ActorID: &actorID,
				Type:    models.NotificationTypeReport,
				Reason:  fmt.Sprintf("reported %s, reason: %s", desc, reason),
			})
		}
	}(user.ID, desc, req.Reason)

	c.JSON(http.StatusOK, gin.H{"message": "reported"})
}
