package handlers

import (
	"net/http"
	"toron/internal/db"
	"toron/internal/models"
	"toron/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile 用户主页
func (h *UserHandler) Profile(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "user not found")
		return
	}

	var claimCount int64
	db.DB.Model(&models.Claim{}).Where("user_id = ?", user.ID).Count(&claimCount)

	var rebuttalCount int64
	db.DB.Model(&models.Rebuttal{}).Where("user_id = ?", user.ID).Count(&rebuttalCount)

	c.JSON(http.StatusOK, gin.H{
		"id":             user.ID,
		"username":       user.Username,
		"affiliation":    user.DisplayAffiliation(),
		"level":          user.Level,
		"created_at":     user.CreatedAt,
		"claim_count":    claimCount,
		"rebuttal_count": rebuttalCount,
	})
}
