package handlers

import (
	"net/http"
	"toron/internal/db"
	"toron/internal/middleware"
	"toron/internal/models"
	"toron/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerRequest struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required"`
	PoliticalParty string `json:"political_party"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	var existing models.User
	if err := db.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		JSONError(c, http.StatusBadRequest, "username already taken")
		return
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	user := models.User{
		Username:       req.Username,
		Password:       hash,
		PoliticalParty: req.PoliticalParty,
		Level:          models.LevelMember,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		JSONError(c, http.StatusBadRequest, "username already taken")
		return
	}

	c.JSON(http.StatusOK, user)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	var user models.User
	if err := db.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		JSONError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		JSONError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged in", "user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		JSONError(c, http.StatusUnauthorized, "login required")
		return
	}
	c.JSON(http.StatusOK, user)
}
