package handlers

import (
	"errors"
	"net/http"
	"toron/internal/models"
	"toron/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthorSummary is the public slice of a user attached to claims and
// rebuttals.
type AuthorSummary struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
	Level       int    `json:"level"`
}

func authorSummary(u *models.User) *AuthorSummary {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &AuthorSummary{
		Name:        u.Username,
		Affiliation: u.DisplayAffiliation(),
		Level:       u.Level,
	}
}

// JSONError writes the uniform error body.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// ServiceError maps service-layer sentinel errors to HTTP statuses.
func ServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrInvalidTarget), errors.Is(err, services.ErrInvalidVote):
		JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		JSONError(c, http.StatusConflict, err.Error())
	default:
		JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
