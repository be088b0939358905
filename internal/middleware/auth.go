package middleware

import (
	"net/http"
	"toron/internal/db"
	"toron/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser retrieves user from session and sets to context
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			var user models.User
			result := db.DB.First(&user, userID)
			if result.Error == nil {
				c.Set(CheckUserKey, &user)
			}
		}
		c.Next()
	}
}

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}

// AdminRequired ensures the caller has the administrator level. Runs
// after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "administrator privileges required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user loaded by LoadUser, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	u, exists := c.Get(CheckUserKey)
	if !exists {
		return nil, false
	}
	user, ok := u.(*models.User)
	return user, ok
}

// CurrentUserID returns the caller's id, zero when anonymous.
func CurrentUserID(c *gin.Context) uint {
	if user, ok := CurrentUser(c); ok {
		return user.ID
	}
	return 0
}
