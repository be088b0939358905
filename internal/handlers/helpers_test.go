package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"toron/internal/db"
	"toron/internal/middleware"
	"toron/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupAPI wires the handlers onto a fresh engine backed by an
// in-memory SQLite database. Routes mirror the production router; the
// session store uses a fixed test secret.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	old := db.DB
	db.DB = gdb
	t.Cleanup(func() {
		sqlDB, _ := gdb.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		db.DB = old
	})

	r := gin.New()
	r.Use(sessions.Sessions("toron_session", cookie.NewStore([]byte("test-secret"))))
	r.Use(middleware.LoadUser())

	authHandler := NewAuthHandler()
	claimHandler := NewClaimHandler()
	voteHandler := NewVoteHandler()

	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/auth/me", authHandler.Me)
	r.GET("/api/claims/topic/:topicID", claimHandler.ListByTopic)
	r.GET("/api/claims/:id", claimHandler.Get)
	r.POST("/api/claims", middleware.AuthRequired(), claimHandler.Create)
	r.POST("/api/votes", middleware.AuthRequired(), voteHandler.Cast)
	r.GET("/api/votes/claim/:id", middleware.AuthRequired(), voteHandler.ClaimVote)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const testPassword = "Secret!123"

// registerAndLogin creates an account through the API and returns the
// session cookies of a live login.
func registerAndLogin(t *testing.T, r *gin.Engine, username string) []*http.Cookie {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": username,
		"password": testPassword,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": username,
		"password": testPassword,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return rec.Result().Cookies()
}

func createTopicAndClaim(t *testing.T, title string) models.Claim {
	t.Helper()

	author := models.User{Username: title + "-author", Password: "x", Level: models.LevelMember}
	require.NoError(t, db.DB.Create(&author).Error)
	topic := models.Topic{Title: title, TopicType: models.TopicTypeTopic}
	require.NoError(t, db.DB.Create(&topic).Error)
	claim := models.Claim{TopicID: topic.ID, UserID: author.ID, Title: title, Content: "body", Type: "pro"}
	require.NoError(t, db.DB.Create(&claim).Error)
	return claim
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
