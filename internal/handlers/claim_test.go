package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"toron/internal/db"
	"toron/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimCreate_Validation(t *testing.T) {
	r := setupAPI(t)
	cookies := registerAndLogin(t, r, "writer")

	topic := models.Topic{Title: "tax reform", TopicType: models.TopicTypeTopic}
	require.NoError(t, db.DB.Create(&topic).Error)

	rec := doJSON(t, r, http.MethodPost, "/api/claims", gin.H{
		"topic_id": topic.ID,
		"title":    "raise it",
		"content":  "because",
		"type":     "maybe",
	}, cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/claims", gin.H{
		"topic_id": 9999,
		"title":    "raise it",
		"content":  "because",
		"type":     "pro",
	}, cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/claims", gin.H{
		"topic_id": topic.ID,
		"title":    "raise it",
		"content":  "because",
		"type":     "con",
		"evidence": []gin.H{{"source": "OECD", "text": "figures", "url": "https://example.org"}},
	}, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var evidenceCount int64
	db.DB.Model(&models.Evidence{}).Count(&evidenceCount)
	assert.Equal(t, int64(1), evidenceCount)
}

func TestClaimListByTopic_Enrichment(t *testing.T) {
	r := setupAPI(t)
	claim := createTopicAndClaim(t, "enrichment")
	cookies := registerAndLogin(t, r, "reader")

	var voter models.User
	require.NoError(t, db.DB.Where("username = ?", "reader").First(&voter).Error)

	require.NoError(t, db.DB.Create(&models.Rebuttal{
		ClaimID: claim.ID, UserID: voter.ID, Content: "but", Type: "rebuttal",
	}).Error)
	require.NoError(t, db.DB.Create(&models.Rebuttal{
		ClaimID: claim.ID, UserID: voter.ID, Content: "and", Type: "counter",
	}).Error)

	rec := doJSON(t, r, http.MethodPost, "/api/votes", gin.H{
		"claim_id":  claim.ID,
		"vote_type": "like",
	}, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/claims/topic/%d", claim.TopicID), nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	assert.Equal(t, float64(2), list[0]["rebuttal_count"])
	assert.Equal(t, float64(1), list[0]["votes"])
	assert.Equal(t, "like", list[0]["user_vote"])
	require.NotNil(t, list[0]["author"])

	// Anonymous readers see the list without a vote state.
	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/claims/topic/%d", claim.TopicID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Nil(t, list[0]["user_vote"])
}

func TestClaimGet_RendersMarkdown(t *testing.T) {
	r := setupAPI(t)
	claim := createTopicAndClaim(t, "markdown")
	require.NoError(t, db.DB.Model(&models.Claim{}).Where("id = ?", claim.ID).
		Update("content", "**bold** point").Error)

	rec := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/claims/%d", claim.ID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body["content_html"], "<strong>bold</strong>")

	rec = doJSON(t, r, http.MethodGet, "/api/claims/9999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
