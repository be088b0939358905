package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_PasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantCode int
	}{
		{"too short", "Ab1!", http.StatusBadRequest},
		{"no digit", "Abcdefg!", http.StatusBadRequest},
		{"no special", "Abcdefg1", http.StatusBadRequest},
		{"no letter", "12345678!", http.StatusBadRequest},
		{"valid", "Abcdefg1!", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupAPI(t)
			rec := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
				"username": "newuser",
				"password": tt.password,
			}, nil)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	r := setupAPI(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "taken",
		"password": testPassword,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "taken",
		"password": testPassword,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "username already taken", decodeBody(t, rec)["error"])
}

func TestLogin_WrongPassword(t *testing.T) {
	r := setupAPI(t)
	registerAndLogin(t, r, "alice")

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "Wrong!123",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "nobody",
		"password": testPassword,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_SessionRoundtrip(t *testing.T) {
	r := setupAPI(t)

	rec := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookies := registerAndLogin(t, r, "alice")
	rec = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "alice", body["username"])
	// The password hash must never leave the server.
	assert.NotContains(t, body, "password")
}
