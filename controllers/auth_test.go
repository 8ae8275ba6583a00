package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labax/labax-server/config"
	"github.com/labax/labax-server/utils"
)

func newAuthRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	ctl := NewAuthController(cfg)
	router.POST("/api/auth/login", ctl.Login)
	return router
}

func TestLoginIssuesToken(t *testing.T) {
	cfg := &config.Config{AdminPassword: "s3cret", JWTKey: "test-key"}
	router := newAuthRouter(cfg)

	w, _ := doJSON(router, http.MethodPost, "/api/auth/login", map[string]string{"password": "s3cret"})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotEmpty(t, body.Token)
	assert.NoError(t, utils.ParseAdminToken("test-key", body.Token))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	cfg := &config.Config{AdminPassword: "s3cret", JWTKey: "test-key"}
	router := newAuthRouter(cfg)

	w, env := doJSON(router, http.MethodPost, "/api/auth/login", map[string]string{"password": "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid credentials", env.Message)
}

func TestLoginRequiresPassword(t *testing.T) {
	cfg := &config.Config{AdminPassword: "s3cret", JWTKey: "test-key"}
	router := newAuthRouter(cfg)

	w, _ := doJSON(router, http.MethodPost, "/api/auth/login", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
