package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labax/labax-server/utils"
)

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func serveError(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/resource", handler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestErrorHandlerTranslatesApiError(t *testing.T) {
	w, body := serveError(t, func(c *gin.Context) {
		c.Error(utils.CreateNotFoundError("Demo request"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Demo request not found", body.Message)
	assert.Equal(t, "RESOURCE_NOT_FOUND", body.Code)
}

func TestErrorHandlerTranslatesBadRequest(t *testing.T) {
	w, body := serveError(t, func(c *gin.Context) {
		c.Error(utils.CreateBadRequestError("Invalid status"))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status", body.Message)
	assert.Equal(t, "BAD_REQUEST", body.Code)
}

func TestErrorHandlerDefaultsToInternalError(t *testing.T) {
	w, body := serveError(t, func(c *gin.Context) {
		c.Error(fmt.Errorf("connection reset"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestErrorHandlerSkipsWrittenResponses(t *testing.T) {
	w, body := serveError(t, func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "already handled"})
		c.Error(fmt.Errorf("ignored"))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "already handled", body.Message)
}
