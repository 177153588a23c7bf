package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, "Projects are retrieved", []string{"P1"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Projects are retrieved", resp.Message)
	assert.Equal(t, []any{"P1"}, resp.Data)
}

func TestErrorHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		send    func(*gin.Context)
		status  int
		message string
	}{
		{"unauthorized default", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, "Authentication required"},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "nope") }, http.StatusForbidden, "nope"},
		{"not found", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound, "Resource not found"},
		{"conflict", func(c *gin.Context) { Conflict(c, "dup") }, http.StatusConflict, "dup"},
		{"precondition", func(c *gin.Context) { PreconditionFailed(c, "") }, http.StatusPreconditionFailed, "Precondition failed"},
		{"internal", func(c *gin.Context) { InternalError(c, "Something went wrong, try again!") }, http.StatusInternalServerError, "Something went wrong, try again!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.send(c)

			assert.True(t, c.IsAborted())
			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.status, resp.Code)
			assert.Equal(t, tt.message, resp.Message)
			assert.Nil(t, resp.Data)
		})
	}
}
