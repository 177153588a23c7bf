package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/auth"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubDecoder map[string]auth.Identity

func (s stubDecoder) Decode(token string) (*auth.Identity, error) {
	identity, ok := s[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	return &identity, nil
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		c.String(http.StatusOK, identity.Username)
	})
	router.GET("/tasks/:id", handlers...)
	return router
}

func serve(router *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	decoder := stubDecoder{"good": {ID: 1, Username: "alice", Role: models.RoleManager}}
	router := newRouter(RequireAuth(decoder))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"raw token", "good", http.StatusOK},
		{"bearer token", "Bearer good", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"bad token", "Bearer bad", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, "/tasks/1", tt.header)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "alice", w.Body.String())
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	decoder := stubDecoder{
		"manager":  {ID: 1, Username: "m", Role: models.RoleManager},
		"employee": {ID: 2, Username: "e", Role: models.RoleEmployee},
	}
	router := newRouter(RequireAuth(decoder), RequireRoles(models.RoleAdmin, models.RoleManager))

	assert.Equal(t, http.StatusOK, serve(router, "/tasks/1", "manager").Code)
	assert.Equal(t, http.StatusForbidden, serve(router, "/tasks/1", "employee").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, "/tasks/1", "").Code)
}

func TestRequireRoles_WithoutAuth(t *testing.T) {
	router := newRouter(RequireRoles(models.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, serve(router, "/tasks/1", "").Code)
}

func TestRequireTaskID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/tasks/:id", RequireTaskID(), func(c *gin.Context) {
		id, ok := GetTaskID(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, id)
	})

	w := serve(router, "/tasks/42", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())

	assert.Equal(t, http.StatusBadRequest, serve(router, "/tasks/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, "/tasks/0", "").Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	decoder := stubDecoder{"good": {ID: 9, Username: "alice", Role: models.RoleAdmin}}
	router := newRouter(RequestLogger(logger), RequireAuth(decoder))

	serve(router, "/tasks/1", "good")

	out := buf.String()
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/tasks/1")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "user_id=9")
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetUserID(c)
	assert.False(t, ok)

	c.Set("user_id", uint64(9))
	id, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, uint64(9), id)

	c.Set("user_id", 9)
	_, ok = GetUserID(c)
	assert.False(t, ok)
}
