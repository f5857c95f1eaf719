//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"netcafe-booking/internal/domain/user"
	"netcafe-booking/internal/handler/middleware"
	"netcafe-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, svc *jwt.Service, minRole user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	auth := middleware.NewAuthMiddleware(svc)

	handlers := []gin.HandlerFunc{auth.RequireAuth()}
	if minRole != "" {
		handlers = append(handlers, auth.RequireRoleAtLeast(minRole))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	engine.GET("/protected", handlers...)
	return engine
}

func doRequest(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	engine := newAuthRouter(t, svc, "")

	t.Run("valid token", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, doRequest(engine, token).Code)
	})

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(engine, "").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(engine, "not-a-jwt").Code)
	})

	t.Run("token from another secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doRequest(engine, token).Code)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := jwt.NewService("test-secret", -time.Minute)
		token, err := shortLived.GenerateToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doRequest(engine, token).Code)
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	engine := newAuthRouter(t, svc, user.RoleAdmin)

	t.Run("admin passes", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, doRequest(engine, token).Code)
	})

	t.Run("user is rejected", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, doRequest(engine, token).Code)
	})
}
