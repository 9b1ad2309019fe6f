package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"eventbuka/internal/shared/roles"
)

func roleEngine(role string, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if role != "" {
			c.Set("user_role", role)
		}
		c.Next()
	})
	engine.GET("/guarded", guard, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func serve(engine *gin.Engine) int {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	engine.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequireAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(roleEngine(string(roles.Admin), RequireAdmin())))
	assert.Equal(t, http.StatusForbidden, serve(roleEngine(string(roles.User), RequireAdmin())))
	assert.Equal(t, http.StatusUnauthorized, serve(roleEngine("", RequireAdmin())))
}

func TestRequireOrganizerOrAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(roleEngine(string(roles.Organizer), RequireOrganizerOrAdmin())))
	assert.Equal(t, http.StatusOK, serve(roleEngine(string(roles.Admin), RequireOrganizerOrAdmin())))
	assert.Equal(t, http.StatusForbidden, serve(roleEngine(string(roles.Sponsor), RequireOrganizerOrAdmin())))
}

func TestRequireRole(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(roleEngine("PARTNER", RequireRole("PARTNER"))))
	assert.Equal(t, http.StatusForbidden, serve(roleEngine("USER", RequireRole("PARTNER"))))
}
