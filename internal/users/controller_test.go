package users

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestCurrentUserID(t *testing.T) {
	c := testContext(t)
	want := uuid.New()
	c.Set("user_id", want.String())

	id, ok := currentUserID(c)
	assert.True(t, ok)
	assert.Equal(t, want, id)
}

func TestCurrentUserIDMissing(t *testing.T) {
	id, ok := currentUserID(testContext(t))
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
}

func TestCurrentUserIDRejectsNonString(t *testing.T) {
	c := testContext(t)
	c.Set("user_id", 12345)

	id, ok := currentUserID(c)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
}

func TestCurrentUserIDRejectsMalformedID(t *testing.T) {
	c := testContext(t)
	c.Set("user_id", "not-a-uuid")

	_, ok := currentUserID(c)
	assert.False(t, ok)
}
