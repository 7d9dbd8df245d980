package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestCurrentUserID(t *testing.T) {
	c := testContext()
	assert.Zero(t, CurrentUserID(c))

	c.Set("userId", uint(42))
	assert.Equal(t, uint(42), CurrentUserID(c))
}

func TestCurrentRole(t *testing.T) {
	c := testContext()
	assert.Empty(t, CurrentRole(c))

	c.Set("role", "admin")
	assert.Equal(t, "admin", CurrentRole(c))
}
