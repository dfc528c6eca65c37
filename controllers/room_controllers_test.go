package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryCtx(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/room"+query, nil)
	return c
}

func TestPageParamsDefaults(t *testing.T) {
	page, limit := pageParams(queryCtx(t, ""))

	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageLimit, limit)
}

func TestPageParamsParsesQuery(t *testing.T) {
	page, limit := pageParams(queryCtx(t, "?page=3&limit=50"))

	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)
}

func TestPageParamsRejectsNonPositive(t *testing.T) {
	page, limit := pageParams(queryCtx(t, "?page=0&limit=-5"))

	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageLimit, limit)
}

func TestCanServeRoomCacheOnlyForDefaultFirstPage(t *testing.T) {
	assert.True(t, canServeRoomCache(0, 1, defaultPageLimit))

	// Trang khác, limit khác hoặc có lọc theo khu trọ thì phải đọc DB
	assert.False(t, canServeRoomCache(0, 2, defaultPageLimit))
	assert.False(t, canServeRoomCache(0, 1, 50))
	assert.False(t, canServeRoomCache(7, 1, defaultPageLimit))
}
