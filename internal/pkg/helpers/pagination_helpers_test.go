package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePaginationParams(t *testing.T) {
	page, limit := ParsePaginationParams(ctxWithQuery("page=3&limit=25"), 10)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	page, limit = ParsePaginationParams(ctxWithQuery(""), 10)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = ParsePaginationParams(ctxWithQuery("page=-2&limit=0"), 10)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = ParsePaginationParams(ctxWithQuery("page=abc&limit=xyz"), 20)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	_, limit = ParsePaginationParams(ctxWithQuery("limit=5000"), 10)
	assert.Equal(t, 10, limit)
}

func TestCalculateOffsetLimit(t *testing.T) {
	assert.Equal(t, uint64(0), CalculateOffsetLimit(1, 10))
	assert.Equal(t, uint64(20), CalculateOffsetLimit(3, 10))
	assert.Equal(t, uint64(0), CalculateOffsetLimit(0, 10))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(1, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 0, PageCount(5, 0))
}
