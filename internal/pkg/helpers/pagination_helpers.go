package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage = 1
	MaxPageSize = 100
)

// ParsePaginationParams extracts 1-based page and limit query parameters,
// falling back to page 1 and the given default limit on bad input.
func ParsePaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 || limit > MaxPageSize {
		limit = defaultLimit
	}

	return page, limit
}

// CalculateOffsetLimit converts a 1-based page number to a SQL offset.
func CalculateOffsetLimit(page, limit int) (offset uint64) {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = 1
	}
	return uint64((page - 1) * limit)
}

// PageCount returns ceil(total/limit).
func PageCount(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
