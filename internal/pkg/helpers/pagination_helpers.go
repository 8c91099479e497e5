package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/backend/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
	DefaultPage     = 1
)

// ParsePaginationParams extracts and validates page/limit query parameters.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = DefaultPageSize
	} else if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return page, limit
}

// CalculateOffset converts a 1-based page number to a SQL offset.
func CalculateOffset(page, limit int) int {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	return (page - 1) * limit
}

// NewPaginationInfo builds the standard pagination envelope.
// pages = ceil(total/limit).
func NewPaginationInfo(total int64, page, limit int) dto.PaginationInfo {
	if limit < 1 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return dto.PaginationInfo{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
