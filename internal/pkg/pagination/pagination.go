package pagination

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harborview/realty-core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultPage = 1
	DefaultSize = 9
	MaxSize     = 50
)

// Query holds parsed pagination parameters.
type Query struct {
	Page int
	Size int
}

// FromContext extracts and validates pagination params from the request.
// A page size above MaxSize is a validation error, not a silent clamp.
func FromContext(c *gin.Context) (Query, error) {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	size := parseIntOr(c.DefaultQuery("pageSize", "9"), DefaultSize)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		return Query{}, fmt.Errorf("pageSize must not exceed %d", MaxSize)
	}

	return Query{Page: page, Size: size}, nil
}

// Paginate applies limit/offset to a GORM query and returns the pagination
// metadata. Pages past the end yield an empty result with true totals.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}

	offset := (q.Page - 1) * q.Size
	if err := db.Offset(offset).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	totalPages := int((total + int64(q.Size) - 1) / int64(q.Size))

	return response.Pagination{
		Page:       q.Page,
		PageSize:   q.Size,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
