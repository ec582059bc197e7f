package pagination

import (
	"math"

	"gorm.io/gorm"
)

// DefaultPageSize matches the twelve-card grid used by every listing page.
const DefaultPageSize = 12

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided.
// Out-of-range values coming from in-process callers are clamped the same way.
func (p *PageRequest) Defaults(pageSize int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		if pageSize < 1 {
			pageSize = DefaultPageSize
		}
		p.PageSize = pageSize
	}
}

// Offset returns the offset of the first item on the current page. An
// offset too large for an int saturates at math.MaxInt, which lies past the
// end of any list.
func (p *PageRequest) Offset() int {
	if p.Page <= 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: TotalPages(totalItems, pageSize),
	}
}

// TotalPages returns ceil(totalItems / pageSize), or zero for an empty list.
func TotalPages(totalItems int64, pageSize int) int {
	if pageSize < 1 || totalItems <= 0 {
		return 0
	}
	return int((totalItems + int64(pageSize) - 1) / int64(pageSize))
}

// Slice returns the window of items for req. A page past the end yields an
// empty slice rather than an error.
func Slice[T any](items []T, req PageRequest) []T {
	start := req.Offset()
	if start >= len(items) || req.PageSize < 1 {
		return []T{}
	}
	end := start + min(req.PageSize, len(items)-start)
	return items[start:end]
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
// A page whose offset cannot be represented matches no rows.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := req.Offset()
		if offset == math.MaxInt {
			return db.Where("1 = 0")
		}
		return db.Offset(offset).Limit(req.PageSize)
	}
}
