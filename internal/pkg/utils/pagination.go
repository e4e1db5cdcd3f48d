package utils

import (
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// Pagination holds the resolved paging window of a list request
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Offset returns the row offset of the window
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePagination reads page/pageSize query parameters, falling back to sane
// defaults for missing or out-of-range values.
func ParsePagination(r *http.Request) Pagination {
	p := Pagination{Page: 1, PageSize: defaultPageSize}

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Page = n
		}
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxPageSize {
			p.PageSize = n
		}
	}

	return p
}
