package utils

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
)

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams extracts pagination parameters from request
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	// Any page past this one is empty anyway; keep the offset from overflowing.
	if maxPage := math.MaxInt/pageSize - 1; page > maxPage {
		page = maxPage
	}

	offset := (page - 1) * pageSize

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   offset,
	}
}

// Page slices an already ordered, in-memory result set. Listings here are
// small and fully materialized by the repositories, so paging happens last.
func Page[T any](items []T, p PaginationParams) []T {
	if p.Offset < 0 || p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.PageSize
	if end > len(items) || end < p.Offset {
		end = len(items)
	}
	return items[p.Offset:end]
}
