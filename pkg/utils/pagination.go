package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PaginationParams holds the page window parsed from the request query.
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// PaginationRequested reports whether the client asked for a page window.
// List endpoints return the full result set when neither param is present.
func PaginationRequested(c echo.Context) bool {
	return c.QueryParam("page") != "" || c.QueryParam("limit") != ""
}

// GetPaginationParams reads page/limit query params with a default page size
// of 20, capped at 100.
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

// Bounds clips the window to a result set of n items, returning the slice
// indexes for the requested page.
func (p PaginationParams) Bounds(n int) (int, int) {
	start := p.Offset
	if start > n {
		start = n
	}
	end := start + p.PageSize
	if end > n {
		end = n
	}
	return start, end
}
