package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func contextFor(rawQuery string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/providers?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func paramsFor(rawQuery string) PaginationParams {
	return GetPaginationParams(contextFor(rawQuery))
}

func TestPaginationRequested(t *testing.T) {
	assert.False(t, PaginationRequested(contextFor("")))
	assert.False(t, PaginationRequested(contextFor("status=approved")))
	assert.True(t, PaginationRequested(contextFor("page=2")))
	assert.True(t, PaginationRequested(contextFor("limit=10")))
	assert.True(t, PaginationRequested(contextFor("page=2&limit=10")))
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	p := paramsFor("")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 0, p.Offset)
}

func TestGetPaginationParamsParsesQuery(t *testing.T) {
	p := paramsFor("page=3&limit=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 20, p.Offset)
}

func TestGetPaginationParamsClampsInvalid(t *testing.T) {
	p := paramsFor("page=-1&limit=500")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
}

func TestBounds(t *testing.T) {
	p := PaginationParams{Page: 1, PageSize: 20, Offset: 0}
	start, end := p.Bounds(5)
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)

	p = PaginationParams{Page: 2, PageSize: 10, Offset: 10}
	start, end = p.Bounds(15)
	assert.Equal(t, 10, start)
	assert.Equal(t, 15, end)

	// A page past the end yields an empty window, not a panic.
	p = PaginationParams{Page: 9, PageSize: 20, Offset: 160}
	start, end = p.Bounds(15)
	assert.Equal(t, 15, start)
	assert.Equal(t, 15, end)
}
