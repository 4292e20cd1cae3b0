package response

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "moment/pkg/errors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := newTestContext()

	err := Success(c, map[string]string{"id": "abc"})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"abc"}}`, rec.Body.String())
}

func TestCreatedEnvelope(t *testing.T) {
	c, rec := newTestContext()

	err := Created(c, map[string]string{"id": "abc"})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"abc"}}`, rec.Body.String())
}

func TestErrorMapsAppError(t *testing.T) {
	c, rec := newTestContext()

	err := Error(c, apperrors.Forbidden("You don't have permission to view this booking", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"You don't have permission to view this booking"}`, rec.Body.String())
}

func TestErrorHidesInternalDetail(t *testing.T) {
	c, rec := newTestContext()

	err := Error(c, apperrors.Internal("firestore write failed", fmt.Errorf("rpc deadline exceeded")))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestErrorUnknownErrorIsGeneric(t *testing.T) {
	c, rec := newTestContext()

	err := Error(c, fmt.Errorf("something unexpected"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "something unexpected")
}
