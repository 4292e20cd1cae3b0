package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"moment/internal/domain/entity"
	"moment/internal/usecase"
)

type listOnlyProviderRepo struct {
	providers []*entity.Provider
}

func (r *listOnlyProviderRepo) Create(ctx context.Context, provider *entity.Provider) error {
	r.providers = append(r.providers, provider)
	return nil
}

func (r *listOnlyProviderRepo) GetByID(ctx context.Context, id string) (*entity.Provider, error) {
	return nil, nil
}

func (r *listOnlyProviderRepo) GetByUID(ctx context.Context, uid string) (*entity.Provider, error) {
	return nil, nil
}

func (r *listOnlyProviderRepo) Update(ctx context.Context, provider *entity.Provider) error {
	return nil
}

func (r *listOnlyProviderRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (r *listOnlyProviderRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Provider, error) {
	return r.providers, nil
}

func listProvidersResponse(t *testing.T, h *ProviderHandler, rawQuery string) []json.RawMessage {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/providers?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListProviders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestListProvidersReturnsFullSetWithoutPageParams(t *testing.T) {
	repo := &listOnlyProviderRepo{}
	for i := 0; i < 25; i++ {
		repo.providers = append(repo.providers, &entity.Provider{
			ID:  fmt.Sprintf("p%d", i),
			UID: fmt.Sprintf("u%d", i),
		})
	}
	h := NewProviderHandler(usecase.NewProviderUseCase(repo, nil))

	data := listProvidersResponse(t, h, "")
	assert.Len(t, data, 25)
}

func TestListProvidersPaginatesOnRequest(t *testing.T) {
	repo := &listOnlyProviderRepo{}
	for i := 0; i < 25; i++ {
		repo.providers = append(repo.providers, &entity.Provider{
			ID:  fmt.Sprintf("p%d", i),
			UID: fmt.Sprintf("u%d", i),
		})
	}
	h := NewProviderHandler(usecase.NewProviderUseCase(repo, nil))

	assert.Len(t, listProvidersResponse(t, h, "limit=10"), 10)
	assert.Len(t, listProvidersResponse(t, h, "page=2&limit=10"), 10)
	assert.Len(t, listProvidersResponse(t, h, "page=3&limit=10"), 5)
	assert.Len(t, listProvidersResponse(t, h, "page=2"), 5)
}
