package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apimiddleware "moment/internal/adapter/api/middleware"
	"moment/internal/usecase"
	"moment/pkg/response"
	"moment/pkg/utils"
)

type ProviderHandler struct {
	providerUseCase *usecase.ProviderUseCase
}

func NewProviderHandler(providerUseCase *usecase.ProviderUseCase) *ProviderHandler {
	return &ProviderHandler{
		providerUseCase: providerUseCase,
	}
}

type createProviderRequest struct {
	BusinessName string   `json:"businessName" validate:"required"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"required,oneof=venue vendor entertainment other"`
	Location     string   `json:"location"`
	City         string   `json:"city"`
	PriceRange   string   `json:"priceRange"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Avatar       string   `json:"avatar"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	Experience   string   `json:"experience"`
	Address      string   `json:"address"`
	AadharURL    string   `json:"aadharUrl"`
}

type updateProviderRequest struct {
	UID          string   `json:"uid"`
	BusinessName string   `json:"businessName"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"omitempty,oneof=venue vendor entertainment other"`
	Location     string   `json:"location"`
	City         string   `json:"city"`
	PriceRange   string   `json:"priceRange"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Avatar       string   `json:"avatar"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	Experience   string   `json:"experience"`
	Address      string   `json:"address"`
}

type providerStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type providerPublishRequest struct {
	Published *bool `json:"published" validate:"required"`
}

func (h *ProviderHandler) ListProviders(c echo.Context) error {
	filter := usecase.ProviderFilter{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
	}
	if raw := c.QueryParam("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err == nil {
			filter.Published = &published
		}
	}

	providers, err := h.providerUseCase.ListProviders(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	if utils.PaginationRequested(c) {
		start, end := utils.GetPaginationParams(c).Bounds(len(providers))
		providers = providers[start:end]
	}

	return response.Success(c, providers)
}

func (h *ProviderHandler) GetProvider(c echo.Context) error {
	provider, err := h.providerUseCase.GetProviderByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, provider)
}

func (h *ProviderHandler) GetProviderByUser(c echo.Context) error {
	provider, err := h.providerUseCase.GetProviderByUID(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, provider)
}

func (h *ProviderHandler) CreateProvider(c echo.Context) error {
	var req createProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	provider, err := h.providerUseCase.CreateProvider(c.Request().Context(), apimiddleware.Principal(c), usecase.CreateProviderInput{
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		City:         req.City,
		PriceRange:   req.PriceRange,
		Phone:        req.Phone,
		Email:        req.Email,
		Avatar:       req.Avatar,
		Images:       req.Images,
		Features:     req.Features,
		Experience:   req.Experience,
		Address:      req.Address,
		AadharURL:    req.AadharURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, provider)
}

func (h *ProviderHandler) UpdateProvider(c echo.Context) error {
	var req updateProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	provider, err := h.providerUseCase.UpdateProvider(c.Request().Context(), apimiddleware.Principal(c), c.Param("id"), usecase.UpdateProviderInput{
		UID:          req.UID,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		City:         req.City,
		PriceRange:   req.PriceRange,
		Phone:        req.Phone,
		Email:        req.Email,
		Avatar:       req.Avatar,
		Images:       req.Images,
		Features:     req.Features,
		Experience:   req.Experience,
		Address:      req.Address,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, provider)
}

func (h *ProviderHandler) UpdateProviderStatus(c echo.Context) error {
	var req providerStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	provider, err := h.providerUseCase.UpdateStatus(c.Request().Context(), apimiddleware.Principal(c), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, provider)
}

func (h *ProviderHandler) SetProviderPublished(c echo.Context) error {
	var req providerPublishRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	provider, err := h.providerUseCase.SetPublished(c.Request().Context(), apimiddleware.Principal(c), c.Param("id"), *req.Published)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, provider)
}

func (h *ProviderHandler) DeleteProvider(c echo.Context) error {
	if err := h.providerUseCase.DeleteProvider(c.Request().Context(), apimiddleware.Principal(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Provider deleted successfully"})
}
