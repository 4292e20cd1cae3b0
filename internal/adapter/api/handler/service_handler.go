package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apimiddleware "moment/internal/adapter/api/middleware"
	"moment/internal/usecase"
	"moment/pkg/response"
	"moment/pkg/utils"
)

type ServiceHandler struct {
	serviceUseCase *usecase.ServiceUseCase
}

func NewServiceHandler(serviceUseCase *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{
		serviceUseCase: serviceUseCase,
	}
}

type createServiceRequest struct {
	ProviderID  string   `json:"providerId" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price" validate:"gte=0"`
	Duration    int      `json:"duration" validate:"gte=0"`
	Images      []string `json:"images"`
	Available   *bool    `json:"available"`
}

type updateServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Duration    *int     `json:"duration" validate:"omitempty,gte=0"`
	Images      []string `json:"images"`
	Available   *bool    `json:"available"`
}

func (h *ServiceHandler) ListServices(c echo.Context) error {
	filter := usecase.ServiceFilter{
		Category: c.QueryParam("category"),
	}
	if raw := c.QueryParam("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err == nil {
			filter.Available = &available
		}
	}

	services, err := h.serviceUseCase.ListServices(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	if utils.PaginationRequested(c) {
		start, end := utils.GetPaginationParams(c).Bounds(len(services))
		services = services[start:end]
	}

	return response.Success(c, services)
}

func (h *ServiceHandler) GetService(c echo.Context) error {
	service, err := h.serviceUseCase.GetServiceByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, service)
}

func (h *ServiceHandler) ListServicesByProvider(c echo.Context) error {
	services, err := h.serviceUseCase.ListByProviderID(c.Request().Context(), c.Param("providerId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, services)
}

func (h *ServiceHandler) CreateService(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	service, err := h.serviceUseCase.CreateService(c.Request().Context(), apimiddleware.Principal(c), usecase.CreateServiceInput{
		ProviderID:  req.ProviderID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Duration:    req.Duration,
		Images:      req.Images,
		Available:   req.Available,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, service)
}

func (h *ServiceHandler) UpdateService(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	service, err := h.serviceUseCase.UpdateService(c.Request().Context(), apimiddleware.Principal(c), c.Param("id"), usecase.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Duration:    req.Duration,
		Images:      req.Images,
		Available:   req.Available,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, service)
}

func (h *ServiceHandler) DeleteService(c echo.Context) error {
	if err := h.serviceUseCase.DeleteService(c.Request().Context(), apimiddleware.Principal(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Service deleted successfully"})
}
