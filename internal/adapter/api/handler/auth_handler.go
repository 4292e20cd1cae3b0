package handler

import (
	"github.com/labstack/echo/v4"

	apimiddleware "moment/internal/adapter/api/middleware"
	"moment/internal/usecase"
	"moment/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	UID        string `json:"uid" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Role       string `json:"role" validate:"omitempty,oneof=user provider admin"`
	Experience string `json:"experience"`
	Address    string `json:"address"`
	AadharURL  string `json:"aadharUrl" validate:"omitempty,url"`
}

type setClaimsRequest struct {
	Claims map[string]interface{} `json:"claims" validate:"required"`
}

type setAdminRequest struct {
	AdminSecret string `json:"adminSecret" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		UID:        req.UID,
		Email:      req.Email,
		Name:       req.Name,
		Phone:      req.Phone,
		Role:       req.Role,
		Experience: req.Experience,
		Address:    req.Address,
		AadharURL:  req.AadharURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

func (h *AuthHandler) SetClaims(c echo.Context) error {
	var req setClaimsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	principal := apimiddleware.Principal(c)
	uid := c.Param("uid")

	if err := h.authUseCase.SetClaims(c.Request().Context(), principal, uid, req.Claims); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Claims updated successfully"})
}

func (h *AuthHandler) SetAdmin(c echo.Context) error {
	var req setAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Param("uid")

	if err := h.authUseCase.SetAdmin(c.Request().Context(), uid, req.AdminSecret); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Admin claim set successfully"})
}
