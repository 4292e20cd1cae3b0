package handler

import (
	"github.com/labstack/echo/v4"

	apimiddleware "moment/internal/adapter/api/middleware"
	"moment/internal/usecase"
	"moment/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUseCase.ListUsers(c.Request().Context(), apimiddleware.Principal(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetUser(c.Request().Context(), apimiddleware.Principal(c), c.Param("uid"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateUser(c.Request().Context(), apimiddleware.Principal(c), c.Param("uid"), usecase.UpdateUserInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userUseCase.DeleteUser(c.Request().Context(), apimiddleware.Principal(c), c.Param("uid")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "User deleted successfully"})
}
