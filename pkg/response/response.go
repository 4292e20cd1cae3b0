package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "moment/pkg/errors"
	"moment/pkg/logger"
)

// Success and Created wrap the payload in the {success, data} envelope the
// web client expects. Errors are always rendered as {error: message}.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
	})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Data:    data,
	})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			// Never leak internal error text to clients.
			logger.Error("%s: %v", appErr.Message, appErr.Err)
			return c.JSON(appErr.Status, ErrorResponse{Error: "Internal server error"})
		}
		return c.JSON(appErr.Status, ErrorResponse{Error: appErr.Message})
	}

	logger.Error("unhandled error: %v", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "min":
			message = field + " must be at least " + err.Param()
		case "max":
			message = field + " must be at most " + err.Param()
		case "oneof":
			message = field + " must be one of: " + err.Param()
		case "email":
			message = field + " must be a valid email address"
		case "url":
			message = field + " must be a valid URL"
		default:
			message = field + " is invalid"
		}

		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
	}

	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid input data"})
}
