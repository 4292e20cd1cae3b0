package handler

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"

	"github.com/labstack/echo/v4"

	"moment/internal/infrastructure/storage"
	"moment/pkg/errors"
	"moment/pkg/logger"
	"moment/pkg/response"
)

// FileStorage is the upload-relay contract the gateway consumes.
type FileStorage interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (*storage.UploadResult, error)
	DeleteFile(ctx context.Context, publicID string) error
}

type UploadHandler struct {
	storage     FileStorage
	maxFileSize int64
}

func NewUploadHandler(storage FileStorage) *UploadHandler {
	return &UploadHandler{
		storage:     storage,
		maxFileSize: 5 * 1024 * 1024,
	}
}

var allowedFileTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// Upload handles the public registration-time document upload.
func (h *UploadHandler) Upload(c echo.Context) error {
	result, err := h.relay(c, "file", "moment/aadhar")
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *UploadHandler) UploadSingle(c echo.Context) error {
	result, err := h.relay(c, "image", "moment")
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *UploadHandler) UploadMultiple(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("No files uploaded", err))
	}

	files := form.File["images"]
	if len(files) == 0 {
		return response.Error(c, errors.BadRequest("No files uploaded", nil))
	}
	if len(files) > 10 {
		return response.Error(c, errors.BadRequest("At most 10 files per upload", nil))
	}

	results := make([]*storage.UploadResult, 0, len(files))
	for _, file := range files {
		result, err := h.relayFile(c.Request().Context(), file, "moment")
		if err != nil {
			return response.Error(c, err)
		}
		results = append(results, result)
	}

	return response.Success(c, map[string]interface{}{"images": results})
}

func (h *UploadHandler) Delete(c echo.Context) error {
	publicID, err := url.PathUnescape(c.Param("publicId"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid public id", err))
	}

	if err := h.storage.DeleteFile(c.Request().Context(), publicID); err != nil {
		logger.Error("failed to delete file %s: %v", publicID, err)
		return response.Error(c, errors.Internal("Failed to delete file", err))
	}

	return response.Success(c, map[string]string{"message": "Image deleted successfully"})
}

func (h *UploadHandler) relay(c echo.Context, field, folder string) (*storage.UploadResult, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, errors.BadRequest("No file uploaded", err)
	}

	return h.relayFile(c.Request().Context(), file, folder)
}

func (h *UploadHandler) relayFile(ctx context.Context, file *multipart.FileHeader, folder string) (*storage.UploadResult, error) {
	if file.Size > h.maxFileSize {
		return nil, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil)
	}

	fileType := file.Header.Get("Content-Type")
	if !allowedFileTypes[fileType] {
		return nil, errors.BadRequest("File type not supported", nil)
	}

	src, err := file.Open()
	if err != nil {
		return nil, errors.Internal("Unable to read file", err)
	}
	defer src.Close()

	result, err := h.storage.UploadFile(ctx, src, fileType, folder)
	if err != nil {
		return nil, errors.Internal("Failed to upload file", err)
	}

	return result, nil
}
