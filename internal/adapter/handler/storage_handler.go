package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/thien06012001/backend/errors"
	"github.com/thien06012001/backend/internal/infrastructure/storage"
)

// allowed image types for avatar and event image uploads
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Storage handles file upload HTTP requests
type Storage struct {
	client *storage.MinIOClient
	logger *zap.Logger
}

// NewStorageHandler creates a new storage handler
func NewStorageHandler(client *storage.MinIOClient, logger *zap.Logger) *Storage {
	return &Storage{
		client: client,
		logger: logger,
	}
}

// UploadResponse carries the public URL of an uploaded object
type UploadResponse struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
}

// Upload handles POST /uploads. The multipart field is "file" and the
// optional "kind" form value prefixes the object path (avatar, event).
func (h *Storage) Upload(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("missing file field"))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("unsupported file type"))
	}

	kind := c.FormValue("kind")
	if kind != "avatar" && kind != "event" {
		kind = "uploads"
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, fmt.Errorf("failed to open upload: %w", err))
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	objectName := fmt.Sprintf("%s/%s/%d-%s%s",
		kind, caller.String(), time.Now().Unix(), uuid.NewString()[:8], ext)

	url, err := h.client.UploadFile(c.Request().Context(), objectName, src, fileHeader.Size, contentType)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrStorage(err))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, &UploadResponse{
		URL:        url,
		ObjectName: objectName,
	})
}
