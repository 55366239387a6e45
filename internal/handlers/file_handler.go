package handlers

import (
	"io"
	"mime"
	"path/filepath"

	"sentosa_backend/internal/storage"
	"sentosa_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler serves stored images back by their literal filename,
// mirroring the legacy /uploads static path.
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, storage storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     storage,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/uploads/:imageName", h.ServeImage)
}

func (h *FileHandler) ServeImage(c *gin.Context) {
	// Base strips any path traversal out of the parameter.
	imageName := filepath.Base(c.Param("imageName"))

	reader, err := h.storage.Get(c.Request.Context(), imageName)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewNotFoundError("File not found"))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(imageName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", "inline")

	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out; nothing left to send.
		c.Error(err)
	}
}
