// Upload HTTP handlers - multipart file metadata intake
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stormdotcom/friday-code-gpt/pkg/models"
	"github.com/stormdotcom/friday-code-gpt/pkg/service"
	"github.com/stormdotcom/friday-code-gpt/pkg/utils"
)

// UploadHandler handles file upload requests
type UploadHandler struct {
	uploads *service.UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// RegisterRoutes registers upload routes
func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/upload", h.Upload)
}

// Upload accepts a multipart form and returns attachment descriptors for
// each file. Bytes are discarded; only metadata is kept.
// POST /api/v1/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.GetLogger().Warn("Upload rejected", "error", err)
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "Invalid multipart form: " + err.Error()})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "no files provided"})
		return
	}

	files := make([]service.FileInfo, 0, len(headers))
	for _, fh := range headers {
		files = append(files, service.FileInfo{
			Name:     fh.Filename,
			Size:     fh.Size,
			MimeType: fh.Header.Get("Content-Type"),
		})
	}

	uploaded := h.uploads.Accept(files)
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "OK", Data: models.UploadResponse{
		Files: uploaded,
	}})
}
