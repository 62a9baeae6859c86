// Mock upload endpoint - generates attachment metadata without real storage
package service

import (
	"log/slog"
	"strings"

	"github.com/stormdotcom/friday-code-gpt/pkg/models"
	"github.com/stormdotcom/friday-code-gpt/pkg/utils"
)

// FileInfo describes one incoming file from the upload boundary.
type FileInfo struct {
	Name     string
	Size     int64
	MimeType string
}

// UploadService accepts file metadata and returns attachment descriptors.
// No bytes are stored; retrieval URLs are generated identifiers only.
type UploadService struct {
	logger *slog.Logger
}

// NewUploadService creates a new upload service.
func NewUploadService(logger *slog.Logger) *UploadService {
	return &UploadService{logger: logger}
}

// Accept classifies each file as image or generic file and assigns an id
// and retrieval URL per file.
func (s *UploadService) Accept(files []FileInfo) []models.UploadedFile {
	uploaded := make([]models.UploadedFile, 0, len(files))
	for _, f := range files {
		isImage := strings.HasPrefix(f.MimeType, "image/")

		file := models.UploadedFile{
			ID:       utils.NewID(),
			Name:     f.Name,
			Size:     f.Size,
			MimeType: f.MimeType,
			Type:     models.AttachmentTypeFile,
			URL:      "/api/files/" + utils.NewID(),
		}
		if isImage {
			file.Type = models.AttachmentTypeImage
			file.ThumbnailURL = file.URL
		}

		s.logger.Debug("Accepted upload", "name", f.Name, "size", f.Size, "type", file.Type)
		uploaded = append(uploaded, file)
	}
	return uploaded
}

// ToAttachment converts an uploaded file descriptor into a message attachment.
func ToAttachment(f models.UploadedFile) models.MessageAttachment {
	return models.MessageAttachment{
		ID:           f.ID,
		Type:         f.Type,
		Name:         f.Name,
		URL:          f.URL,
		ThumbnailURL: f.ThumbnailURL,
		Size:         f.Size,
		MimeType:     f.MimeType,
	}
}
