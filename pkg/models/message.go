// Data model for chat messages and attachments
package models

// Message represents a single turn authored by user, assistant, or system.
type Message struct {
	ID             string              `json:"id"`
	ConversationID string              `json:"conversation_id"`
	Content        string              `json:"content"`
	Role           string              `json:"role"`
	CreatedAt      int64               `json:"created_at"`
	Attachments    []MessageAttachment `json:"attachments,omitempty"`
}

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// MessageAttachment is a named file or image reference attached to a message.
// URLs for images are ephemeral local references, not durable identifiers.
type MessageAttachment struct {
	ID           string `json:"id"`
	Type         string `json:"type"` // image, file
	Name         string `json:"name"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Size         int64  `json:"size,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
}

// Attachment types
const (
	AttachmentTypeImage = "image"
	AttachmentTypeFile  = "file"
)
