// HTTP API request/response types
package models

// Response is the standard API envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RenameConversationRequest renames an existing conversation.
type RenameConversationRequest struct {
	Title string `json:"title" binding:"required"`
}

// SendMessageRequest appends a user message to the current conversation.
// ConversationID is optional; when set, the conversation is selected first.
type SendMessageRequest struct {
	ConversationID string              `json:"conversation_id,omitempty"`
	Content        string              `json:"content"`
	Attachments    []MessageAttachment `json:"attachments,omitempty"`
}

// ConversationListResponse wraps a conversation listing.
type ConversationListResponse struct {
	Conversations []Conversation `json:"conversations"`
	Total         int            `json:"total"`
}

// TypingStateResponse reports whether an assistant reply is pending.
type TypingStateResponse struct {
	IsTyping bool `json:"is_typing"`
}

// UploadedFile describes one accepted file from the upload endpoint.
type UploadedFile struct {
	ID           string `json:"id"`
	Type         string `json:"type"` // image, file
	Name         string `json:"name"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mime_type"`
}

// UploadResponse is the payload returned by the upload endpoint.
type UploadResponse struct {
	Files []UploadedFile `json:"files"`
}
