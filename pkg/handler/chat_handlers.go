// Chat HTTP handlers - conversation management API
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stormdotcom/friday-code-gpt/pkg/models"
	"github.com/stormdotcom/friday-code-gpt/pkg/render"
	"github.com/stormdotcom/friday-code-gpt/pkg/store"
	"github.com/stormdotcom/friday-code-gpt/pkg/utils"
)

// MaxMessageLength caps user message content, matching the composer limit.
const MaxMessageLength = 3000

// ChatHandler handles conversation-related HTTP requests
type ChatHandler struct {
	store *store.ConversationStore
}

// NewChatHandler creates a new chat handler
func NewChatHandler(s *store.ConversationStore) *ChatHandler {
	return &ChatHandler{store: s}
}

// RegisterRoutes registers chat routes
func (h *ChatHandler) RegisterRoutes(r *gin.RouterGroup) {
	conversations := r.Group("/conversations")
	{
		conversations.POST("", h.CreateConversation)
		conversations.GET("", h.ListConversations)
		conversations.GET("/:id", h.GetConversation)
		conversations.PATCH("/:id", h.RenameConversation)
		conversations.DELETE("/:id", h.DeleteConversation)
		conversations.POST("/:id/select", h.SelectConversation)

		conversations.GET("/:id/messages", h.GetMessages)
	}

	r.POST("/chat/messages", h.SendMessage)
	r.GET("/chat/typing", h.TypingState)
}

// CreateConversation creates a new conversation and makes it current
// POST /api/v1/conversations
func (h *ChatHandler) CreateConversation(c *gin.Context) {
	id := h.store.CreateNewConversation()
	conv, ok := h.store.GetConversation(id)
	if !ok {
		utils.GetLogger().Error("created conversation missing from store", "id", id)
		c.JSON(http.StatusInternalServerError, models.Response{Code: 500, Message: "conversation not found after create"})
		return
	}
	c.JSON(http.StatusCreated, models.Response{Code: 200, Message: "Created", Data: conv})
}

// ListConversations lists all conversations, newest first
// GET /api/v1/conversations
func (h *ChatHandler) ListConversations(c *gin.Context) {
	list := h.store.ListConversations()
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "OK", Data: models.ConversationListResponse{
		Conversations: list,
		Total:         len(list),
	}})
}

// GetConversation gets a conversation by ID
// GET /api/v1/conversations/:id
func (h *ChatHandler) GetConversation(c *gin.Context) {
	id := c.Param("id")
	conv, ok := h.store.GetConversation(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.Response{Code: 404, Message: "conversation not found"})
		return
	}
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "OK", Data: conv})
}

// RenameConversation updates a conversation title
// PATCH /api/v1/conversations/:id
func (h *ChatHandler) RenameConversation(c *gin.Context) {
	id := c.Param("id")

	var req models.RenameConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "Invalid request: " + err.Error()})
		return
	}
	if _, ok := h.store.GetConversation(id); !ok {
		c.JSON(http.StatusNotFound, models.Response{Code: 404, Message: "conversation not found"})
		return
	}

	h.store.RenameConversation(id, req.Title)

	conv, _ := h.store.GetConversation(id)
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "OK", Data: conv})
}

// DeleteConversation removes a conversation
// DELETE /api/v1/conversations/:id
func (h *ChatHandler) DeleteConversation(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.GetConversation(id); !ok {
		c.JSON(http.StatusNotFound, models.Response{Code: 404, Message: "conversation not found"})
		return
	}

	h.store.DeleteConversation(id)
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Deleted"})
}

// SelectConversation makes a conversation the current one
// POST /api/v1/conversations/:id/select
func (h *ChatHandler) SelectConversation(c *gin.Context) {
	id := c.Param("id")
	if !h.store.SetCurrentConversation(id) {
		c.JSON(http.StatusNotFound, models.Response{Code: 404, Message: "conversation not found"})
		return
	}
	conv, _ := h.store.GetConversation(id)
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "OK", Data: conv})
}

// renderedMessage pairs a message with its display segments.
type renderedMessage struct {
	models.Message
	Segments []render.Segment `json:"segments"`
}

// GetMessages gets messages for a conversation.
// With ?render=true each message also carries its code/text segments.
// GET /api/v1/conversations/:id/messages
func (h *ChatHandler) GetMessages(c *gin.Context) {
	id := c.Param("id")
	conv, ok := h.store.GetConversation(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.Response{Code: 404, Message: "conversation not found"})
		return
	}

	if c.Query("render") != "true" {
		c.JSON(http.StatusOK, models.Response{Code: 200, Message: "OK", Data: gin.H{
			"messages": conv.Messages,
		}})
		return
	}

	rendered := make([]renderedMessage, 0, len(conv.Messages))
	for _, msg := range conv.Messages {
		rendered = append(rendered, renderedMessage{
			Message:  msg,
			Segments: render.SplitSegments(msg.Content),
		})
	}
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "OK", Data: gin.H{
		"messages": rendered,
	}})
}

// SendMessage appends a user message to the current conversation and
// schedules the assistant reply
// POST /api/v1/chat/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "Invalid request: " + err.Error()})
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" && len(req.Attachments) == 0 {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "message content is empty"})
		return
	}
	if len([]rune(content)) > MaxMessageLength {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "message content exceeds 3000 characters"})
		return
	}

	if req.ConversationID != "" {
		if !h.store.SetCurrentConversation(req.ConversationID) {
			c.JSON(http.StatusNotFound, models.Response{Code: 404, Message: "conversation not found"})
			return
		}
	}

	if err := h.store.SendMessage(content, req.Attachments); err != nil {
		if errors.Is(err, store.ErrNoCurrentConversation) {
			c.JSON(http.StatusConflict, models.Response{Code: 409, Message: "no conversation selected"})
			return
		}
		utils.GetLogger().Error("send message failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.Response{Code: 500, Message: err.Error()})
		return
	}

	conv, _ := h.store.CurrentConversation()
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "OK", Data: conv})
}

// TypingState reports whether an assistant reply is pending
// GET /api/v1/chat/typing
func (h *ChatHandler) TypingState(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "OK", Data: models.TypingStateResponse{
		IsTyping: h.store.IsTyping(),
	}})
}
