package event

// ============================================================================
// Event Names (constants)
// ============================================================================

const (
	ConversationCreated = "conversation.created"
	ConversationUpdated = "conversation.updated"
	ConversationDeleted = "conversation.deleted"
	TypingChanged       = "chat.typingChanged"
	MessageAppended     = "chat.messageAppended"
	Notification        = "ui.notification"
)

// ============================================================================
// Conversation Events
// ============================================================================

// ConversationCreatedEvent is emitted when a conversation is created.
type ConversationCreatedEvent struct {
	ConversationID string `json:"conversation_id"`
}

func (e ConversationCreatedEvent) EventName() string { return ConversationCreated }

// ConversationUpdatedEvent is emitted when a conversation is renamed or
// its messages change.
type ConversationUpdatedEvent struct {
	ConversationID string `json:"conversation_id"`
}

func (e ConversationUpdatedEvent) EventName() string { return ConversationUpdated }

// ConversationDeletedEvent is emitted when a conversation is removed.
type ConversationDeletedEvent struct {
	ConversationID string `json:"conversation_id"`
}

func (e ConversationDeletedEvent) EventName() string { return ConversationDeleted }

// ============================================================================
// Chat Events
// ============================================================================

// TypingChangedEvent is emitted when the simulated assistant starts or
// stops composing a reply.
type TypingChangedEvent struct {
	ConversationID string `json:"conversation_id"`
	IsTyping       bool   `json:"is_typing"`
}

func (e TypingChangedEvent) EventName() string { return TypingChanged }

// MessageAppendedEvent is emitted when a message is appended to a conversation.
type MessageAppendedEvent struct {
	ConversationID string `json:"conversation_id"`
	MessageID      string `json:"message_id"`
	Role           string `json:"role"`
}

func (e MessageAppendedEvent) EventName() string { return MessageAppended }

// ============================================================================
// UI Events
// ============================================================================

// NotificationEvent carries a short title/description pair for transient
// user-visible confirmations (e.g. conversation deleted).
type NotificationEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (e NotificationEvent) EventName() string { return Notification }
