// Package store owns all chat conversation state.
//
// The ConversationStore is the single source of truth for the conversation
// collection, the current conversation, and the typing flag. All mutation
// goes through it; consumers observe changes through the injected event
// emitter and re-fetch data over the API.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/stormdotcom/friday-code-gpt/pkg/event"
	"github.com/stormdotcom/friday-code-gpt/pkg/models"
	"github.com/stormdotcom/friday-code-gpt/pkg/service"
	"github.com/stormdotcom/friday-code-gpt/pkg/storage"
	"github.com/stormdotcom/friday-code-gpt/pkg/utils"
)

// StorageKey is the fixed key the whole conversation collection is
// serialized under.
const StorageKey = "conversations"

// DefaultTypingDelay is how long the simulated assistant "types" before
// its reply is appended.
const DefaultTypingDelay = 2000 * time.Millisecond

// maxTitleLength bounds titles derived from the first user message; longer
// content is truncated and marked with an ellipsis.
const maxTitleLength = 30

// ErrNoCurrentConversation is returned by SendMessage when no conversation
// is selected.
var ErrNoCurrentConversation = errors.New("no current conversation selected")

// Options configures a ConversationStore. Provider, Responder and Emitter
// are required; TypingDelay defaults to DefaultTypingDelay.
type Options struct {
	Provider    storage.Provider
	Responder   service.Responder
	Emitter     *event.Emitter
	Logger      *slog.Logger
	TypingDelay time.Duration
}

// ConversationStore is the sole owner and mutator of chat state.
type ConversationStore struct {
	mu            sync.RWMutex
	conversations []*models.Conversation // display order, most recent first
	currentID     string
	typing        int // pending assistant replies across all conversations

	nextTimerID int
	pending     map[string]map[int]*time.Timer // conversationID -> timerID -> timer

	provider    storage.Provider
	responder   service.Responder
	emitter     *event.Emitter
	logger      *slog.Logger
	typingDelay time.Duration
}

// New creates a store and loads persisted conversations, falling back to
// the built-in seed set when the key is absent or the data is malformed.
func New(opts Options) *ConversationStore {
	logger := opts.Logger
	if logger == nil {
		logger = utils.GetLogger()
	}
	delay := opts.TypingDelay
	if delay <= 0 {
		delay = DefaultTypingDelay
	}

	s := &ConversationStore{
		pending:     make(map[string]map[int]*time.Timer),
		provider:    opts.Provider,
		responder:   opts.Responder,
		emitter:     opts.Emitter,
		logger:      logger,
		typingDelay: delay,
	}
	s.load()
	return s
}

// load reads the persisted collection. Malformed data is treated the same
// as an absent key: the seed conversations are used and no error surfaces.
func (s *ConversationStore) load() {
	raw, ok, err := s.provider.Get(StorageKey)
	if err != nil {
		s.logger.Warn("Failed to read persisted conversations, using seed data", "error", err)
		s.conversations = SeedConversations()
		return
	}
	if !ok {
		s.conversations = SeedConversations()
		return
	}

	var list []models.Conversation
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.Warn("Persisted conversations are malformed, using seed data", "error", err)
		s.conversations = SeedConversations()
		return
	}

	s.conversations = make([]*models.Conversation, len(list))
	for i := range list {
		s.conversations[i] = &list[i]
	}
}

// persistLocked serializes the whole collection under StorageKey. Write
// failures are logged, never surfaced: persistence is fire-and-forget.
// Caller must hold s.mu.
func (s *ConversationStore) persistLocked() {
	list := make([]models.Conversation, len(s.conversations))
	for i, c := range s.conversations {
		list[i] = *c
	}
	data, err := json.Marshal(list)
	if err != nil {
		s.logger.Error("Failed to serialize conversations", "error", err)
		return
	}
	if err := s.provider.Set(StorageKey, string(data)); err != nil {
		s.logger.Error("Failed to persist conversations", "error", err)
	}
}

func (s *ConversationStore) emit(ev event.Event) {
	if s.emitter != nil {
		s.emitter.Emit(ev)
	}
}

// CreateNewConversation constructs an empty conversation, inserts it at the
// front of the collection, makes it current, and returns its id.
func (s *ConversationStore) CreateNewConversation() string {
	now := time.Now().UnixMilli()
	conv := &models.Conversation{
		ID:        utils.NewID(),
		Title:     models.DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  []models.Message{},
	}

	s.mu.Lock()
	s.conversations = append([]*models.Conversation{conv}, s.conversations...)
	s.currentID = conv.ID
	s.persistLocked()
	s.mu.Unlock()

	s.logger.Info("Conversation created", "conversationId", conv.ID)
	s.emit(event.ConversationCreatedEvent{ConversationID: conv.ID})
	return conv.ID
}

// GetConversation looks a conversation up by id. A missing id is a normal
// outcome, reported via ok=false.
func (s *ConversationStore) GetConversation(id string) (*models.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if conv := s.findLocked(id); conv != nil {
		return conv.Clone(), true
	}
	return nil, false
}

// ListConversations returns the collection in display order, most recently
// created or updated first by insertion discipline.
func (s *ConversationStore) ListConversations() []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		out = append(out, *c.Clone())
	}
	return out
}

// CurrentConversation returns the current conversation, if one is selected.
func (s *ConversationStore) CurrentConversation() (*models.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentID == "" {
		return nil, false
	}
	if conv := s.findLocked(s.currentID); conv != nil {
		return conv.Clone(), true
	}
	return nil, false
}

// SetCurrentConversation selects the conversation with the given id.
// Returns false when the id does not exist; the selection is unchanged.
func (s *ConversationStore) SetCurrentConversation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findLocked(id) == nil {
		return false
	}
	s.currentID = id
	return true
}

// ClearCurrentConversation deselects any current conversation.
func (s *ConversationStore) ClearCurrentConversation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentID = ""
}

// IsTyping reports whether a simulated assistant reply is pending.
func (s *ConversationStore) IsTyping() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.typing > 0
}

// RenameConversation sets the conversation's title (trimmed) and refreshes
// its updated timestamp. Unknown ids are a no-op.
func (s *ConversationStore) RenameConversation(id, title string) {
	title = strings.TrimSpace(title)

	s.mu.Lock()
	conv := s.findLocked(id)
	if conv == nil {
		s.mu.Unlock()
		return
	}
	conv.Title = title
	conv.UpdatedAt = time.Now().UnixMilli()
	s.persistLocked()
	s.mu.Unlock()

	s.logger.Info("Conversation renamed", "conversationId", id, "title", title)
	s.emit(event.ConversationUpdatedEvent{ConversationID: id})
}

// DeleteConversation removes the conversation with the given id, clears the
// current selection if it pointed there, and cancels any pending assistant
// reply for it. Unknown ids are a no-op. Emits a user-visible confirmation
// notification on success.
func (s *ConversationStore) DeleteConversation(id string) {
	s.mu.Lock()
	idx := -1
	for i, c := range s.conversations {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	s.conversations = append(s.conversations[:idx], s.conversations[idx+1:]...)
	if s.currentID == id {
		s.currentID = ""
	}
	cancelled := s.cancelPendingLocked(id)
	typingNow := s.typing > 0
	s.persistLocked()
	s.mu.Unlock()

	s.logger.Info("Conversation deleted", "conversationId", id, "cancelledReplies", cancelled)
	s.emit(event.ConversationDeletedEvent{ConversationID: id})
	if cancelled > 0 {
		s.emit(event.TypingChangedEvent{ConversationID: id, IsTyping: typingNow})
	}
	s.emit(event.NotificationEvent{
		Title:       "Conversation deleted",
		Description: "The conversation has been removed",
	})
}

// cancelPendingLocked stops all reply timers for a conversation and adjusts
// the typing counter. Caller must hold s.mu. Returns how many were cancelled.
func (s *ConversationStore) cancelPendingLocked(conversationID string) int {
	timers := s.pending[conversationID]
	if len(timers) == 0 {
		return 0
	}
	cancelled := 0
	for _, t := range timers {
		if t.Stop() {
			cancelled++
		}
	}
	delete(s.pending, conversationID)
	s.typing -= cancelled
	if s.typing < 0 {
		s.typing = 0
	}
	return cancelled
}

// SendMessage appends a user message to the current conversation and
// schedules the simulated assistant reply. Returns ErrNoCurrentConversation
// when nothing is selected.
func (s *ConversationStore) SendMessage(content string, attachments []models.MessageAttachment) error {
	now := time.Now().UnixMilli()

	s.mu.Lock()
	if s.currentID == "" {
		s.mu.Unlock()
		return ErrNoCurrentConversation
	}
	conv := s.findLocked(s.currentID)
	if conv == nil {
		// Current pointed at a conversation deleted out from under us.
		s.currentID = ""
		s.mu.Unlock()
		return ErrNoCurrentConversation
	}

	userMsg := models.Message{
		ID:             utils.NewID(),
		ConversationID: conv.ID,
		Content:        content,
		Role:           models.RoleUser,
		CreatedAt:      now,
		Attachments:    attachments,
	}

	firstMessage := len(conv.Messages) == 0
	conv.Messages = append(conv.Messages, userMsg)
	conv.UpdatedAt = now

	// The first non-blank message names the conversation; later messages
	// never rename it.
	if firstMessage && strings.TrimSpace(content) != "" {
		conv.Title = deriveTitle(content)
	}

	s.typing++
	conversationID := conv.ID
	timerID := s.nextTimerID
	s.nextTimerID++
	timer := time.AfterFunc(s.typingDelay, func() {
		s.deliverReply(conversationID, timerID, content)
	})
	if s.pending[conversationID] == nil {
		s.pending[conversationID] = make(map[int]*time.Timer)
	}
	s.pending[conversationID][timerID] = timer

	s.persistLocked()
	s.mu.Unlock()

	s.emit(event.MessageAppendedEvent{ConversationID: conversationID, MessageID: userMsg.ID, Role: models.RoleUser})
	s.emit(event.ConversationUpdatedEvent{ConversationID: conversationID})
	s.emit(event.TypingChangedEvent{ConversationID: conversationID, IsTyping: true})
	return nil
}

// deriveTitle builds a conversation title from its first message: the
// content verbatim when short enough, otherwise a truncated prefix with an
// ellipsis marker.
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= maxTitleLength {
		return content
	}
	return string(runes[:maxTitleLength]) + "..."
}

// deliverReply runs when the typing delay elapses. The target conversation
// is re-validated under the lock: if it was deleted in the interim the
// reply is dropped silently.
func (s *ConversationStore) deliverReply(conversationID string, timerID int, userText string) {
	reply := s.responder.GenerateReply(userText)
	now := time.Now().UnixMilli()

	s.mu.Lock()
	if timers := s.pending[conversationID]; timers != nil {
		delete(timers, timerID)
		if len(timers) == 0 {
			delete(s.pending, conversationID)
		}
	}
	s.typing--
	if s.typing < 0 {
		s.typing = 0
	}
	typingNow := s.typing > 0

	conv := s.findLocked(conversationID)
	if conv == nil {
		s.mu.Unlock()
		s.logger.Debug("Dropping assistant reply for deleted conversation", "conversationId", conversationID)
		s.emit(event.TypingChangedEvent{ConversationID: conversationID, IsTyping: typingNow})
		return
	}

	assistantMsg := models.Message{
		ID:             utils.NewID(),
		ConversationID: conversationID,
		Content:        reply,
		Role:           models.RoleAssistant,
		CreatedAt:      now,
	}
	conv.Messages = append(conv.Messages, assistantMsg)
	conv.UpdatedAt = now
	s.persistLocked()
	s.mu.Unlock()

	s.emit(event.MessageAppendedEvent{ConversationID: conversationID, MessageID: assistantMsg.ID, Role: models.RoleAssistant})
	s.emit(event.ConversationUpdatedEvent{ConversationID: conversationID})
	s.emit(event.TypingChangedEvent{ConversationID: conversationID, IsTyping: typingNow})
}

// Close cancels all pending reply timers.
func (s *ConversationStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.pending {
		s.cancelPendingLocked(id)
	}
}

// findLocked returns the conversation with the given id or nil.
// Caller must hold s.mu.
func (s *ConversationStore) findLocked(id string) *models.Conversation {
	for _, c := range s.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}
