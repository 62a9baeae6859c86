// Data model for chat conversations
package models

// Conversation represents a titled, timestamped, ordered sequence of messages.
// Timestamps are milliseconds since epoch to match what clients render.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt int64     `json:"created_at"`
	UpdatedAt int64     `json:"updated_at"`
	Messages  []Message `json:"messages"`
}

// DefaultTitle is the placeholder title of a freshly created conversation,
// replaced once the first user message arrives.
const DefaultTitle = "New conversation"

// Clone returns a deep copy so callers can hand conversations out of the
// store without exposing internal slices to mutation.
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	out := *c
	out.Messages = make([]Message, len(c.Messages))
	for i := range c.Messages {
		out.Messages[i] = c.Messages[i]
		if len(c.Messages[i].Attachments) > 0 {
			out.Messages[i].Attachments = append([]MessageAttachment(nil), c.Messages[i].Attachments...)
		}
	}
	return &out
}
