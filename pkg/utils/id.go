package utils

import "github.com/google/uuid"

// NewID returns a collision-resistant unique identifier for conversations,
// messages, and attachments.
func NewID() string {
	return uuid.New().String()
}
