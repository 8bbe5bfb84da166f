// Package chat implements the client side of the code-chat protocol: an
// append-only conversation transcript and a relay client that drives it.
package chat

import (
	"sync"

	"github.com/google/uuid"

	"codechat-backend/internal/models"
)

// Conversation is an in-memory, insertion-ordered message sequence. It lives
// for the lifetime of the process; nothing is persisted.
type Conversation struct {
	mu       sync.Mutex
	messages []models.ChatMessage
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a message to the end of the sequence and returns it.
func (c *Conversation) Append(sender models.Sender, text string) models.ChatMessage {
	msg := models.ChatMessage{
		ID:     uuid.New(),
		Sender: sender,
		Text:   text,
	}

	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()

	return msg
}

// Messages returns a copy of the sequence in insertion order.
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}
