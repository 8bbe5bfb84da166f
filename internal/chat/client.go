package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"codechat-backend/internal/models"
)

// FallbackReply is appended when the relay call fails for any reason.
const FallbackReply = "An error occurred while processing your code."

// Client submits code to the relay service and records both sides of the
// exchange in a Conversation. Submissions are not serialized; overlapping
// calls interleave their replies in completion order.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	conversation *Conversation
}

func NewClient(baseURL string, conversation *Conversation) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{},
		conversation: conversation,
	}
}

// Conversation exposes the transcript the client appends to.
func (c *Client) Conversation() *Conversation {
	return c.conversation
}

// Submit appends the user's text to the conversation, posts it to the relay
// and appends exactly one bot reply once the call settles: the relay's
// message on success, FallbackReply on any failure. Blank or whitespace-only
// input is ignored and reported with ok=false.
func (c *Client) Submit(ctx context.Context, text string) (reply models.ChatMessage, ok bool) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, false
	}

	c.conversation.Append(models.SenderUser, text)

	message, err := c.send(ctx, text)
	if err != nil {
		log.Printf("Relay call failed: %v", err)
		return c.conversation.Append(models.SenderBot, FallbackReply), true
	}

	return c.conversation.Append(models.SenderBot, message), true
}

func (c *Client) send(ctx context.Context, code string) (string, error) {
	body, err := json.Marshal(models.CodeSubmission{Code: code})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/submit-code", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	var result models.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode relay response: %w", err)
	}

	return result.Message, nil
}
