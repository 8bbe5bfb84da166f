package models

import "github.com/google/uuid"

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is a single entry in a conversation.
type ChatMessage struct {
	ID     uuid.UUID `json:"id"`
	Sender Sender    `json:"sender"`
	Text   string    `json:"text"`
}

// CodeSubmission is the payload sent to the submit-code endpoint.
type CodeSubmission struct {
	Code string `json:"code"`
}

// PredictionResult is the relay's success response.
type PredictionResult struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResult is the relay's failure response.
type ErrorResult struct {
	Error string `json:"error"`
}
