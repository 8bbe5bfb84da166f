package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"codechat-backend/internal/models"
)

const (
	// Fixed response strings. Every failure cause collapses to the same
	// generic error; the client never learns which step failed.
	ProcessedMessage     = "Code processed by Google Gen AI"
	ProcessFailedMessage = "Failed to process code using Google Gen AI API"
)

// Predictor is the slice of PredictionService the handler needs.
type Predictor interface {
	Predict(ctx context.Context, code string) (interface{}, error)
}

type CodeHandler struct {
	predictor Predictor
}

func NewCodeHandler(predictor Predictor) *CodeHandler {
	return &CodeHandler{predictor: predictor}
}

// SubmitCode forwards the posted code to the prediction API and relays the
// raw response. A missing `code` field is not rejected; the zero value flows
// downstream, matching the endpoint's contract.
func (h *CodeHandler) SubmitCode(w http.ResponseWriter, r *http.Request) {
	var req models.CodeSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode submit-code body: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResult{Error: ProcessFailedMessage})
		return
	}

	log.Printf("Received code: %s", req.Code)

	data, err := h.predictor.Predict(r.Context(), req.Code)
	if err != nil {
		log.Printf("Prediction failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResult{Error: ProcessFailedMessage})
		return
	}

	writeJSON(w, http.StatusOK, models.PredictionResult{
		Message: ProcessedMessage,
		Data:    data,
	})
}
