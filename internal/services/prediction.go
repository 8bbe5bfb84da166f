package services

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// PredictionService forwards submitted code to the Google generative-AI
// prediction API and returns the raw response body.
type PredictionService struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

func NewPredictionService(ctx context.Context, apiKey, projectID, location, modelName string) (*PredictionService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	name := ModelResourceName(projectID, location, modelName)
	model := client.GenerativeModel(name)
	model.SetTemperature(0.3)

	return &PredictionService{
		client: client,
		model:  model,
		name:   name,
	}, nil
}

func (s *PredictionService) Close() {
	s.client.Close()
}

// ModelResourceName builds the full publisher model path the prediction API
// is addressed by.
func ModelResourceName(projectID, location, modelName string) string {
	return fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", projectID, location, modelName)
}

// Predict sends the code as a prompt and returns the prediction response
// verbatim. The caller surfaces it untouched as the relay's `data` field.
func (s *PredictionService) Predict(ctx context.Context, code string) (interface{}, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(code))
	if err != nil {
		return nil, fmt.Errorf("Gemini API error for %s: %w", s.name, err)
	}
	return resp, nil
}
