package ai

import (
	"context"
	"fmt"
)

// GenerateRequest represents a prompt submitted to the model.
type GenerateRequest struct {
	Prompt string
}

// GenerateResponse represents the model's answer. Text carries the
// response payload field unchanged; an empty Text is still a successful
// generation.
type GenerateResponse struct {
	Text  string
	Model string
	Done  bool
}

// Provider is the interface for all inference backends.
type Provider interface {
	ID() string
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// APIError is a failure reported by the inference service itself, as
// opposed to a transport or decoding failure on the way there.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}
