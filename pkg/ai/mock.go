package ai

import (
	"context"

	"github.com/estalabs/sentinel/pkg/domain/ai"
)

// MockProvider returns canned text without touching the network. Selected
// via the mock provider name for offline demos and used directly in tests.
type MockProvider struct {
	Model  string
	Result string
	Err    error
}

func (m *MockProvider) ID() string {
	return "mock:" + m.Model
}

func (m *MockProvider) Generate(ctx context.Context, req ai.GenerateRequest) (*ai.GenerateResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	text := m.Result
	if text == "" {
		text = "Accrual 1:30 from July 1"
	}
	return &ai.GenerateResponse{Text: text, Model: m.Model, Done: true}, nil
}
