package application

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/estalabs/sentinel/internal/infrastructure/logging"
	"github.com/estalabs/sentinel/pkg/domain/ai"
)

// DefaultPrompt is the demo question asked when no arguments are given.
const DefaultPrompt = "Upcoming ESTA changes 2026?"

// ResolvePrompt joins all CLI arguments into one question with single
// spaces, falling back to DefaultPrompt when none were given. Arguments are
// passed through as-is: no validation, truncation or normalization.
func ResolvePrompt(args []string) string {
	if len(args) == 0 {
		return DefaultPrompt
	}
	return strings.Join(args, " ")
}

// SentinelService submits prompts to the configured inference provider.
type SentinelService struct {
	provider ai.Provider
}

func NewSentinelService(provider ai.Provider) *SentinelService {
	return &SentinelService{provider: provider}
}

// Query issues exactly one blocking generation request, no retries. The
// returned text is the payload's response field unchanged; an empty string
// with a nil error is a successful (if unhelpful) generation, not a
// failure. Errors come back typed: *ai.APIError when the service itself
// reported the failure, anything else for transport or decode problems.
func (s *SentinelService) Query(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := s.provider.Generate(ctx, ai.GenerateRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}
	logging.With(
		zap.String("provider", s.provider.ID()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("done", resp.Done),
	).Debug("generation request completed")
	return resp.Text, nil
}
