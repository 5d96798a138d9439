package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/estalabs/sentinel/pkg/domain/ai"
)

const (
	// DefaultModel is the model identifier used when none is configured.
	DefaultModel = "llama3.2"
	// DefaultOllamaHost is where a local Ollama server listens.
	DefaultOllamaHost = "http://localhost:11434"
)

var safeModelName = regexp.MustCompile(`^[a-zA-Z0-9:._-]+$`)

type OllamaProvider struct {
	Model      string
	baseURL    string
	httpClient *http.Client
}

func NewOllamaProvider(model, host string) *OllamaProvider {
	return NewOllamaProviderWithClient(model, host, http.DefaultClient)
}

// NewOllamaProviderWithClient creates a provider with a custom HTTP client
// and host (for testing).
func NewOllamaProviderWithClient(model, host string, client *http.Client) *OllamaProvider {
	if model == "" {
		model = DefaultModel
	}
	if host == "" {
		host = DefaultOllamaHost
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OllamaProvider{
		Model:      model,
		baseURL:    strings.TrimSuffix(host, "/"),
		httpClient: client,
	}
}

func (p *OllamaProvider) ID() string {
	return "ollama:" + p.Model
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollamaErrorBody struct {
	Error string `json:"error"`
}

// Generate issues a single non-streaming call to /api/generate. A non-2xx
// status is surfaced as *ai.APIError carrying whatever error message the
// server included; transport and decode failures stay generic.
func (p *OllamaProvider) Generate(ctx context.Context, req ai.GenerateRequest) (*ai.GenerateResponse, error) {
	body, err := json.Marshal(ollamaRequest{
		Model:  p.Model,
		Prompt: req.Prompt,
		Stream: false,
	})
	if err != nil {
		return nil, err
	}

	hReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	hReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(hReq)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ollama API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var errBody ollamaErrorBody
		_ = json.Unmarshal(raw, &errBody)
		return nil, &ai.APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	var oResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&oResp); err != nil {
		return nil, fmt.Errorf("failed to decode ollama response: %w", err)
	}

	// Response text is passed through untouched; a missing response field
	// decodes to "" and is still a success.
	return &ai.GenerateResponse{
		Text:  oResp.Response,
		Model: p.Model,
		Done:  oResp.Done,
	}, nil
}
