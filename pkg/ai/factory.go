package ai

import (
	"fmt"
	"net/url"

	"github.com/estalabs/sentinel/pkg/domain/ai"
)

// NewProvider builds an inference client from the configured provider name,
// model and host. Construction failures here are fatal to the program: a
// client that cannot be built means the one thing this tool does is
// impossible.
func NewProvider(providerName, modelName, host string) (ai.Provider, error) {
	switch providerName {
	case "ollama", "":
		if modelName == "" {
			modelName = DefaultModel
		}
		if !safeModelName.MatchString(modelName) {
			return nil, fmt.Errorf("invalid model name: %s", modelName)
		}
		if host != "" {
			u, err := url.Parse(host)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return nil, fmt.Errorf("invalid Ollama host %q", host)
			}
		}
		return NewOllamaProvider(modelName, host), nil
	case "mock":
		return &MockProvider{Model: modelName}, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", providerName)
	}
}
