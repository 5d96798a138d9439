package cli

import (
	"github.com/estalabs/sentinel/internal/application"
	"github.com/estalabs/sentinel/internal/infrastructure/config"
	infraai "github.com/estalabs/sentinel/pkg/ai"
)

// preflight builds the inference client before any query logic runs. A
// client that cannot be constructed is the one fatal condition in the
// program; everything after this point completes normally no matter what
// the backing service does.
func preflight() error {
	if service != nil {
		return nil
	}

	settings := config.Load()
	provider, err := infraai.NewProvider(settings.Provider, settings.Model, settings.Host)
	if err != nil {
		return NewCLIError(
			"Error: inference client unavailable",
			err,
			"Install Ollama from https://ollama.ai",
			"Ensure the server can run: ollama serve",
		)
	}

	service = application.NewSentinelService(provider)
	return nil
}
