package config

import (
	"github.com/spf13/viper"

	infraai "github.com/estalabs/sentinel/pkg/ai"
)

// DefaultProvider is the inference backend used when none is configured.
const DefaultProvider = "ollama"

// Settings are resolved from the environment only (SENTINEL_PROVIDER,
// SENTINEL_MODEL, SENTINEL_HOST). The tool deliberately reads no
// configuration file.
type Settings struct {
	Provider string
	Model    string
	Host     string
}

func Load() *Settings {
	v := viper.New()
	v.SetEnvPrefix("sentinel")
	v.AutomaticEnv()

	v.SetDefault("provider", DefaultProvider)
	v.SetDefault("model", infraai.DefaultModel)
	v.SetDefault("host", infraai.DefaultOllamaHost)

	return &Settings{
		Provider: v.GetString("provider"),
		Model:    v.GetString("model"),
		Host:     v.GetString("host"),
	}
}
