// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/pdiddy/content-engine/pkg/types"
)

// Defaults for the gateway configuration. The model default follows the
// current Groq production lineup.
const (
	DefaultModel       = "llama-3.3-70b-versatile"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
)

// CredentialHelpURL is shown when GROQ_API_KEY is missing.
const CredentialHelpURL = "https://console.groq.com/keys"

// ErrMissingAPIKey reports an absent credential. Checked once at startup,
// never per call.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY is not set")

// LoadConfig resolves the gateway configuration from the environment (and any
// config file viper has already read). Malformed numeric values fall back to
// the defaults rather than aborting.
func LoadConfig() types.GatewayConfig {
	viper.BindEnv("gateway.api_key", "GROQ_API_KEY")
	viper.BindEnv("gateway.model", "GROQ_MODEL")
	viper.BindEnv("gateway.temperature", "GROQ_TEMPERATURE")
	viper.BindEnv("gateway.max_tokens", "GROQ_MAX_TOKENS")
	viper.BindEnv("gateway.base_url", "GROQ_BASE_URL")

	cfg := types.GatewayConfig{
		Model:       viper.GetString("gateway.model"),
		Temperature: viper.GetFloat64("gateway.temperature"),
		MaxTokens:   viper.GetInt("gateway.max_tokens"),
		APIKey:      viper.GetString("gateway.api_key"),
		BaseURL:     viper.GetString("gateway.base_url"),
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return cfg
}

// CheckCredential verifies the API key precondition.
func CheckCredential(cfg types.GatewayConfig) error {
	if cfg.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
