// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetEnv(t *testing.T) {
	t.Helper()
	viper.Reset()
	for _, key := range []string{"GROQ_API_KEY", "GROQ_MODEL", "GROQ_TEMPERATURE", "GROQ_MAX_TOKENS", "GROQ_BASE_URL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	resetEnv(t)

	cfg := LoadConfig()

	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultTemperature, cfg.Temperature)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	resetEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "mixtral-8x7b-32768")
	t.Setenv("GROQ_TEMPERATURE", "0.2")
	t.Setenv("GROQ_MAX_TOKENS", "512")

	cfg := LoadConfig()

	assert.Equal(t, "gsk_test", cfg.APIKey)
	assert.Equal(t, "mixtral-8x7b-32768", cfg.Model)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 512, cfg.MaxTokens)
}

func TestLoadConfigMalformedNumbersFallBack(t *testing.T) {
	resetEnv(t)
	t.Setenv("GROQ_TEMPERATURE", "hot")
	t.Setenv("GROQ_MAX_TOKENS", "many")

	cfg := LoadConfig()

	assert.Equal(t, DefaultTemperature, cfg.Temperature)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
}

func TestCheckCredential(t *testing.T) {
	resetEnv(t)

	err := CheckCredential(LoadConfig())
	require.ErrorIs(t, err, ErrMissingAPIKey)

	t.Setenv("GROQ_API_KEY", "gsk_test")
	require.NoError(t, CheckCredential(LoadConfig()))
}

func TestNewGroqClientRequiresKey(t *testing.T) {
	resetEnv(t)

	_, err := NewGroqClient(LoadConfig())
	require.ErrorIs(t, err, ErrMissingAPIKey)
}
