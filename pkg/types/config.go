// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GatewayConfig holds settings for the LLM gateway. Values come from the
// GROQ_* environment variables, with an optional config file override.
type GatewayConfig struct {
	// Model is the Groq model identifier (e.g. "llama-3.3-70b-versatile").
	Model string `json:"model" yaml:"model"`

	// Temperature is the sampling temperature (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens caps the completion length (default 2000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// APIKey is the Groq API key. Required; its absence is a fatal startup error.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL is the OpenAI-compatible endpoint (default Groq's public endpoint).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// PipelineConfig holds settings for the orchestrator.
type PipelineConfig struct {
	// MaxIterations caps the refinement loop (default 3). The first iteration
	// always runs; up to MaxIterations-1 refinement rounds may follow.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
}

// ExportConfig holds settings for the format renderers.
type ExportConfig struct {
	// OutputDir is the directory for rendered article files (default "exports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// ArchiveConfig holds settings for the run archive.
type ArchiveConfig struct {
	// ArchiveDir is the directory holding the archive database (default "archive").
	ArchiveDir string `json:"archive_dir" yaml:"archive_dir"`

	// MaxResults is the default maximum number of history rows (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// EngineConfig groups all stage configurations.
type EngineConfig struct {
	Gateway  GatewayConfig  `json:"gateway" yaml:"gateway"`
	Pipeline PipelineConfig `json:"pipeline" yaml:"pipeline"`
	Export   ExportConfig   `json:"export" yaml:"export"`
	Archive  ArchiveConfig  `json:"archive" yaml:"archive"`
}
