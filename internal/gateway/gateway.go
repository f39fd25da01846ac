// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gateway wraps the Groq text-completion API behind a single-call
// interface. The pipeline treats the gateway as opaque: one prompt in, one
// completion out, no retries and no streaming.
package gateway

import "context"

// Client is the completion interface the pipeline stages depend on.
// Implementations must be safe for sequential reuse across stages.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
