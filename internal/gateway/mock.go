// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"context"
	"errors"
)

// ScriptedClient replays a fixed sequence of responses, one per Complete
// call. It exists so pipeline tests and local dry runs can substitute the
// Groq client without network access.
type ScriptedClient struct {
	Responses []string
	Err       error

	// Prompts records every prompt received, in call order.
	Prompts []string

	next int
}

// Complete returns the next scripted response. Calling past the end of the
// script is an error.
func (s *ScriptedClient) Complete(_ context.Context, prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	if s.next >= len(s.Responses) {
		return "", errors.New("scripted client: no responses left")
	}
	resp := s.Responses[s.next]
	s.next++
	return resp, nil
}

// Calls reports how many completions have been served.
func (s *ScriptedClient) Calls() int {
	return len(s.Prompts)
}
