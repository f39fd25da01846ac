// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llmjson extracts structured JSON from free-form LLM responses.
// Models asked for JSON frequently wrap it in prose or code fences; callers
// take the greedy first-brace-to-last-brace slice and decode that.
package llmjson

import (
	"encoding/json"
	"strings"
)

// FirstObject returns the substring from the first '{' to the last '}' in s,
// or false when no such span exists.
func FirstObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// Decode extracts the first object span from s and unmarshals it into v.
// It reports false when no span exists or the span is not valid JSON; v is
// left in whatever state Unmarshal produced, so callers must substitute
// their fallback value on failure.
func Decode(s string, v any) bool {
	obj, ok := FirstObject(s)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(obj), v) == nil
}
