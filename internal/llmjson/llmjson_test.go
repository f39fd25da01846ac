// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llmjson

import "testing"

func TestFirstObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`, true},
		{"wrapped in prose", "Sure! Here you go:\n{\"a\": 1}\nHope that helps.", `{"a": 1}`, true},
		{"nested braces", `x {"a": {"b": 2}} y`, `{"a": {"b": 2}}`, true},
		{"no braces", "not json at all", "", false},
		{"only closing", "oops }", "", false},
		{"reversed braces", "} {", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstObject(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("FirstObject(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	if !Decode(`prefix {"a": 7} suffix`, &v) || v.A != 7 {
		t.Errorf("Decode valid span failed, v = %+v", v)
	}
	if Decode(`{"a": not-json}`, &v) {
		t.Error("Decode accepted invalid JSON span")
	}
	if Decode("plain text", &v) {
		t.Error("Decode accepted text without braces")
	}
}
