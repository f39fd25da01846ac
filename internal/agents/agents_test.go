// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/content-engine/internal/gateway"
	"github.com/pdiddy/content-engine/internal/memory"
)

func TestResearcherRecordsBrief(t *testing.T) {
	mem := memory.New()
	gw := &gateway.ScriptedClient{Responses: []string{"the brief"}}
	r := &Researcher{Gateway: gw, Memory: mem}

	brief, err := r.Research(context.Background(), "Coffee brewing methods")
	if err != nil {
		t.Fatalf("Research() error: %v", err)
	}
	if brief != "the brief" {
		t.Errorf("brief = %q, want %q", brief, "the brief")
	}
	if len(mem.ResearchHistory) != 1 {
		t.Fatalf("len(ResearchHistory) = %d, want 1", len(mem.ResearchHistory))
	}
	if mem.ResearchHistory[0].Topic != "Coffee brewing methods" {
		t.Errorf("recorded topic = %q", mem.ResearchHistory[0].Topic)
	}
	if !strings.Contains(gw.Prompts[0], "Topic: Coffee brewing methods") {
		t.Errorf("prompt missing topic slot: %q", gw.Prompts[0])
	}
}

func TestWriterIterationNumbering(t *testing.T) {
	mem := memory.New()
	gw := &gateway.ScriptedClient{Responses: []string{"draft one", "draft two"}}
	w := &Writer{Gateway: gw, Memory: mem}

	if _, err := w.Write(context.Background(), "brief"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if _, err := w.Write(context.Background(), "brief"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if mem.DraftHistory[0].Iteration != 1 || mem.DraftHistory[1].Iteration != 2 {
		t.Errorf("iterations = %d, %d, want 1, 2",
			mem.DraftHistory[0].Iteration, mem.DraftHistory[1].Iteration)
	}
	if !strings.Contains(gw.Prompts[0], "brief") {
		t.Errorf("prompt missing research slot: %q", gw.Prompts[0])
	}
}

func TestEditorThreadsIterationIntoPrompt(t *testing.T) {
	mem := memory.New()
	mem.AddEdit("earlier pass", 1)
	gw := &gateway.ScriptedClient{Responses: []string{"polished"}}
	e := &Editor{Gateway: gw, Memory: mem}

	final, err := e.Edit(context.Background(), "the draft")
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}
	if final != "polished" {
		t.Errorf("final = %q, want %q", final, "polished")
	}
	if !strings.Contains(gw.Prompts[0], "iteration 2") {
		t.Errorf("prompt missing iteration slot: %q", gw.Prompts[0])
	}
	if got := mem.EditHistory[1].Iteration; got != 2 {
		t.Errorf("recorded iteration = %d, want 2", got)
	}
}

func TestStageErrorPropagates(t *testing.T) {
	mem := memory.New()
	gw := &gateway.ScriptedClient{Err: errors.New("quota exceeded")}
	r := &Researcher{Gateway: gw, Memory: mem}

	_, err := r.Research(context.Background(), "topic")
	if err == nil {
		t.Fatal("Research() returned nil error")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error = %v, want wrapped gateway error", err)
	}
	if len(mem.ResearchHistory) != 0 {
		t.Errorf("failed stage still appended to memory")
	}
}
