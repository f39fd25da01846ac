// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agents binds the three pipeline stages (researcher, writer, editor)
// to the LLM gateway and the run ledger. Each agent renders one prompt
// template, sends it through the gateway, records the result, and returns it.
// The agents share no behavior beyond that, so there is no common interface;
// a small run helper carries the shared mechanics.
package agents

import (
	"context"
	"fmt"
	"io"
	"text/template"

	"github.com/pdiddy/content-engine/internal/gateway"
	"github.com/pdiddy/content-engine/internal/memory"
)

// Researcher produces structured research briefs.
type Researcher struct {
	Gateway  gateway.Client
	Memory   *memory.RunMemory
	Progress io.Writer
}

// Writer turns research briefs into article drafts.
type Writer struct {
	Gateway  gateway.Client
	Memory   *memory.RunMemory
	Progress io.Writer
}

// Editor polishes drafts and appends a change summary.
type Editor struct {
	Gateway  gateway.Client
	Memory   *memory.RunMemory
	Progress io.Writer
}

// Research runs the research stage for topic and records the brief.
func (r *Researcher) Research(ctx context.Context, topic string) (string, error) {
	fmt.Fprintf(progress(r.Progress), "researcher: researching %q\n", topic)

	brief, err := run(ctx, r.Gateway, researchPromptTmpl, struct{ Topic string }{topic})
	if err != nil {
		return "", err
	}

	r.Memory.AddResearch(topic, brief)
	fmt.Fprintf(progress(r.Progress), "researcher: brief complete (%d chars)\n", len(brief))
	return brief, nil
}

// Write runs the drafting stage over a research brief and records the draft.
func (w *Writer) Write(ctx context.Context, research string) (string, error) {
	fmt.Fprintln(progress(w.Progress), "writer: drafting article")

	draft, err := run(ctx, w.Gateway, writingPromptTmpl, struct{ Research string }{research})
	if err != nil {
		return "", err
	}

	iteration := len(w.Memory.DraftHistory) + 1
	w.Memory.AddDraft(draft, iteration)
	fmt.Fprintf(progress(w.Progress), "writer: draft complete (%d chars)\n", len(draft))
	return draft, nil
}

// Edit runs the editing stage over a draft and records the result. The
// returned text is the polished article followed by the change summary.
func (e *Editor) Edit(ctx context.Context, draft string) (string, error) {
	fmt.Fprintln(progress(e.Progress), "editor: reviewing and polishing")

	iteration := len(e.Memory.EditHistory) + 1
	final, err := run(ctx, e.Gateway, editingPromptTmpl, struct {
		Draft     string
		Iteration int
	}{draft, iteration})
	if err != nil {
		return "", err
	}

	e.Memory.AddEdit(final, iteration)
	fmt.Fprintln(progress(e.Progress), "editor: article polished")
	return final, nil
}

// run renders the template, calls the gateway, and returns the completion.
func run(ctx context.Context, gw gateway.Client, tmpl *template.Template, data any) (string, error) {
	prompt, err := renderPrompt(tmpl, data)
	if err != nil {
		return "", err
	}
	out, err := gw.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s stage: %w", tmpl.Name(), err)
	}
	return out, nil
}

func progress(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
