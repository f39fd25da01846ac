// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives the research -> draft -> edit workflow: one or more
// iterations over the stage agents, an optional user-driven refinement loop,
// and export of the run ledger and final article.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/content-engine/internal/agents"
	"github.com/pdiddy/content-engine/internal/gateway"
	"github.com/pdiddy/content-engine/internal/memory"
	"github.com/pdiddy/content-engine/pkg/types"
)

// MemoryLogFile is written next to the exported summary.
const MemoryLogFile = "memory_log.json"

// Asker obtains one line of input from the user for the given prompt.
// The orchestrator never reads the terminal directly so tests can script
// refinement answers.
type Asker func(prompt string) (string, error)

// Orchestrator owns the run memory and sequences the stage agents. Control
// flow never branches on LLM output; the only branching is the refinement loop.
type Orchestrator struct {
	researcher *agents.Researcher
	writer     *agents.Writer
	editor     *agents.Editor

	memory        *memory.RunMemory
	maxIterations int
	ask           Asker
	progress      io.Writer

	currentIteration int
	results          types.RunResults
}

// New builds an orchestrator around a gateway client. Stage progress goes to
// progress (may be nil). ask may be nil when refinement is disabled.
func New(gw gateway.Client, cfg types.PipelineConfig, ask Asker, progress io.Writer) *Orchestrator {
	if progress == nil {
		progress = io.Discard
	}
	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = 3
	}
	mem := memory.New()
	return &Orchestrator{
		researcher:    &agents.Researcher{Gateway: gw, Memory: mem, Progress: progress},
		writer:        &agents.Writer{Gateway: gw, Memory: mem, Progress: progress},
		editor:        &agents.Editor{Gateway: gw, Memory: mem, Progress: progress},
		memory:        mem,
		maxIterations: maxIterations,
		ask:           ask,
		progress:      progress,
	}
}

// Memory exposes the run ledger for persistence and inspection.
func (o *Orchestrator) Memory() *memory.RunMemory {
	return o.memory
}

// Results returns the accumulated run results.
func (o *Orchestrator) Results() types.RunResults {
	return o.results
}

// ExecuteIteration runs one full research -> draft -> edit pass for topic.
// A failure in any stage fails the iteration as a whole; nothing downstream
// of the failed stage runs.
func (o *Orchestrator) ExecuteIteration(ctx context.Context, topic string) (types.IterationRecord, error) {
	o.currentIteration++
	fmt.Fprintf(o.progress, "\n--- iteration %d ---\n", o.currentIteration)

	research, err := o.researcher.Research(ctx, topic)
	if err != nil {
		return types.IterationRecord{}, fmt.Errorf("iteration %d: %w", o.currentIteration, err)
	}

	draft, err := o.writer.Write(ctx, research)
	if err != nil {
		return types.IterationRecord{}, fmt.Errorf("iteration %d: %w", o.currentIteration, err)
	}

	final, err := o.editor.Edit(ctx, draft)
	if err != nil {
		return types.IterationRecord{}, fmt.Errorf("iteration %d: %w", o.currentIteration, err)
	}

	record := types.IterationRecord{
		Iteration:    o.currentIteration,
		Research:     research,
		Draft:        draft,
		FinalArticle: final,
	}

	o.results.Research = research
	o.results.Drafts = append(o.results.Drafts, draft)
	o.results.FinalArticle = final
	o.results.Iterations = append(o.results.Iterations, record)

	fmt.Fprintf(o.progress, "iteration %d complete\n", o.currentIteration)
	return record, nil
}

// CreateContent runs the pipeline for topic. One iteration always runs. When
// enableRefinement is set and the iteration cap allows, the user is asked
// whether to refine and, if so, for feedback; an answer other than "yes", an
// empty feedback line, or the cap ends the loop.
func (o *Orchestrator) CreateContent(ctx context.Context, topic string, enableRefinement bool) (string, error) {
	fmt.Fprintf(o.progress, "topic: %s\nmax iterations: %d\n", topic, o.maxIterations)

	if _, err := o.ExecuteIteration(ctx, topic); err != nil {
		return "", err
	}

	if enableRefinement && o.maxIterations > 1 && o.ask != nil {
		for i := 0; i < o.maxIterations-1; i++ {
			answer, err := o.ask("Would you like to refine the article further? (yes/no): ")
			if err != nil {
				break
			}
			if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
				break
			}

			feedback, err := o.ask("Enter specific feedback for refinement: ")
			if err != nil {
				break
			}
			feedback = strings.TrimSpace(feedback)
			if feedback == "" {
				break
			}

			fmt.Fprintf(o.progress, "applying feedback: %s\n", feedback)
			refined := fmt.Sprintf("%s - Refined based on: %s", topic, feedback)
			if _, err := o.ExecuteIteration(ctx, refined); err != nil {
				return "", err
			}
		}
	}

	o.memory.SetTotalIterations(o.currentIteration)
	return o.results.FinalArticle, nil
}

// Export writes the human-readable run summary to path and persists the
// ledger to memory_log.json in the same directory.
func (o *Orchestrator) Export(path string) error {
	if err := writeSummary(path, o.results, o.memory, o.currentIteration); err != nil {
		return err
	}
	memPath := filepath.Join(filepath.Dir(path), MemoryLogFile)
	if err := o.memory.Persist(memPath); err != nil {
		return err
	}
	fmt.Fprintf(o.progress, "results exported to %s\n", path)
	return nil
}

func writeSummary(path string, results types.RunResults, mem *memory.RunMemory, iterations int) error {
	rule := strings.Repeat("=", 70)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nMULTI-AGENT CONTENT CREATOR - FINAL OUTPUT\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Total Iterations: %d\n", iterations)
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "%s\nFINAL ARTICLE\n%s\n\n", rule, rule)
	b.WriteString(results.FinalArticle)
	fmt.Fprintf(&b, "\n\n%s\nPROCESS SUMMARY\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Research phase: completed (%d brief(s))\n", len(mem.ResearchHistory))
	fmt.Fprintf(&b, "Writing phase: completed (%d draft(s))\n", len(results.Drafts))
	fmt.Fprintf(&b, "Editing phase: completed (%d iteration(s))\n", iterations)
	return writeFile(path, b.String())
}
