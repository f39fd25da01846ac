// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package memory keeps the append-only ledger of every artifact a pipeline
// run produces: research briefs, drafts, and editor passes. Entries are only
// ever appended; the orchestrator is the sole reader.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pdiddy/content-engine/pkg/types"
)

// Metadata describes the run the ledger belongs to.
type Metadata struct {
	CreatedAt       time.Time `json:"created_at"`
	TotalIterations int       `json:"total_iterations"`
}

// RunMemory is the ledger. The three histories grow in parallel: the i-th
// research, draft, and edit entries belong to iteration i.
type RunMemory struct {
	Metadata        Metadata              `json:"metadata"`
	ResearchHistory []types.ResearchEntry `json:"research_history"`
	DraftHistory    []types.DraftEntry    `json:"draft_history"`
	EditHistory     []types.EditEntry     `json:"edit_history"`

	now func() time.Time
}

// New creates an empty ledger stamped with the current time.
func New() *RunMemory {
	return &RunMemory{
		Metadata: Metadata{CreatedAt: time.Now()},
		now:      time.Now,
	}
}

// AddResearch appends a research brief for topic.
func (m *RunMemory) AddResearch(topic, content string) {
	m.ResearchHistory = append(m.ResearchHistory, types.ResearchEntry{
		Topic:     topic,
		Content:   content,
		Timestamp: m.clock()(),
	})
}

// AddDraft appends a draft for the given iteration.
func (m *RunMemory) AddDraft(content string, iteration int) {
	m.DraftHistory = append(m.DraftHistory, types.DraftEntry{
		Content:   content,
		Iteration: iteration,
		Timestamp: m.clock()(),
	})
}

// AddEdit appends an editor pass for the given iteration.
func (m *RunMemory) AddEdit(feedback string, iteration int) {
	m.EditHistory = append(m.EditHistory, types.EditEntry{
		Feedback:  feedback,
		Iteration: iteration,
		Timestamp: m.clock()(),
	})
}

// SetTotalIterations records the final iteration count once the pipeline
// loop has terminated.
func (m *RunMemory) SetTotalIterations(n int) {
	m.Metadata.TotalIterations = n
}

// LastEdit returns the most recent editor pass, or false if none exists.
// Its feedback field is what downstream stages treat as the final article.
func (m *RunMemory) LastEdit() (types.EditEntry, bool) {
	if len(m.EditHistory) == 0 {
		return types.EditEntry{}, false
	}
	return m.EditHistory[len(m.EditHistory)-1], true
}

// Persist serializes the full ledger as indented JSON at path.
func (m *RunMemory) Persist(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling memory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing memory log %s: %w", path, err)
	}
	return nil
}

// Load reads a ledger previously written by Persist.
func Load(path string) (*RunMemory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading memory log %s: %w", path, err)
	}
	var m RunMemory
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing memory log %s: %w", path, err)
	}
	m.now = time.Now
	return &m, nil
}

func (m *RunMemory) clock() func() time.Time {
	if m.now == nil {
		return time.Now
	}
	return m.now
}
