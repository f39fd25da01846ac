// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-engine/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.ArchiveConfig{
		ArchiveDir: filepath.Join(t.TempDir(), "archive"),
		MaxResults: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(topic string) types.RunRecord {
	return types.RunRecord{
		Topic:           topic,
		TotalIterations: 2,
		OverallAccuracy: 90,
		ArticleChars:    4321,
		CreatedAt:       time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		Exports: types.ExportPaths{
			Markdown: "exports/article_20260201_120000.md",
			HTML:     "exports/article_20260201_120000.html",
			DOCX:     "exports/article_20260201_120000.docx",
			PDF:      "exports/article_20260201_120000.pdf",
		},
	}
}

func TestRecordAndList(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.Record(ctx, sampleRun("Coffee brewing methods"))
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if id == 0 {
		t.Error("Record() returned zero id")
	}

	records, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	got := records[0]
	want := sampleRun("Coffee brewing methods")
	if got.Topic != want.Topic || got.TotalIterations != want.TotalIterations ||
		got.OverallAccuracy != want.OverallAccuracy || got.ArticleChars != want.ArticleChars {
		t.Errorf("round-tripped record = %+v, want fields of %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	if got.Exports != want.Exports {
		t.Errorf("Exports = %+v, want %+v", got.Exports, want.Exports)
	}
}

func TestListNewestFirstWithLimit(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for _, topic := range []string{"first", "second", "third"} {
		if _, err := store.Record(ctx, sampleRun(topic)); err != nil {
			t.Fatal(err)
		}
	}

	records, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Topic != "third" || records[1].Topic != "second" {
		t.Errorf("order = %q, %q; want third, second", records[0].Topic, records[1].Topic)
	}
}

func TestExportYAMLRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	if _, err := store.Record(ctx, sampleRun("exported topic")); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "export.yaml")
	if err := store.ExportYAML(ctx, path); err != nil {
		t.Fatalf("ExportYAML() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	var doc struct {
		Runs []types.RunRecord `yaml:"runs"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parsing export: %v", err)
	}
	if len(doc.Runs) != 1 || doc.Runs[0].Topic != "exported topic" {
		t.Errorf("export runs = %+v, want one run with exported topic", doc.Runs)
	}
}
