// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps a local SQLite record of completed pipeline runs so
// past topics, iteration counts, and export locations stay queryable after
// the per-run output files have been moved or deleted.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-engine/pkg/types"
)

const dbFile = "runs.db"

// Store manages the run archive database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the archive database at archiveDir/runs.db and
// ensures the schema exists.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dir := cfg.ArchiveDir
	if dir == "" {
		dir = "archive"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    topic TEXT NOT NULL,
    total_iterations INTEGER NOT NULL,
    overall_accuracy INTEGER NOT NULL,
    article_chars INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    export_md TEXT NOT NULL DEFAULT '',
    export_html TEXT NOT NULL DEFAULT '',
    export_docx TEXT NOT NULL DEFAULT '',
    export_pdf TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`)
	return err
}

// Record inserts one completed run and returns its row ID.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) (int64, error) {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx, `
INSERT INTO runs (topic, total_iterations, overall_accuracy, article_chars, created_at,
                  export_md, export_html, export_docx, export_pdf)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Topic, rec.TotalIterations, rec.OverallAccuracy, rec.ArticleChars,
		createdAt.UTC().Format(time.RFC3339),
		rec.Exports.Markdown, rec.Exports.HTML, rec.Exports.DOCX, rec.Exports.PDF,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first. A zero limit uses the
// configured default; a negative limit returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit == 0 {
		limit = s.maxResults
	}
	if limit < 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded.
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, topic, total_iterations, overall_accuracy, article_chars, created_at,
       export_md, export_html, export_docx, export_pdf
FROM runs
ORDER BY id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []types.RunRecord
	for rows.Next() {
		var rec types.RunRecord
		var createdAt string
		if err := rows.Scan(
			&rec.ID, &rec.Topic, &rec.TotalIterations, &rec.OverallAccuracy,
			&rec.ArticleChars, &createdAt,
			&rec.Exports.Markdown, &rec.Exports.HTML, &rec.Exports.DOCX, &rec.Exports.PDF,
		); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", createdAt, err)
		}
		rec.CreatedAt = ts
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ExportYAML writes every archived run to a YAML file at path, newest first.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	records, err := s.List(ctx, -1)
	if err != nil {
		return err
	}

	doc := struct {
		ExportedAt time.Time         `yaml:"exported_at"`
		Runs       []types.RunRecord `yaml:"runs"`
	}{
		ExportedAt: time.Now().UTC(),
		Runs:       records,
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling archive export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing archive export %s: %w", path, err)
	}
	return nil
}
