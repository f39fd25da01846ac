// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleArticle = `**Overview**

Hello world.

This is a second paragraph.

**Conclusion**

The end.`

var sampleNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func TestParseArticle(t *testing.T) {
	blocks := ParseArticle(sampleArticle)

	want := []Block{
		{Heading, "Overview"},
		{Paragraph, "Hello world."},
		{Paragraph, "This is a second paragraph."},
		{Heading, "Conclusion"},
		{Paragraph, "The end."},
	}
	if len(blocks) != len(want) {
		t.Fatalf("len(blocks) = %d, want %d", len(blocks), len(want))
	}
	for i, b := range blocks {
		if b != want[i] {
			t.Errorf("blocks[%d] = %+v, want %+v", i, b, want[i])
		}
	}
}

func TestParseArticleEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		line string
		want BlockKind
	}{
		{"plain line", "Hello world.", Paragraph},
		{"bold heading", "**Overview**", Heading},
		{"indented heading", "   **Overview**  ", Heading},
		{"inline emphasis only", "some **bold** word", Paragraph},
		{"bare markers", "****", Paragraph},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := ParseArticle(tt.line)
			if len(blocks) != 1 {
				t.Fatalf("len(blocks) = %d, want 1", len(blocks))
			}
			if blocks[0].Kind != tt.want {
				t.Errorf("kind = %v, want %v", blocks[0].Kind, tt.want)
			}
		})
	}
}

func TestToMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.md")
	if err := ToMarkdown(sampleArticle, path, sampleNow); err != nil {
		t.Fatalf("ToMarkdown() error: %v", err)
	}

	content := readFile(t, path)
	for _, want := range []string{
		"# Generated Article",
		"Generated: 2026-02-01 12:00:00",
		"## Overview",
		"Hello world.",
		"## Conclusion",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestToHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.html")
	if err := ToHTML(sampleArticle, path, sampleNow); err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}

	content := readFile(t, path)
	for _, want := range []string{
		"<title>Generated Article</title>",
		"Generated: 2026-02-01 12:00:00",
		"<h2>Overview</h2>",
		"<p>Hello world.</p>",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestToDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.docx")
	if err := ToDOCX(sampleArticle, path, sampleNow); err != nil {
		t.Fatalf("ToDOCX() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat docx: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}

func TestToPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.pdf")
	if err := ToPDF(sampleArticle, path, sampleNow); err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("pdf file missing %PDF header")
	}
}

func TestAllProducesFourFormats(t *testing.T) {
	dir := t.TempDir()
	var warnings bytes.Buffer

	paths := All(sampleArticle, dir, sampleNow, &warnings)

	for name, path := range map[string]string{
		"markdown": paths.Markdown,
		"html":     paths.HTML,
		"docx":     paths.DOCX,
		"pdf":      paths.PDF,
	} {
		if path == "" {
			t.Errorf("%s path is empty; warnings: %s", name, warnings.String())
			continue
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s file missing: %v", name, err)
		}
		if !strings.Contains(filepath.Base(path), "article_20260201_120000") {
			t.Errorf("%s filename = %q, want timestamped form", name, filepath.Base(path))
		}
	}
}

func TestAllContinuesAfterFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	// An unwritable directory fails every renderer; each failure must warn
	// and leave its path empty instead of aborting the rest.
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer os.Chmod(dir, 0o755)

	var warnings bytes.Buffer
	paths := All(sampleArticle, dir, sampleNow, &warnings)

	if paths.Markdown != "" || paths.PDF != "" {
		t.Errorf("expected empty paths for unwritable dir, got %+v", paths)
	}
	if !strings.Contains(warnings.String(), "warning:") {
		t.Errorf("expected warning lines, got %q", warnings.String())
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
