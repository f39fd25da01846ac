// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/content-engine/pkg/types"
)

// fileTimestampLayout names output files with second resolution.
const fileTimestampLayout = "20060102_150405"

// renderer maps one format to its rendering function.
type renderer struct {
	name   string
	ext    string
	render func(article, path string, now time.Time) error
}

var renderers = []renderer{
	{"markdown", ".md", ToMarkdown},
	{"html", ".html", ToHTML},
	{"docx", ".docx", ToDOCX},
	{"pdf", ".pdf", ToPDF},
}

// All renders the article into every format under dir, naming files
// article_<timestamp>.<ext>. A failing renderer is reported on warn with a
// warning line and leaves its path empty; the remaining formats still run.
func All(article, dir string, now time.Time, warn io.Writer) types.ExportPaths {
	if warn == nil {
		warn = io.Discard
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(warn, "warning: creating export directory %s: %v\n", dir, err)
		return types.ExportPaths{}
	}

	stamp := now.Format(fileTimestampLayout)
	var paths types.ExportPaths

	for _, r := range renderers {
		path := filepath.Join(dir, "article_"+stamp+r.ext)
		if err := r.render(article, path, now); err != nil {
			fmt.Fprintf(warn, "warning: %s export failed: %v\n", r.name, err)
			continue
		}
		switch r.name {
		case "markdown":
			paths.Markdown = path
		case "html":
			paths.HTML = path
		case "docx":
			paths.DOCX = path
		case "pdf":
			paths.PDF = path
		}
	}

	return paths
}
