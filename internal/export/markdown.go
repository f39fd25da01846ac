// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ToMarkdown writes the article as a Markdown document at path.
func ToMarkdown(article, path string, now time.Time) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", DocumentTitle)
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format(timestampLayout))

	for _, block := range ParseArticle(article) {
		switch block.Kind {
		case Heading:
			fmt.Fprintf(&b, "## %s\n\n", block.Text)
		case Paragraph:
			fmt.Fprintf(&b, "%s\n\n", block.Text)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing markdown %s: %w", path, err)
	}
	return nil
}
