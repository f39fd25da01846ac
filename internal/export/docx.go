// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"github.com/fumiama/go-docx"
)

// ToDOCX writes the article as a Word document at path.
func ToDOCX(article, path string, now time.Time) error {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.AddText(DocumentTitle).Size("36").Bold()
	title.Justification("center")

	meta := doc.AddParagraph()
	meta.AddText("Generated: " + now.Format(timestampLayout)).Size("20").Italic()

	doc.AddParagraph()

	for _, block := range ParseArticle(article) {
		p := doc.AddParagraph()
		switch block.Kind {
		case Heading:
			p.AddText(block.Text).Size("28").Bold()
		case Paragraph:
			p.AddText(block.Text)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating docx %s: %w", path, err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("writing docx %s: %w", path, err)
	}
	return nil
}
