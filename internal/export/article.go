// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders a finished article into the four delivery formats:
// Markdown, HTML, DOCX, and PDF. All renderers share one line classification:
// a trimmed line wrapped in ** markers is a section heading, any other
// non-blank line is a paragraph, and blank lines separate blocks.
package export

import "strings"

// DocumentTitle appears at the top of every rendered file.
const DocumentTitle = "Generated Article"

// timestampLayout is the generated-at stamp placed in each file's preamble.
const timestampLayout = "2006-01-02 15:04:05"

// BlockKind classifies one article line.
type BlockKind int

const (
	// Heading is a line wrapped in ** emphasis markers.
	Heading BlockKind = iota
	// Paragraph is any other non-blank line.
	Paragraph
)

// Block is one classified line of the article.
type Block struct {
	Kind BlockKind
	Text string
}

// ParseArticle splits an article into heading and paragraph blocks, dropping
// blank separator lines.
func ParseArticle(article string) []Block {
	var blocks []Block
	for _, line := range strings.Split(article, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isHeadingLine(trimmed) {
			blocks = append(blocks, Block{
				Kind: Heading,
				Text: strings.TrimSpace(strings.Trim(trimmed, "*")),
			})
			continue
		}
		blocks = append(blocks, Block{Kind: Paragraph, Text: line})
	}
	return blocks
}

// isHeadingLine reports whether a trimmed line carries leading and trailing
// ** markers with content between them.
func isHeadingLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "**") &&
		strings.HasSuffix(trimmed, "**") &&
		len(trimmed) > 4
}
