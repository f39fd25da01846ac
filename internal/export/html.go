// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"
)

// htmlPage wraps the converted article body in a styled standalone page.
const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%[1]s</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.6;
            max-width: 900px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
            color: #333;
        }
        .container {
            background-color: white;
            padding: 40px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        h1 {
            color: #2c3e50;
            border-bottom: 3px solid #3498db;
            padding-bottom: 10px;
        }
        h2 {
            color: #34495e;
            margin-top: 30px;
        }
        .meta {
            color: #7f8c8d;
            font-size: 0.9em;
            margin-bottom: 20px;
        }
        p {
            margin: 15px 0;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="meta">Generated: %[2]s</div>
        <article>
%[3]s
        </article>
    </div>
</body>
</html>
`

// ToHTML writes the article as a standalone HTML page at path. The classified
// blocks are rebuilt as Markdown and converted with goldmark so inline
// emphasis inside paragraphs survives.
func ToHTML(article, path string, now time.Time) error {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", DocumentTitle)
	for _, block := range ParseArticle(article) {
		switch block.Kind {
		case Heading:
			fmt.Fprintf(&md, "## %s\n\n", block.Text)
		case Paragraph:
			fmt.Fprintf(&md, "%s\n\n", block.Text)
		}
	}

	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &body); err != nil {
		return fmt.Errorf("converting article to HTML: %w", err)
	}

	page := fmt.Sprintf(htmlPage, DocumentTitle, now.Format(timestampLayout), body.String())
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("writing html %s: %w", path, err)
	}
	return nil
}
