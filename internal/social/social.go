// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package social derives a multi-channel bundle of short-form texts (tweets,
// LinkedIn, Instagram, email, hashtags) from a finished article via one LLM
// pass. Like the fact-check stage, parsing is tolerant: an undecodable
// response yields a fully defaulted bundle built from the raw text.
package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/pdiddy/content-engine/internal/gateway"
	"github.com/pdiddy/content-engine/internal/llmjson"
	"github.com/pdiddy/content-engine/pkg/types"
)

// articleLimit bounds how much of the article is sent to the model.
const articleLimit = 2000

// Fallback channel limits and placeholders.
const (
	tweetLimit    = 280
	linkedInLimit = 300

	fallbackEmailSubject = "Check out this article"
	fallbackEmailPreview = "Interesting content"
)

var fallbackHashtags = []string{"#content", "#article"}

var socialPromptTmpl = template.Must(template.New("social").Parse(`Based on this article, create social media content:

Article:
{{.Article}}

Generate JSON with:
{
    "twitter_thread": [
        "Tweet 1 (280 chars max)",
        "Tweet 2 (280 chars max)",
        "Tweet 3 (280 chars max)"
    ],
    "linkedin_post": "Professional post (300 chars max)",
    "instagram_caption": "Engaging caption with hashtags (2200 chars max)",
    "email_subject": "Email subject line",
    "email_preview": "Email preview text (50 chars)",
    "hashtags": ["#tag1", "#tag2", "#tag3", "#tag4"],
    "key_quote": "Best quote from article"
}`))

// Generate runs the social pass over the first part of article.
func Generate(ctx context.Context, gw gateway.Client, article string) (types.SocialBundle, error) {
	truncated := article
	if len(truncated) > articleLimit {
		truncated = truncated[:articleLimit]
	}

	var buf bytes.Buffer
	if err := socialPromptTmpl.Execute(&buf, struct{ Article string }{truncated}); err != nil {
		return types.SocialBundle{}, fmt.Errorf("rendering social prompt: %w", err)
	}

	raw, err := gw.Complete(ctx, buf.String())
	if err != nil {
		return types.SocialBundle{}, fmt.Errorf("social stage: %w", err)
	}

	return Parse(raw), nil
}

// Parse decodes a model response into a SocialBundle, substituting the
// defaulted bundle when no decodable JSON object is present.
func Parse(raw string) types.SocialBundle {
	var bundle types.SocialBundle
	if llmjson.Decode(raw, &bundle) {
		return bundle
	}
	return fallbackBundle(raw)
}

func fallbackBundle(raw string) types.SocialBundle {
	return types.SocialBundle{
		TwitterThread:    []string{truncate(raw, tweetLimit)},
		LinkedInPost:     truncate(raw, linkedInLimit),
		InstagramCaption: raw,
		EmailSubject:     fallbackEmailSubject,
		EmailPreview:     fallbackEmailPreview,
		Hashtags:         append([]string(nil), fallbackHashtags...),
		KeyQuote:         firstSentence(raw),
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// firstSentence returns the text up to the first period, or the whole string
// when it contains none.
func firstSentence(s string) string {
	if i := strings.Index(s, "."); i >= 0 {
		return s[:i]
	}
	return s
}

// Report renders a plain-text summary of every channel in the bundle.
func Report(bundle types.SocialBundle) string {
	rule := strings.Repeat("=", 70)
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\nSOCIAL MEDIA CONTENT PACKAGE\n%s\n\n", rule, rule)

	b.WriteString("TWITTER THREAD:\n")
	for i, tweet := range bundle.TwitterThread {
		fmt.Fprintf(&b, "  Tweet %d: %s\n", i+1, tweet)
	}

	fmt.Fprintf(&b, "\nLINKEDIN POST:\n  %s\n", bundle.LinkedInPost)
	fmt.Fprintf(&b, "\nINSTAGRAM CAPTION:\n  %s\n", bundle.InstagramCaption)
	fmt.Fprintf(&b, "\nEMAIL:\n  Subject: %s\n  Preview: %s\n", bundle.EmailSubject, bundle.EmailPreview)

	b.WriteString("\nHASHTAGS:\n ")
	for _, tag := range bundle.Hashtags {
		fmt.Fprintf(&b, " %s", tag)
	}

	fmt.Fprintf(&b, "\n\nKEY QUOTE:\n  %q\n", bundle.KeyQuote)
	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}

// WriteJSON saves the bundle as indented JSON for programmatic use.
func WriteJSON(bundle types.SocialBundle, path string) error {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling social bundle: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
