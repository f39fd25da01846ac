// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the content pipeline:
// run memory entries, iteration records, verification and social artifacts,
// and stage configuration.
package types

import "time"

// ResearchEntry is one research brief produced by the researcher agent.
type ResearchEntry struct {
	Topic     string    `json:"topic" yaml:"topic"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// DraftEntry is one article draft produced by the writer agent.
type DraftEntry struct {
	Content   string    `json:"content" yaml:"content"`
	Iteration int       `json:"iteration" yaml:"iteration"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// EditEntry is one editor pass: the polished article followed by a brief
// change summary, in a single string.
type EditEntry struct {
	Feedback  string    `json:"feedback" yaml:"feedback"`
	Iteration int       `json:"iteration" yaml:"iteration"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// IterationRecord groups the three artifacts of one research -> draft -> edit pass.
type IterationRecord struct {
	Iteration    int    `json:"iteration"`
	Research     string `json:"research"`
	Draft        string `json:"draft"`
	FinalArticle string `json:"final_article"`
}

// RunResults accumulates pipeline output across iterations. Research and
// FinalArticle always reflect the latest iteration.
type RunResults struct {
	Research     string            `json:"research"`
	Drafts       []string          `json:"drafts"`
	FinalArticle string            `json:"final_article"`
	Iterations   []IterationRecord `json:"iterations"`
}

// VerifiedClaim is a claim the fact-check pass considers supported.
type VerifiedClaim struct {
	Claim      string `json:"claim"`
	Confidence int    `json:"confidence"`
	Source     string `json:"source"`
	Verified   bool   `json:"verified"`
}

// UnverifiedClaim is a claim the fact-check pass could not support.
type UnverifiedClaim struct {
	Claim       string `json:"claim"`
	Reason      string `json:"reason"`
	NeedsSource bool   `json:"needs_source"`
}

// VerificationRecord is the structured result of the fact-check pass.
type VerificationRecord struct {
	VerifiedClaims   []VerifiedClaim   `json:"verified_claims"`
	UnverifiedClaims []UnverifiedClaim `json:"unverified_claims"`
	OverallAccuracy  int               `json:"overall_accuracy"`
	Improvements     []string          `json:"improvements"`
}

// SocialBundle is the multi-channel short-form package derived from an article.
type SocialBundle struct {
	TwitterThread    []string `json:"twitter_thread"`
	LinkedInPost     string   `json:"linkedin_post"`
	InstagramCaption string   `json:"instagram_caption"`
	EmailSubject     string   `json:"email_subject"`
	EmailPreview     string   `json:"email_preview"`
	Hashtags         []string `json:"hashtags"`
	KeyQuote         string   `json:"key_quote"`
}

// ExportPaths lists the rendered files produced from one article. An empty
// field means that format's renderer failed.
type ExportPaths struct {
	Markdown string `json:"markdown" yaml:"markdown"`
	HTML     string `json:"html" yaml:"html"`
	DOCX     string `json:"docx" yaml:"docx"`
	PDF      string `json:"pdf" yaml:"pdf"`
}

// RunRecord is one completed pipeline run as stored in the run archive.
type RunRecord struct {
	ID              int64       `json:"id" yaml:"id"`
	Topic           string      `json:"topic" yaml:"topic"`
	TotalIterations int         `json:"total_iterations" yaml:"total_iterations"`
	OverallAccuracy int         `json:"overall_accuracy" yaml:"overall_accuracy"`
	ArticleChars    int         `json:"article_chars" yaml:"article_chars"`
	CreatedAt       time.Time   `json:"created_at" yaml:"created_at"`
	Exports         ExportPaths `json:"exports" yaml:"exports"`
}
