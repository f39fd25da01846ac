// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package factcheck

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-engine/internal/gateway"
)

func TestParseStructuredResponse(t *testing.T) {
	raw := `Here is the verification:
{
  "verified_claims": [
    {"claim": "Espresso uses 9 bars of pressure", "confidence": 92, "source": "SCA", "verified": true}
  ],
  "unverified_claims": [
    {"claim": "Invented in 1884", "reason": "conflicting dates", "needs_source": true}
  ],
  "overall_accuracy": 90,
  "improvements": ["cite brewing standards"]
}`

	rec := Parse(raw)

	require.Len(t, rec.VerifiedClaims, 1)
	assert.Equal(t, 92, rec.VerifiedClaims[0].Confidence)
	assert.True(t, rec.VerifiedClaims[0].Verified)
	require.Len(t, rec.UnverifiedClaims, 1)
	assert.True(t, rec.UnverifiedClaims[0].NeedsSource)
	assert.Equal(t, 90, rec.OverallAccuracy)
}

func TestParseFallback(t *testing.T) {
	rec := Parse("not json at all")

	assert.Empty(t, rec.VerifiedClaims)
	assert.Empty(t, rec.UnverifiedClaims)
	assert.Equal(t, 85, rec.OverallAccuracy)
	assert.Equal(t, []string{"not json at all"}, rec.Improvements)
}

func TestParseFallbackOnInvalidJSON(t *testing.T) {
	rec := Parse(`{"overall_accuracy": not-a-number}`)

	assert.Equal(t, 85, rec.OverallAccuracy)
	require.Len(t, rec.Improvements, 1)
}

func TestVerifyTruncatesArticle(t *testing.T) {
	gw := &gateway.ScriptedClient{Responses: []string{"not json"}}
	long := strings.Repeat("a", 5000)

	_, err := Verify(context.Background(), gw, long)
	require.NoError(t, err)

	require.Len(t, gw.Prompts, 1)
	assert.NotContains(t, gw.Prompts[0], strings.Repeat("a", 3001))
	assert.Contains(t, gw.Prompts[0], strings.Repeat("a", 3000))
}

func TestReportSections(t *testing.T) {
	rec := Parse(`{"verified_claims":[{"claim":"c1","confidence":80,"source":"s","verified":true}],
"unverified_claims":[{"claim":"c2","reason":"r","needs_source":true}],
"overall_accuracy":88,
"improvements":["i1","i2","i3","i4"]}`)

	report := Report(rec)

	assert.Contains(t, report, "FACT-CHECK VERIFICATION REPORT")
	assert.Contains(t, report, "Overall Accuracy Score: 88%")
	assert.Contains(t, report, "c1 (Confidence: 80%)")
	assert.Contains(t, report, "c2")
	assert.Contains(t, report, "3. i3")
	// Only the first three suggestions are reported.
	assert.NotContains(t, report, "i4")
}
