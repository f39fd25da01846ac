// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agents

import (
	"bytes"
	"fmt"
	"text/template"
)

// researchPromptTmpl elicits a structured research brief for one topic.
var researchPromptTmpl = template.Must(template.New("research").Parse(`You are an expert research agent. Your task is to provide a comprehensive,
well-organized research brief on the following topic:

Topic: {{.Topic}}

Please include:
1. Key facts and statistics (cite sources where possible)
2. Current trends and developments
3. Historical context and background
4. Expert perspectives if relevant
5. Potential questions readers might have

Format the research as a structured brief with clear sections.
Make it informative, accurate, and accessible to a general audience.`))

// writingPromptTmpl turns a research brief into a complete article draft.
var writingPromptTmpl = template.Must(template.New("writing").Parse(`You are a professional content writer. Your task is to create an engaging,
well-structured article based on the following research data:

Research Data:
{{.Research}}

Requirements:
1. Write an engaging introduction that hooks the reader
2. Organize content into clear, logical sections
3. Use compelling language while maintaining clarity
4. Include smooth transitions between sections
5. Provide a strong conclusion that summarizes key points
6. Maintain consistent tone and voice throughout
7. Make it accessible to a general audience

Create a complete article draft that is ready for editing.`))

// editingPromptTmpl elicits a polished article plus a brief change summary.
// The combined text is what downstream stages treat as the final article.
var editingPromptTmpl = template.Must(template.New("editing").Parse(`You are a meticulous editor and proofreader. Your task is to review and
improve the following article draft (iteration {{.Iteration}}):

Article Draft:
{{.Draft}}

Please provide:
1. A polished, corrected version of the article
2. Corrections for grammar, spelling, and punctuation
3. Improvements to clarity and readability
4. Enhanced transitions and flow
5. Consistency check for tone and style
6. Any suggestions for strengthening the content

Return the final polished article followed by a brief summary of improvements made.`))

// renderPrompt executes a template against its slot values.
func renderPrompt(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
