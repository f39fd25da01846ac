// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/content-engine/internal/archive"
	"github.com/pdiddy/content-engine/internal/export"
	"github.com/pdiddy/content-engine/internal/factcheck"
	"github.com/pdiddy/content-engine/internal/gateway"
	"github.com/pdiddy/content-engine/internal/pipeline"
	"github.com/pdiddy/content-engine/internal/secrets"
	"github.com/pdiddy/content-engine/internal/social"
	"github.com/pdiddy/content-engine/pkg/types"
)

// DefaultTopic is used when the user submits an empty topic.
const DefaultTopic = "The impact of agentic AI on modern automation"

const (
	summaryFile       = "article_output.txt"
	comprehensiveFile = "comprehensive_output.txt"
	secretsDir        = ".secrets/"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

func runPipeline(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, bannerStyle.Render("MULTI-AGENT CONTENT CREATOR"))
	fmt.Fprintln(out, "  researcher agent - gathers information and insights")
	fmt.Fprintln(out, "  writer agent     - creates engaging article drafts")
	fmt.Fprintln(out, "  editor agent     - polishes for quality and clarity")
	fmt.Fprintln(out)

	// The credential check is a startup precondition: no gateway is built and
	// no prompt is sent until it passes.
	gwCfg := gateway.LoadConfig()
	if gwCfg.APIKey == "" {
		gwCfg.APIKey = secrets.GroqAPIKey(secretsDir)
	}
	if err := gateway.CheckCredential(gwCfg); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: GROQ_API_KEY environment variable not set.")
		fmt.Fprintln(os.Stderr, "Get a free API key at:", gateway.CredentialHelpURL)
		return err
	}

	ask := terminalAsker(cmd)

	topic, _ := cmd.Flags().GetString("topic")
	if topic == "" {
		answer, err := ask("Enter the topic for content creation\n  (e.g., 'The impact of AI on business automation'): ")
		if err == nil {
			topic = strings.TrimSpace(answer)
		}
	}
	if topic == "" {
		topic = DefaultTopic
		fmt.Fprintf(out, "Using default topic: %s\n", topic)
	}

	gw, err := gateway.NewGroqClient(gwCfg)
	if err != nil {
		return err
	}

	refine, _ := cmd.Flags().GetBool("refine")
	maxIterations, _ := cmd.Flags().GetInt("max-iterations")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	exportDir, _ := cmd.Flags().GetString("export-dir")

	orch := pipeline.New(gw, types.PipelineConfig{MaxIterations: maxIterations}, pipeline.Asker(ask), out)

	ctx := context.Background()
	finalArticle, err := orch.CreateContent(ctx, topic, refine)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error during content creation:", err)
		fmt.Fprintln(os.Stderr, "Please ensure your Groq API key is valid and you have sufficient credits.")
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, sectionStyle.Render("FINAL ARTICLE"))
	fmt.Fprintln(out, finalArticle)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := orch.Export(filepath.Join(outputDir, summaryFile)); err != nil {
		return err
	}

	return runFanOut(ctx, cmd, gw, orch, topic, finalArticle, outputDir, exportDir)
}

// runFanOut runs the post-processing stages over the finished article:
// fact-check, social bundle, format renderers, and the run archive.
func runFanOut(ctx context.Context, cmd *cobra.Command, gw gateway.Client, orch *pipeline.Orchestrator, topic, article, outputDir, exportDir string) error {
	out := cmd.OutOrStdout()
	now := time.Now()

	fmt.Fprintln(out)
	fmt.Fprintln(out, sectionStyle.Render("GENERATING COMPREHENSIVE CONTENT PACKAGE"))

	verification, err := factcheck.Verify(ctx, gw, article)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error during fact-checking:", err)
		return err
	}
	factReport := factcheck.Report(verification)
	fmt.Fprint(out, factReport)

	bundle, err := social.Generate(ctx, gw, article)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error during social media generation:", err)
		return err
	}
	socialReport := social.Report(bundle)
	fmt.Fprint(out, socialReport)

	stamp := now.Format("20060102_150405")
	socialPath := filepath.Join(outputDir, "social_content_"+stamp+".json")
	if err := social.WriteJSON(bundle, socialPath); err != nil {
		return err
	}

	comprehensive := factReport + "\n" + socialReport + "\n"
	comprehensivePath := filepath.Join(outputDir, comprehensiveFile)
	if err := os.WriteFile(comprehensivePath, []byte(comprehensive), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", comprehensivePath, err)
	}

	paths := export.All(article, exportDir, now, warnWriter{out})

	recordRun(ctx, cmd, topic, orch.Memory().Metadata.TotalIterations, verification.OverallAccuracy, len(article), paths)

	fmt.Fprintln(out)
	fmt.Fprintln(out, sectionStyle.Render("OUTPUT FILES"))
	fmt.Fprintln(out, "  -", filepath.Join(outputDir, summaryFile))
	fmt.Fprintln(out, "  -", filepath.Join(outputDir, pipeline.MemoryLogFile))
	fmt.Fprintln(out, "  -", comprehensivePath)
	fmt.Fprintln(out, "  -", socialPath)
	for _, p := range []string{paths.Markdown, paths.HTML, paths.DOCX, paths.PDF} {
		if p != "" {
			fmt.Fprintln(out, "  -", p)
		}
	}

	return nil
}

// recordRun archives the completed run. Archive problems warn and never fail
// the pipeline.
func recordRun(ctx context.Context, cmd *cobra.Command, topic string, iterations, accuracy, articleChars int, paths types.ExportPaths) {
	out := cmd.OutOrStdout()

	store, err := archive.NewStore(types.ArchiveConfig{ArchiveDir: viper.GetString("archive.dir")})
	if err != nil {
		fmt.Fprintln(out, warnStyle.Render("warning: run archive unavailable: "+err.Error()))
		return
	}
	defer store.Close()

	_, err = store.Record(ctx, types.RunRecord{
		Topic:           topic,
		TotalIterations: iterations,
		OverallAccuracy: accuracy,
		ArticleChars:    articleChars,
		CreatedAt:       time.Now(),
		Exports:         paths,
	})
	if err != nil {
		fmt.Fprintln(out, warnStyle.Render("warning: could not archive run: "+err.Error()))
	}
}

// terminalAsker reads one line from the command's input stream per question.
func terminalAsker(cmd *cobra.Command) func(prompt string) (string, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	return func(prompt string) (string, error) {
		fmt.Fprint(cmd.OutOrStdout(), prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}

// warnWriter routes renderer warnings through the warning style.
type warnWriter struct {
	w io.Writer
}

func (ww warnWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	fmt.Fprintln(ww.w, warnStyle.Render(line))
	return len(p), nil
}
