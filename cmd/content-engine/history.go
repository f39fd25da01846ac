// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/content-engine/internal/archive"
	"github.com/pdiddy/content-engine/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past pipeline runs from the run archive",
	Long: `History lists completed runs recorded in the local SQLite run archive:
topic, iteration count, fact-check accuracy, article size, and export
locations. Use --export to dump the full archive as YAML.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")
	historyCmd.Flags().String("export", "", "write the full archive to a YAML file")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := archive.NewStore(types.ArchiveConfig{ArchiveDir: viper.GetString("archive.dir")})
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		if err := store.ExportYAML(ctx, exportPath); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Archive exported to", exportPath)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.List(ctx, limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(records, jsonOutput)
}

func formatHistoryOutput(records []types.RunRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-40s  %-10s  %-8s  %-8s  %s\n",
		"ID", "Topic", "Iterations", "Accuracy", "Chars", "Created")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 95))

	for _, r := range records {
		topic := r.Topic
		if len(topic) > 40 {
			topic = topic[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-40s  %-10d  %-7d%%  %-8d  %s\n",
			r.ID, topic, r.TotalIterations, r.OverallAccuracy, r.ArticleChars,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(records))
	return nil
}
