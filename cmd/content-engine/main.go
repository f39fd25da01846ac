// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the content-engine CLI, a multi-agent
// content creation pipeline: research, draft, edit, then fact-checking,
// social media generation, and multi-format export.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the full content creation pipeline; management surfaces hang
// off it as subcommands.
var rootCmd = &cobra.Command{
	Use:   "content-engine",
	Short: "Multi-agent content creation pipeline",
	Long: `content-engine creates long-form articles with a three-stage LLM pipeline:
a researcher agent builds a brief, a writer agent drafts the article, and an
editor agent polishes it. The finished article is fact-checked, turned into
social media assets, and exported as Markdown, HTML, DOCX, and PDF.

The pipeline talks to Groq's OpenAI-compatible API; set GROQ_API_KEY before
running.`,
	SilenceUsage: true,
	RunE:         runPipeline,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./content-engine.yaml or ~/.config/content-engine/config.yaml)")

	rootCmd.Flags().String("topic", "", "article topic (skips the interactive prompt)")
	rootCmd.Flags().Bool("refine", false, "enable the interactive refinement loop")
	rootCmd.Flags().Int("max-iterations", 3, "maximum pipeline iterations including refinements")
	rootCmd.Flags().String("output-dir", ".", "directory for run output files")
	rootCmd.Flags().String("export-dir", "exports", "directory for rendered article formats")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("content-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "content-engine"))
		}
	}

	viper.SetEnvPrefix("CONTENT_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
