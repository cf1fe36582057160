// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Krisha434/dockit/internal/linkcheck"
	"github.com/Krisha434/dockit/internal/markdown"
	"github.com/Krisha434/dockit/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a Markdown file and validate its links",
	Long: `Analyze parses a Markdown file into headings, links, and images, counts
words, and checks each extracted link for reachability. Broken links are
reported, never fatal; an unreadable input file is.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	skipLinks, _ := cmd.Flags().GetBool("skip-links")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	exportFormat, _ := cmd.Flags().GetString("export")
	exportPath, _ := cmd.Flags().GetString("out")

	doc, err := markdown.Parse(args[0])
	if err != nil {
		return err
	}

	if !skipLinks {
		cfg := loadConfig().LinkCheck
		if cmd.Flags().Changed("timeout") {
			cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
		}
		if cmd.Flags().Changed("concurrency") {
			cfg.Concurrency, _ = cmd.Flags().GetInt("concurrency")
		}
		checker := linkcheck.NewChecker(cfg)
		results := checker.Check(context.Background(), markdown.LinkURLs(doc))
		linkcheck.Annotate(doc, results)
	}

	analysis := report.Analysis{
		File:    doc.Path,
		Summary: markdown.Summarize(doc),
		Links:   doc.Links,
	}

	if exportPath != "" {
		if err := report.ExportAnalysis(analysis, exportFormat, exportPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported analysis to %s\n", exportPath)
	}

	if jsonOutput {
		return report.WriteJSON(os.Stdout, analysis)
	}
	report.WriteAnalysis(os.Stdout, analysis)
	return nil
}

func init() {
	analyzeCmd.Flags().Bool("skip-links", false, "skip link validation")
	analyzeCmd.Flags().Bool("json", false, "output the analysis as JSON")
	analyzeCmd.Flags().String("export", "yaml", "export format: yaml or json")
	analyzeCmd.Flags().String("out", "", "write the analysis to this file")
	analyzeCmd.Flags().Duration("timeout", 0, "per-link HTTP timeout (default 5s)")
	analyzeCmd.Flags().Int("concurrency", 0, "concurrent link lookups (default 8)")

	rootCmd.AddCommand(analyzeCmd)
}
